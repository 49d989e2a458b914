package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/archlint/archlint/internal/core/domain"
	"github.com/archlint/archlint/internal/core/ports/driven"
	"github.com/archlint/archlint/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driven.ProjectScanner = (*Scanner)(nil)

// Scanner builds the module graph for a project root.
type Scanner struct {
	workers int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWorkers overrides the parse worker count. Zero or negative means
// one worker per CPU.
func WithWorkers(n int) Option {
	return func(s *Scanner) { s.workers = n }
}

// New creates a scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan discovers files, extracts their imports in parallel and resolves
// every specifier against the complete file set. Reads the filesystem,
// mutates nothing.
func (s *Scanner) Scan(ctx context.Context, root string, cfg *domain.Config) (*domain.Graph, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRoot, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidRoot, root)
	}

	// Discovery must complete before resolution: relative specifiers
	// are resolved against the full sibling set, not the filesystem.
	paths, err := discover(ctx, root, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered %d candidate files", len(paths))

	imports, err := s.parseAll(ctx, root, paths)
	if err != nil {
		return nil, err
	}

	return assemble(paths, imports, cfg), nil
}

// parseAll extracts imports from every file using a bounded worker
// pool. Results land in a per-index slot, so no ordering is imposed on
// the workers themselves.
func (s *Scanner) parseAll(ctx context.Context, root string, paths []string) ([][]domain.ImportRef, error) {
	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([][]domain.ImportRef, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				src, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(paths[i])))
				if err != nil {
					// File vanished between discovery and parse.
					// Treat it as importless rather than failing CI.
					logger.Warn("Could not read %s: %v", paths[i], err)
					continue
				}
				results[i] = extractImports(src)
			}
		}()
	}

	var ctxErr error
feed:
	for i := range paths {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	return results, nil
}

// assemble resolves every extracted specifier and builds the graph.
// Runs over the sorted path list, so the output is independent of both
// filesystem iteration order and worker scheduling.
func assemble(paths []string, imports [][]domain.ImportRef, cfg *domain.Config) *domain.Graph {
	g := &domain.Graph{
		Nodes:     make([]domain.ModuleNode, 0, len(paths)),
		PathIndex: make(map[string]int, len(paths)),
	}
	res := newResolver(paths, cfg)

	for i, p := range paths {
		g.PathIndex[p] = len(g.Nodes)
		g.Nodes = append(g.Nodes, domain.ModuleNode{Path: p, Imports: imports[i]})
	}

	for i, p := range paths {
		for _, ref := range imports[i] {
			target, outcome := res.resolve(p, ref.Specifier)
			switch outcome {
			case resolvedExternal:
				g.ExternalCount++
			case resolvedBroken:
				g.Broken = append(g.Broken, domain.BrokenImport{
					Source:    p,
					Specifier: ref.Specifier,
					Line:      ref.Line,
				})
			case resolvedInternal:
				if target == p {
					// Identity edges carry no information.
					continue
				}
				g.Edges = append(g.Edges, domain.Edge{
					Source:    p,
					Target:    target,
					Specifier: ref.Specifier,
					Line:      ref.Line,
				})
			}
		}
	}

	return g
}
