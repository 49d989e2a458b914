package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/archlint/archlint/internal/core/domain"
	"github.com/archlint/archlint/internal/core/ports/driven"
	"github.com/archlint/archlint/internal/core/ports/driving"
	"github.com/archlint/archlint/internal/logger"
)

// Ensure AnalyzerService implements the interface.
var _ driving.Analyzer = (*AnalyzerService)(nil)

// AnalyzerService orchestrates one analysis run:
// scan -> classify -> evaluate -> detect cycles -> report.
//
// Each run builds its own graph instance; nothing is shared or cached
// across runs, so concurrent invocations need no locking.
type AnalyzerService struct {
	scanner driven.ProjectScanner
}

// NewAnalyzerService creates an analyzer backed by the given scanner.
func NewAnalyzerService(scanner driven.ProjectScanner) *AnalyzerService {
	return &AnalyzerService{scanner: scanner}
}

// Analyze runs the full pipeline under the configured wall-clock
// budget. A nil cfg uses the defaults.
func (a *AnalyzerService) Analyze(ctx context.Context, root string, cfg *domain.Config) (*domain.Report, error) {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	classifier, err := NewLayerClassifier(cfg.Rules)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.EffectiveTimeout())
	defer cancel()

	logger.Section("Scan")
	graph, err := a.scanner.Scan(ctx, root, cfg)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", domain.ErrAnalysisTimeout, cfg.EffectiveTimeout())
		}
		return nil, err
	}
	logger.Debug("Discovered %d files, %d edges, %d externals, %d broken imports",
		len(graph.Nodes), len(graph.Edges), graph.ExternalCount, len(graph.Broken))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w after %s", domain.ErrAnalysisTimeout, cfg.EffectiveTimeout())
	}

	logger.Section("Classify")
	classifier.ClassifyGraph(graph)

	logger.Section("Evaluate")
	engine := NewPolicyEngine(cfg)
	findings := engine.Evaluate(graph)

	cycles := FindCycles(graph)
	logger.Debug("%d policy findings, %d cycles", len(findings), len(cycles))

	report := NewReporter(cfg).Build(root, graph, findings, cycles)
	logger.Info("Verdict: %s (%d violations, %d cycles)",
		report.Summary.Verdict, report.Summary.ViolationCount, report.Summary.CycleCount)
	return report, nil
}
