package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/archlint/archlint/internal/core/domain"
)

// excludeSet matches project-relative paths against the configured
// exclusion globs. A leading "**/" is also tried stripped so that
// "**/node_modules/**" excludes a top-level node_modules as well, and
// a trailing "/**" is tried stripped so the directory itself is pruned
// rather than walked file by file.
type excludeSet struct {
	files []glob.Glob
	dirs  []glob.Glob
}

func compileExcludes(patterns []string) (*excludeSet, error) {
	set := &excludeSet{}
	for _, pattern := range patterns {
		fileVariants := []string{pattern}
		if trimmed, ok := strings.CutPrefix(pattern, "**/"); ok {
			fileVariants = append(fileVariants, trimmed)
		}

		for _, v := range fileVariants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, fmt.Errorf("%w: exclude pattern %q: %v", domain.ErrConfiguration, pattern, err)
			}
			set.files = append(set.files, g)

			if trimmed, ok := strings.CutSuffix(v, "/**"); ok {
				d, err := glob.Compile(trimmed, '/')
				if err != nil {
					return nil, fmt.Errorf("%w: exclude pattern %q: %v", domain.ErrConfiguration, pattern, err)
				}
				set.dirs = append(set.dirs, d)
			}
		}
	}
	return set, nil
}

func (s *excludeSet) matchFile(rel string) bool {
	for _, g := range s.files {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

func (s *excludeSet) matchDir(rel string) bool {
	for _, g := range s.dirs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// discover walks the root and returns the sorted project-relative paths
// of every analysable source file.
func discover(ctx context.Context, root string, cfg *domain.Config) ([]string, error) {
	excludes, err := compileExcludes(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	wantExt := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		wantExt["."+strings.TrimPrefix(ext, ".")] = true
	}

	var paths []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if d.Name() == ".git" || excludes.matchDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !wantExt[filepath.Ext(rel)] {
			return nil
		}
		if excludes.matchFile(rel) {
			return nil
		}

		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
