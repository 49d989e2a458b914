package scanner

import (
	"path"
	"sort"
	"strings"

	"github.com/archlint/archlint/internal/core/domain"
)

// resolution classifies one specifier's outcome.
type resolution int

const (
	resolvedInternal resolution = iota
	resolvedExternal
	resolvedBroken
)

// resolver resolves import specifiers against the complete discovered
// file set. It never touches the filesystem, so resolution is a pure
// function of (file set, config) and trivially deterministic.
type resolver struct {
	files   map[string]bool
	exts    []string
	aliases []aliasRule
}

type aliasRule struct {
	prefix string
	target string
}

func newResolver(paths []string, cfg *domain.Config) *resolver {
	files := make(map[string]bool, len(paths))
	for _, p := range paths {
		files[p] = true
	}

	aliases := make([]aliasRule, 0, len(cfg.Aliases))
	for prefix, target := range cfg.Aliases {
		aliases = append(aliases, aliasRule{prefix: prefix, target: target})
	}
	// Longest prefix first so "@app/" beats "@".
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i].prefix) != len(aliases[j].prefix) {
			return len(aliases[i].prefix) > len(aliases[j].prefix)
		}
		return aliases[i].prefix < aliases[j].prefix
	})

	exts := make([]string, 0, len(cfg.Extensions))
	for _, e := range cfg.Extensions {
		exts = append(exts, strings.TrimPrefix(e, "."))
	}

	return &resolver{files: files, exts: exts, aliases: aliases}
}

// resolve maps a specifier found in fromPath to a project-internal
// file. Standard resolution order: exact match, then each configured
// extension, then directory index.
func (r *resolver) resolve(fromPath, spec string) (string, resolution) {
	if target, ok := r.applyAlias(spec); ok {
		if resolved, ok := r.lookup(target); ok {
			return resolved, resolvedInternal
		}
		return "", resolvedBroken
	}

	if !isRelative(spec) {
		return "", resolvedExternal
	}

	joined := path.Join(path.Dir(fromPath), spec)
	if strings.HasPrefix(joined, "..") {
		// Escapes the project root: nothing internal can match.
		return "", resolvedBroken
	}
	if resolved, ok := r.lookup(joined); ok {
		return resolved, resolvedInternal
	}
	return "", resolvedBroken
}

// lookup applies the extension/index resolution order to a cleaned
// project-relative path.
func (r *resolver) lookup(p string) (string, bool) {
	if r.files[p] {
		return p, true
	}
	for _, ext := range r.exts {
		if candidate := p + "." + ext; r.files[candidate] {
			return candidate, true
		}
	}
	for _, ext := range r.exts {
		if candidate := p + "/index." + ext; r.files[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// applyAlias rewrites an aliased specifier to a project-relative path.
func (r *resolver) applyAlias(spec string) (string, bool) {
	for _, a := range r.aliases {
		if rest, ok := strings.CutPrefix(spec, a.prefix); ok {
			return path.Clean(a.target + rest), true
		}
	}
	return "", false
}

func isRelative(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") || spec == "." || spec == ".."
}
