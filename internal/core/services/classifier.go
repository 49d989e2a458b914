package services

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/archlint/archlint/internal/core/domain"
)

// LayerClassifier assigns exactly one layer tag to every module node.
// Rules are evaluated top to bottom and the first matching pattern
// wins; a node matching no rule is tagged unclassified.
type LayerClassifier struct {
	rules []compiledRule
}

type compiledRule struct {
	layer    domain.Layer
	patterns []glob.Glob
}

// NewLayerClassifier compiles the ordered rule set. A pattern that does
// not compile is a configuration error.
//
// A pattern with a leading "**/" is also compiled with that prefix
// stripped: gobwas "**" cannot absorb a following literal '/', so
// "**/domain/**" alone would miss a top-level domain/ directory.
func NewLayerClassifier(rules []domain.LayerRule) (*LayerClassifier, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		variants := []string{r.Pattern}
		if trimmed, ok := strings.CutPrefix(r.Pattern, "**/"); ok {
			variants = append(variants, trimmed)
		}

		cr := compiledRule{layer: r.Layer}
		for _, v := range variants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, fmt.Errorf("%w: pattern %q: %v", domain.ErrConfiguration, r.Pattern, err)
			}
			cr.patterns = append(cr.patterns, g)
		}
		compiled = append(compiled, cr)
	}
	return &LayerClassifier{rules: compiled}, nil
}

// Classify returns the layer for a project-relative path.
func (c *LayerClassifier) Classify(path string) domain.Layer {
	for _, r := range c.rules {
		for _, p := range r.patterns {
			if p.Match(path) {
				return r.layer
			}
		}
	}
	return domain.LayerUnclassified
}

// ClassifyGraph tags every node in place. Tagging depends only on the
// node path and the rule set, so repeated runs over the same input are
// idempotent regardless of discovery order.
func (c *LayerClassifier) ClassifyGraph(g *domain.Graph) {
	for i := range g.Nodes {
		g.Nodes[i].Layer = c.Classify(g.Nodes[i].Path)
	}
}
