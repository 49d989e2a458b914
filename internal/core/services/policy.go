package services

import (
	"fmt"

	"github.com/archlint/archlint/internal/core/domain"
)

// PolicyEngine evaluates classified edges against the policy matrix.
// Its output is a pure function of (graph, matrix, severities):
// evaluation order cannot affect the resulting set, only the reporter's
// sort affects presentation.
type PolicyEngine struct {
	cfg *domain.Config
}

// NewPolicyEngine creates a policy engine for one run's configuration.
func NewPolicyEngine(cfg *domain.Config) *PolicyEngine {
	return &PolicyEngine{cfg: cfg}
}

// Evaluate emits findings for every disallowed transition in the graph.
// The graph must already be classified.
//
// Edges are deduplicated per (source, target) pair; the first specifier
// in edge order is kept for diagnostics. A file that matched no layer
// rule yields exactly one UnclassifiedModule finding, whatever it
// imports or is imported by; its edges are not additionally evaluated
// against the matrix.
func (p *PolicyEngine) Evaluate(g *domain.Graph) []domain.Finding {
	var findings []domain.Finding

	unclassified := make(map[string]bool)
	for _, n := range g.Nodes {
		if n.Layer == domain.LayerUnclassified {
			unclassified[n.Path] = true
		}
	}

	seenPair := make(map[[2]string]bool, len(g.Edges))
	for _, e := range g.Edges {
		key := [2]string{e.Source, e.Target}
		if seenPair[key] {
			continue
		}
		seenPair[key] = true

		if unclassified[e.Source] || unclassified[e.Target] {
			continue
		}

		src := g.NodeAt(e.Source)
		dst := g.NodeAt(e.Target)
		if src == nil || dst == nil {
			continue
		}

		if p.cfg.Policy.Allows(src.Layer, dst.Layer) {
			continue
		}

		findings = append(findings, domain.Finding{
			Reason:      domain.ReasonLayerBoundary,
			Severity:    p.cfg.SeverityFor(domain.ReasonLayerBoundary),
			Source:      e.Source,
			Target:      e.Target,
			Specifier:   e.Specifier,
			SourceLayer: src.Layer,
			TargetLayer: dst.Layer,
			Hint:        boundaryHint(src.Layer, dst.Layer),
		})
	}

	for _, n := range g.Nodes {
		if n.Layer != domain.LayerUnclassified {
			continue
		}
		findings = append(findings, domain.Finding{
			Reason:      domain.ReasonUnclassified,
			Severity:    p.cfg.SeverityFor(domain.ReasonUnclassified),
			Source:      n.Path,
			SourceLayer: domain.LayerUnclassified,
			Hint:        "no layer rule matches this file; add a rule or extend an existing pattern",
		})
	}

	return findings
}

// boundaryHint suggests the standard remediation for a disallowed edge.
func boundaryHint(from, to domain.Layer) string {
	if from == domain.LayerDomain || from == domain.LayerApplication {
		return fmt.Sprintf("invert the dependency: define a port in %s and implement it in %s", from, to)
	}
	return fmt.Sprintf("%s may not depend on %s; route the call through an allowed layer", from, to)
}
