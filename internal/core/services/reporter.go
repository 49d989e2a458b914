package services

import (
	"github.com/archlint/archlint/internal/core/domain"
)

// Reporter aggregates findings into the stable, sorted report and
// computes the gating verdict.
type Reporter struct {
	cfg *domain.Config
}

// NewReporter creates a reporter for one run's configuration.
func NewReporter(cfg *domain.Config) *Reporter {
	return &Reporter{cfg: cfg}
}

// Build assembles the final report from the graph, the policy findings
// and the detected cycles. Output ordering is fixed (reason precedence,
// then source path, then target path) so identical input yields a
// byte-identical structured payload.
func (r *Reporter) Build(root string, g *domain.Graph, policyFindings []domain.Finding, cycles [][]string) *domain.Report {
	findings := make([]domain.Finding, 0, len(policyFindings)+len(g.Broken)+len(cycles))
	findings = append(findings, policyFindings...)

	for _, b := range g.Broken {
		findings = append(findings, domain.Finding{
			Reason:    domain.ReasonBrokenImport,
			Severity:  r.cfg.SeverityFor(domain.ReasonBrokenImport),
			Source:    b.Source,
			Specifier: b.Specifier,
			Hint:      "the imported file does not exist; fix the path or delete the import",
		})
	}

	for _, cycle := range cycles {
		findings = append(findings, domain.Finding{
			Reason:   domain.ReasonCycle,
			Severity: r.cfg.SeverityFor(domain.ReasonCycle),
			Source:   cycle[0],
			Cycle:    cycle,
			Hint:     "break the cycle by extracting the shared piece into its own module",
		})
	}

	domain.SortFindings(findings, r.cfg.ReasonOrder())

	violations := 0
	cycleCount := 0
	for _, f := range findings {
		if f.Reason == domain.ReasonCycle {
			cycleCount++
		} else {
			violations++
		}
	}

	report := &domain.Report{
		Root:     root,
		Findings: findings,
		Summary: domain.Summary{
			TotalFiles:     len(g.Nodes),
			TotalEdges:     len(g.Edges),
			ExternalCount:  g.ExternalCount,
			ViolationCount: violations,
			CycleCount:     cycleCount,
			Verdict:        domain.VerdictPass,
		},
	}

	if report.Blocking(r.cfg.BlockingSet()) {
		report.Summary.Verdict = domain.VerdictFail
	}
	return report
}
