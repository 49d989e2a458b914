package domain

import "sort"

// Verdict is the pass/fail outcome of one analysis run. It is what a
// CI quality gate consumes.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// Summary aggregates one run for machine consumption and for the
// history store.
type Summary struct {
	TotalFiles     int     `json:"totalFiles"`
	TotalEdges     int     `json:"totalEdges"`
	ExternalCount  int     `json:"externalCount"`
	ViolationCount int     `json:"violationCount"`
	CycleCount     int     `json:"cycleCount"`
	Verdict        Verdict `json:"verdict"`
}

// Report is the complete, ordered result of one analysis run. Field
// names are stable for downstream tooling; the payload carries no run
// identifiers or timestamps so that identical input produces a
// byte-identical report.
type Report struct {
	Root     string    `json:"root"`
	Findings []Finding `json:"findings"`
	Summary  Summary   `json:"summary"`
}

// Blocking reports whether any finding carries a blocking severity.
func (r *Report) Blocking(blocking map[Severity]bool) bool {
	for _, f := range r.Findings {
		if blocking[f.Severity] {
			return true
		}
	}
	return false
}

// SortFindings orders findings by reason precedence, then source path,
// then target path. The fixed order guarantees reproducible diffs
// across runs on identical input.
func SortFindings(findings []Finding, reasonOrder []ReasonCode) {
	rank := make(map[ReasonCode]int, len(reasonOrder))
	for i, r := range reasonOrder {
		rank[r] = i
	}

	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		ra, ok := rank[a.Reason]
		if !ok {
			ra = len(reasonOrder)
		}
		rb, ok := rank[b.Reason]
		if !ok {
			rb = len(reasonOrder)
		}
		if ra != rb {
			return ra < rb
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Target < b.Target
	})
}
