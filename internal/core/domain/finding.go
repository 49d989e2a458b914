package domain

import "strings"

// ReasonCode identifies why a finding was produced.
type ReasonCode string

const (
	// ReasonBrokenImport is a relative specifier that resolved to no file.
	ReasonBrokenImport ReasonCode = "BrokenImport"

	// ReasonLayerBoundary is an import whose target layer is not in the
	// source layer's allowed set.
	ReasonLayerBoundary ReasonCode = "LayerBoundaryViolation"

	// ReasonUnclassified is an edge touching a file that matched no
	// layer rule, or such a file with no edges at all.
	ReasonUnclassified ReasonCode = "UnclassifiedModule"

	// ReasonCycle is a minimal cycle in the file-level import graph.
	// Cycles are a quality signal, not a boundary violation.
	ReasonCycle ReasonCode = "CycleFinding"
)

// DefaultReasonOrder is the report sort precedence, most severe first.
var DefaultReasonOrder = []ReasonCode{
	ReasonBrokenImport,
	ReasonLayerBoundary,
	ReasonUnclassified,
	ReasonCycle,
}

// Severity grades a finding for gating purposes.
type Severity string

const (
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
	SeverityAdvisory Severity = "advisory"
)

// DefaultSeverities maps each reason to its out-of-the-box severity.
// CycleFinding is advisory-only by default: cyclic files can still be
// architecturally clean.
var DefaultSeverities = map[ReasonCode]Severity{
	ReasonBrokenImport:  SeverityError,
	ReasonLayerBoundary: SeverityError,
	ReasonUnclassified:  SeverityWarning,
	ReasonCycle:         SeverityAdvisory,
}

// Finding is one reportable result: a boundary violation, an
// unclassified module, a broken import or a cycle. Findings are
// immutable once produced and never fatal to the run itself.
type Finding struct {
	// Reason says what kind of finding this is.
	Reason ReasonCode `json:"reasonCode"`

	// Severity grades the finding for verdict computation.
	Severity Severity `json:"severity"`

	// Source is the offending file. For cycles it is the first file of
	// the canonical cycle sequence.
	Source string `json:"sourcePath"`

	// Target is the imported file, empty for node-level findings.
	Target string `json:"targetPath,omitempty"`

	// Specifier is the literal import text behind the finding, when one
	// exists.
	Specifier string `json:"specifier,omitempty"`

	// SourceLayer and TargetLayer are set on policy findings.
	SourceLayer Layer `json:"sourceLayer,omitempty"`
	TargetLayer Layer `json:"targetLayer,omitempty"`

	// Cycle is the ordered node sequence for cycle findings. The
	// sequence is rotated so its lexicographically smallest path comes
	// first, which keeps reports stable across runs.
	Cycle []string `json:"cycle,omitempty"`

	// Hint is a suggested remediation, e.g. inverting a dependency
	// through a port.
	Hint string `json:"hint,omitempty"`
}

// CanonicalCycle rotates a cycle so the lexicographically smallest
// member comes first. Two discoveries of the same cycle from different
// entry points then compare equal.
func CanonicalCycle(cycle []string) []string {
	if len(cycle) == 0 {
		return cycle
	}
	min := 0
	for i := 1; i < len(cycle); i++ {
		if cycle[i] < cycle[min] {
			min = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[min:]...)
	out = append(out, cycle[:min]...)
	return out
}

// CycleKey joins a canonical cycle into a dedup key.
func CycleKey(cycle []string) string {
	return strings.Join(CanonicalCycle(cycle), " -> ")
}
