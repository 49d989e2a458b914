package domain

import "errors"

// Fatal error taxonomy. Fatal errors abort the run before any report is
// emitted and surface a single message plus a nonzero exit code.
// Findings (boundary violations, unclassified modules, broken imports,
// cycles) are never errors: the run always completes and reports them.
var (
	// ErrConfiguration indicates malformed rules or policy input.
	// Raised before any file is scanned.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInvalidRoot indicates the project root does not exist or is
	// not a directory.
	ErrInvalidRoot = errors.New("invalid project root")

	// ErrAnalysisTimeout indicates the configured wall-clock budget was
	// exhausted. Partial results are discarded.
	ErrAnalysisTimeout = errors.New("analysis timed out")

	// ErrViolationsFound is the sentinel the CLI maps to its dedicated
	// exit code when a run completes with a failing verdict.
	ErrViolationsFound = errors.New("violations found")
)
