package domain

import "time"

// RunRecord is a summary of one completed analysis run, as persisted
// by the history store. Only the summary survives a run; the graph is
// rebuilt from scratch on every invocation.
type RunRecord struct {
	// ID is a generated unique identifier for the run.
	ID string

	// Root is the analysed project root.
	Root string

	// CreatedAt is when the run finished.
	CreatedAt time.Time

	// Summary is the run's aggregate result.
	Summary Summary
}
