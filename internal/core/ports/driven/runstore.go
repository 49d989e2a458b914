package driven

import (
	"context"

	"github.com/archlint/archlint/internal/core/domain"
)

// RunStore persists run summaries for trend inspection.
// Backed by SQLite.
type RunStore interface {
	// SaveRun stores a completed run summary.
	SaveRun(ctx context.Context, rec domain.RunRecord) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Close releases the underlying storage.
	Close() error
}
