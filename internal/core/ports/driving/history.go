package driving

import (
	"context"

	"github.com/archlint/archlint/internal/core/domain"
)

// RunHistory exposes persisted run summaries to the outside world.
type RunHistory interface {
	// Recent returns the most recent runs, newest first.
	Recent(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Record persists a completed run summary.
	Record(ctx context.Context, rec domain.RunRecord) error
}
