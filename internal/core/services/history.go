package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/archlint/archlint/internal/core/domain"
	"github.com/archlint/archlint/internal/core/ports/driven"
	"github.com/archlint/archlint/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.RunHistory = (*HistoryService)(nil)

// HistoryService records completed run summaries and serves them back,
// newest first.
type HistoryService struct {
	store driven.RunStore
}

// NewHistoryService creates a history service over a run store.
func NewHistoryService(store driven.RunStore) *HistoryService {
	return &HistoryService{store: store}
}

// Record persists a run summary, filling in ID and timestamp when the
// caller left them empty.
func (h *HistoryService) Record(ctx context.Context, rec domain.RunRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if err := h.store.SaveRun(ctx, rec); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (h *HistoryService) Recent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	recs, err := h.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return recs, nil
}
