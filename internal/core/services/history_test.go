package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlint/archlint/internal/core/domain"
)

// memRunStore is an in-memory RunStore for service tests.
type memRunStore struct {
	recs []domain.RunRecord
}

func (m *memRunStore) SaveRun(_ context.Context, rec domain.RunRecord) error {
	m.recs = append([]domain.RunRecord{rec}, m.recs...)
	return nil
}

func (m *memRunStore) ListRuns(_ context.Context, limit int) ([]domain.RunRecord, error) {
	if limit > len(m.recs) {
		limit = len(m.recs)
	}
	return m.recs[:limit], nil
}

func (m *memRunStore) Close() error { return nil }

func TestRecord_FillsIDAndTimestamp(t *testing.T) {
	store := &memRunStore{}
	svc := NewHistoryService(store)

	err := svc.Record(context.Background(), domain.RunRecord{
		Root:    "proj",
		Summary: domain.Summary{Verdict: domain.VerdictPass},
	})

	require.NoError(t, err)
	require.Len(t, store.recs, 1)
	assert.NotEmpty(t, store.recs[0].ID)
	assert.WithinDuration(t, time.Now().UTC(), store.recs[0].CreatedAt, time.Minute)
}

func TestRecent_DefaultsLimit(t *testing.T) {
	store := &memRunStore{}
	svc := NewHistoryService(store)
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Record(context.Background(), domain.RunRecord{Root: "proj"}))
	}

	recs, err := svc.Recent(context.Background(), 0)

	require.NoError(t, err)
	assert.Len(t, recs, 3)
}
