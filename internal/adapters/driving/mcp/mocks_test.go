package mcp

import (
	"context"

	"github.com/archlint/archlint/internal/core/domain"
)

// mockAnalyzer implements driving.Analyzer for tests.
type mockAnalyzer struct {
	report *domain.Report
	err    error
	root   string
}

func (m *mockAnalyzer) Analyze(_ context.Context, root string, _ *domain.Config) (*domain.Report, error) {
	m.root = root
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// mockLoader implements driven.ConfigLoader for tests.
type mockLoader struct {
	err  error
	path string
}

func (m *mockLoader) Load(path string) (*domain.Config, error) {
	m.path = path
	if m.err != nil {
		return nil, m.err
	}
	return domain.DefaultConfig(), nil
}

// mockHistory implements driving.RunHistory for tests.
type mockHistory struct {
	recs []domain.RunRecord
	err  error
}

func (m *mockHistory) Recent(_ context.Context, _ int) ([]domain.RunRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.recs, nil
}

func (m *mockHistory) Record(_ context.Context, _ domain.RunRecord) error {
	return nil
}
