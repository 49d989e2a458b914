package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlint/archlint/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleDefaultConfigResource(t *testing.T) {
	server, err := NewServer(&Ports{Analyzer: &mockAnalyzer{}, Config: &mockLoader{}})
	require.NoError(t, err)

	result, err := server.handleDefaultConfigResource(context.Background(),
		readRequest("archlint://config/default"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, `layer = "domain"`)
	assert.Contains(t, result.Contents[0].Text, "[policy]")
}

func TestServer_handleRunsResource(t *testing.T) {
	t.Run("without history returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Analyzer: &mockAnalyzer{}, Config: &mockLoader{}})
		require.NoError(t, err)

		result, err := server.handleRunsResource(context.Background(),
			readRequest("archlint://runs"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("with history returns recorded runs", func(t *testing.T) {
		history := &mockHistory{
			recs: []domain.RunRecord{{
				ID:        "run-1",
				Root:      "/work/project",
				CreatedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
				Summary:   domain.Summary{Verdict: domain.VerdictPass},
			}},
		}

		server, err := NewServer(&Ports{
			Analyzer: &mockAnalyzer{},
			Config:   &mockLoader{},
			History:  history,
		})
		require.NoError(t, err)

		result, err := server.handleRunsResource(context.Background(),
			readRequest("archlint://runs"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "run-1")
	})
}
