package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresAnalyzer(t *testing.T) {
	_, err := NewServer(&Ports{Config: &mockLoader{}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAnalyzer)
}

func TestNewServer_RequiresConfigLoader(t *testing.T) {
	_, err := NewServer(&Ports{Analyzer: &mockAnalyzer{}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfigLoader)
}

func TestNewServer_HistoryIsOptional(t *testing.T) {
	server, err := NewServer(&Ports{Analyzer: &mockAnalyzer{}, Config: &mockLoader{}})

	require.NoError(t, err)
	assert.NotNil(t, server)
}
