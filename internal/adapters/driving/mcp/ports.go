package mcp

import (
	"github.com/archlint/archlint/internal/core/ports/driven"
	"github.com/archlint/archlint/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analyzer runs boundary analyses.
	Analyzer driving.Analyzer

	// Config loads analysis configuration files.
	Config driven.ConfigLoader

	// History serves recorded run summaries. Optional.
	History driving.RunHistory
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analyzer == nil {
		return ErrMissingAnalyzer
	}
	if p.Config == nil {
		return ErrMissingConfigLoader
	}
	// History is optional
	return nil
}
