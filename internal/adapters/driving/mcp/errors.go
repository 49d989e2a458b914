// Package mcp provides an MCP (Model Context Protocol) server adapter
// for archlint. It lets AI assistants run boundary checks on a project
// and inspect the results without shelling out to the CLI.
package mcp

import "errors"

// ErrMissingAnalyzer is returned when the analyzer service is not provided.
var ErrMissingAnalyzer = errors.New("mcp: analyzer service is required")

// ErrMissingConfigLoader is returned when the config loader is not provided.
var ErrMissingConfigLoader = errors.New("mcp: config loader is required")
