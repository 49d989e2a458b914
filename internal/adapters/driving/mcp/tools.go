package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/archlint/archlint/internal/core/domain"
)

// CheckInput is the input schema for the check_architecture tool.
type CheckInput struct {
	Path       string `json:"path" jsonschema:"project root directory to analyse"`
	ConfigPath string `json:"config_path,omitempty" jsonschema:"path to archlint.toml or archlint.yaml (optional, defaults apply)"`
}

// CheckOutput is the output schema for the check_architecture tool.
type CheckOutput struct {
	Verdict  string          `json:"verdict"`
	Summary  domain.Summary  `json:"summary"`
	Findings []FindingOutput `json:"findings"`
}

// FindingOutput represents a single finding.
type FindingOutput struct {
	Reason      string   `json:"reason"`
	Severity    string   `json:"severity"`
	SourcePath  string   `json:"source_path"`
	TargetPath  string   `json:"target_path,omitempty"`
	Specifier   string   `json:"specifier,omitempty"`
	SourceLayer string   `json:"source_layer,omitempty"`
	TargetLayer string   `json:"target_layer,omitempty"`
	Cycle       []string `json:"cycle,omitempty"`
	Hint        string   `json:"hint,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_architecture",
		Description: "Run a layered-architecture boundary check on a project and return the findings",
	}, s.handleCheck)
}

// handleCheck handles the check_architecture tool invocation.
func (s *Server) handleCheck(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, CheckOutput, error) {
	path := input.Path
	if path == "" {
		path = "."
	}

	cfg, err := s.ports.Config.Load(input.ConfigPath)
	if err != nil {
		return nil, CheckOutput{}, err
	}

	report, err := s.ports.Analyzer.Analyze(ctx, path, cfg)
	if err != nil {
		return nil, CheckOutput{}, err
	}

	output := CheckOutput{
		Verdict:  string(report.Summary.Verdict),
		Summary:  report.Summary,
		Findings: make([]FindingOutput, len(report.Findings)),
	}

	for i := range report.Findings {
		f := report.Findings[i]
		output.Findings[i] = FindingOutput{
			Reason:      string(f.Reason),
			Severity:    string(f.Severity),
			SourcePath:  f.Source,
			TargetPath:  f.Target,
			Specifier:   f.Specifier,
			SourceLayer: string(f.SourceLayer),
			TargetLayer: string(f.TargetLayer),
			Cycle:       f.Cycle,
			Hint:        f.Hint,
		}
	}

	return nil, output, nil
}
