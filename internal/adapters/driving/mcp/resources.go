package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for archlint resources.
	uriScheme = "archlint://"
)

// defaultConfigTOML documents the out-of-the-box configuration so an
// assistant can offer it as a starting point for a project.
const defaultConfigTOML = `# archlint configuration

[[rules]]
layer = "domain"
pattern = "**/domain/**"

[[rules]]
layer = "application"
pattern = "**/application/**"

[[rules]]
layer = "infrastructure"
pattern = "**/infrastructure/**"

[policy]
domain = ["domain"]
application = ["application", "domain"]
infrastructure = ["infrastructure", "application", "domain"]

extensions = ["ts", "tsx", "js", "jsx", "mjs", "cjs"]
exclude = ["**/node_modules/**", "**/dist/**", "**/*.d.ts"]
blocking = ["error", "warning"]
timeout = "2m"
`

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the default configuration.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "config/default",
		Name:        "default-config",
		Description: "Default archlint configuration in TOML format",
		MIMEType:    "application/toml",
	}, s.handleDefaultConfigResource)

	// Static resource for recent runs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recent analysis runs, newest first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)
}

// handleDefaultConfigResource returns the default configuration.
func (s *Server) handleDefaultConfigResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/toml",
			Text:     defaultConfigTOML,
		}},
	}, nil
}

// handleRunsResource returns recent run summaries.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	recs, err := s.ports.History.Recent(ctx, 20)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling runs: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
