package driven

import (
	"context"

	"github.com/archlint/archlint/internal/core/domain"
)

// ProjectScanner builds the module graph for a project root: file
// discovery, import extraction and relative-specifier resolution.
//
// Implementations must be deterministic: the returned graph's node
// order is sorted by path regardless of filesystem iteration order.
// A root that does not exist or is not a directory fails with
// domain.ErrInvalidRoot. Broken relative imports are recorded on the
// graph, never returned as errors.
type ProjectScanner interface {
	Scan(ctx context.Context, root string, cfg *domain.Config) (*domain.Graph, error)
}
