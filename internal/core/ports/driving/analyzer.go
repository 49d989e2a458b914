package driving

import (
	"context"

	"github.com/archlint/archlint/internal/core/domain"
)

// Analyzer runs one complete boundary analysis: scan, classify,
// evaluate, report.
//
// The returned report is fully sorted and deterministic: identical
// input produces a byte-identical structured payload. Fatal conditions
// (bad root, timeout) return an error from the domain taxonomy and no
// report. Violations and other findings never cause an error; they
// live inside the report.
type Analyzer interface {
	Analyze(ctx context.Context, root string, cfg *domain.Config) (*domain.Report, error)
}
