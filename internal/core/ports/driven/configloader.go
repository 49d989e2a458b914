package driven

import "github.com/archlint/archlint/internal/core/domain"

// ConfigLoader loads analysis configuration from a file.
//
// An empty path yields domain.DefaultConfig(). Malformed input of any
// kind (unparsable file, structural problems, semantic problems such as
// an unknown layer in the policy matrix) fails with
// domain.ErrConfiguration before any file is scanned.
type ConfigLoader interface {
	Load(path string) (*domain.Config, error)
}
