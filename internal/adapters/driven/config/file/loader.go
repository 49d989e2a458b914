package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/archlint/archlint/internal/core/domain"
	"github.com/archlint/archlint/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.ConfigLoader = (*Loader)(nil)

// Loader loads analysis configuration from TOML or YAML files.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a config loader.
func NewLoader() *Loader {
	return &Loader{validate: validator.New()}
}

// fileConfig mirrors domain.Config for decoding. Timeout is a string
// ("90s", "2m") because neither TOML nor YAML decode time.Duration
// natively; zero-valued fields mean "keep the default".
type fileConfig struct {
	Rules      []domain.LayerRule                    `toml:"rules" yaml:"rules"`
	Policy     map[domain.Layer][]domain.Layer       `toml:"policy" yaml:"policy"`
	Extensions []string                              `toml:"extensions" yaml:"extensions"`
	Exclude    *[]string                             `toml:"exclude" yaml:"exclude"`
	Aliases    map[string]string                     `toml:"aliases" yaml:"aliases"`
	Timeout    string                                `toml:"timeout" yaml:"timeout"`
	Severities map[domain.ReasonCode]domain.Severity `toml:"severities" yaml:"severities"`
	Order      []domain.ReasonCode                   `toml:"order" yaml:"order"`
	Blocking   []domain.Severity                     `toml:"blocking" yaml:"blocking"`
}

// Load reads and validates a configuration file. An empty path yields
// the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrConfiguration, path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrConfiguration, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrConfiguration, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", domain.ErrConfiguration, filepath.Ext(path))
	}

	if err := merge(cfg, &fc); err != nil {
		return nil, err
	}

	if err := l.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge overlays file values onto the defaults.
func merge(cfg *domain.Config, fc *fileConfig) error {
	if len(fc.Rules) > 0 {
		cfg.Rules = fc.Rules
	}
	if len(fc.Policy) > 0 {
		cfg.Policy = domain.PolicyMatrix(fc.Policy)
		// The reserved tag keeps its empty allowed set unless the file
		// says otherwise.
		if _, ok := cfg.Policy[domain.LayerUnclassified]; !ok {
			cfg.Policy[domain.LayerUnclassified] = []domain.Layer{}
		}
	}
	if len(fc.Extensions) > 0 {
		cfg.Extensions = fc.Extensions
	}
	if fc.Exclude != nil {
		cfg.Exclude = *fc.Exclude
	}
	if len(fc.Aliases) > 0 {
		cfg.Aliases = fc.Aliases
	}
	if len(fc.Severities) > 0 {
		cfg.Severities = fc.Severities
	}
	if len(fc.Order) > 0 {
		cfg.Order = fc.Order
	}
	if len(fc.Blocking) > 0 {
		cfg.Blocking = fc.Blocking
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: invalid timeout %q", domain.ErrConfiguration, fc.Timeout)
		}
		cfg.Timeout = d
	}
	return nil
}
