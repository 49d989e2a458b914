package domain

import (
	"fmt"
	"time"
)

// Config is the immutable configuration of one analysis run. It is
// loaded once, validated, and passed explicitly into every component;
// there is no process-wide singleton and nothing mutates it after load.
type Config struct {
	// Rules classify files into layers. Ordered, first match wins.
	Rules []LayerRule `toml:"rules" yaml:"rules" validate:"min=1,dive"`

	// Policy is the allowed layer-to-layer dependency matrix.
	Policy PolicyMatrix `toml:"policy" yaml:"policy" validate:"required"`

	// Extensions are the source file extensions to analyse, without
	// leading dots, in resolution preference order.
	Extensions []string `toml:"extensions" yaml:"extensions" validate:"min=1"`

	// Exclude are glob patterns for paths to skip during discovery.
	Exclude []string `toml:"exclude" yaml:"exclude"`

	// Aliases map import-specifier prefixes to project-relative path
	// prefixes, e.g. "@/" -> "src/".
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`

	// Timeout is the wall-clock budget for a whole run. Zero means the
	// default; exceeding it fails the run rather than hanging CI.
	Timeout time.Duration `toml:"timeout" yaml:"timeout"`

	// Severities overrides the default reason-to-severity mapping.
	Severities map[ReasonCode]Severity `toml:"severities" yaml:"severities"`

	// Order overrides the report's reason precedence, most severe
	// first. Empty means DefaultReasonOrder.
	Order []ReasonCode `toml:"order" yaml:"order"`

	// Blocking is the set of severities that fail the verdict.
	Blocking []Severity `toml:"blocking" yaml:"blocking"`
}

// DefaultTimeout bounds a run when the configuration does not.
const DefaultTimeout = 2 * time.Minute

// DefaultConfig returns the hexagonal defaults: the classic three
// layers, same-layer imports allowed, domain depending on nothing else,
// and every severity blocking except advisory.
func DefaultConfig() *Config {
	return &Config{
		Rules: []LayerRule{
			{Layer: LayerDomain, Pattern: "**/domain/**"},
			{Layer: LayerApplication, Pattern: "**/application/**"},
			{Layer: LayerInfrastructure, Pattern: "**/infrastructure/**"},
		},
		Policy: PolicyMatrix{
			LayerDomain:         {LayerDomain},
			LayerApplication:    {LayerApplication, LayerDomain},
			LayerInfrastructure: {LayerInfrastructure, LayerApplication, LayerDomain},
			LayerUnclassified:   {},
		},
		Extensions: []string{"ts", "tsx", "js", "jsx", "mjs", "cjs"},
		Exclude:    []string{"**/node_modules/**", "**/dist/**", "**/*.d.ts"},
		Aliases:    map[string]string{},
		Timeout:    DefaultTimeout,
		Severities: map[ReasonCode]Severity{},
		Blocking:   []Severity{SeverityError, SeverityWarning},
	}
}

// SeverityFor resolves a reason's severity, honouring overrides.
func (c *Config) SeverityFor(reason ReasonCode) Severity {
	if s, ok := c.Severities[reason]; ok {
		return s
	}
	return DefaultSeverities[reason]
}

// BlockingSet returns the blocking severities as a lookup set.
func (c *Config) BlockingSet() map[Severity]bool {
	out := make(map[Severity]bool, len(c.Blocking))
	for _, s := range c.Blocking {
		out[s] = true
	}
	return out
}

// ReasonOrder returns the configured report precedence or the default.
func (c *Config) ReasonOrder() []ReasonCode {
	if len(c.Order) > 0 {
		return c.Order
	}
	return DefaultReasonOrder
}

// EffectiveTimeout returns the configured timeout or the default.
func (c *Config) EffectiveTimeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// Validate performs the semantic checks that must fail fast before any
// file is scanned. Structural checks (missing fields, empty lists) are
// the config adapter's job.
func (c *Config) Validate() error {
	ruleLayers := make(map[Layer]bool, len(c.Rules))
	seenRules := make(map[string]bool, len(c.Rules))

	for _, r := range c.Rules {
		if r.Layer == "" || r.Pattern == "" {
			return fmt.Errorf("%w: rule with empty layer or pattern", ErrConfiguration)
		}
		if r.Layer == LayerUnclassified {
			return fmt.Errorf("%w: %q is reserved and cannot be a rule layer", ErrConfiguration, LayerUnclassified)
		}
		key := string(r.Layer) + "\x00" + r.Pattern
		if seenRules[key] {
			return fmt.Errorf("%w: duplicate rule %s -> %s", ErrConfiguration, r.Layer, r.Pattern)
		}
		seenRules[key] = true
		ruleLayers[r.Layer] = true
	}

	// Every layer named in the matrix must be backed by a rule, except
	// the reserved unclassified tag.
	for layer := range c.Policy.Layers() {
		if layer == LayerUnclassified {
			continue
		}
		if !ruleLayers[layer] {
			return fmt.Errorf("%w: policy references unknown layer %q", ErrConfiguration, layer)
		}
	}

	for _, s := range c.Blocking {
		switch s {
		case SeverityError, SeverityWarning, SeverityAdvisory:
		default:
			return fmt.Errorf("%w: unknown blocking severity %q", ErrConfiguration, s)
		}
	}

	seenOrder := make(map[ReasonCode]bool, len(c.Order))
	for _, reason := range c.Order {
		if _, ok := DefaultSeverities[reason]; !ok {
			return fmt.Errorf("%w: unknown reason code %q in order", ErrConfiguration, reason)
		}
		if seenOrder[reason] {
			return fmt.Errorf("%w: duplicate reason code %q in order", ErrConfiguration, reason)
		}
		seenOrder[reason] = true
	}

	for reason, s := range c.Severities {
		if _, ok := DefaultSeverities[reason]; !ok {
			return fmt.Errorf("%w: unknown reason code %q", ErrConfiguration, reason)
		}
		switch s {
		case SeverityError, SeverityWarning, SeverityAdvisory:
		default:
			return fmt.Errorf("%w: unknown severity %q for %s", ErrConfiguration, s, reason)
		}
	}

	return nil
}
