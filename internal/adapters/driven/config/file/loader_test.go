package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archlint/archlint/internal/core/domain"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load("")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "archlint.toml", `
timeout = "90s"

[[rules]]
layer = "domain"
pattern = "lib/core/**"

[[rules]]
layer = "infrastructure"
pattern = "lib/adapters/**"

[policy]
domain = ["domain"]
infrastructure = ["infrastructure", "domain"]

[aliases]
"@/" = "lib/"
`)

	cfg, err := NewLoader().Load(path)

	require.NoError(t, err)
	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, domain.LayerRule{Layer: domain.LayerDomain, Pattern: "lib/core/**"}, cfg.Rules[0])
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, "lib/", cfg.Aliases["@/"])
	// Unset fields keep their defaults.
	assert.Equal(t, domain.DefaultConfig().Extensions, cfg.Extensions)
	// The reserved tag still allows nothing.
	assert.Empty(t, cfg.Policy[domain.LayerUnclassified])
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "archlint.yaml", `
rules:
  - layer: domain
    pattern: "src/domain/**"
  - layer: application
    pattern: "src/application/**"
  - layer: infrastructure
    pattern: "src/infrastructure/**"
policy:
  domain: [domain]
  application: [application, domain]
  infrastructure: [infrastructure, application, domain]
blocking: [error]
`)

	cfg, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []domain.Severity{domain.SeverityError}, cfg.Blocking)
	assert.True(t, cfg.Policy.Allows(domain.LayerApplication, domain.LayerDomain))
	assert.False(t, cfg.Policy.Allows(domain.LayerDomain, domain.LayerApplication))
}

func TestLoad_ReasonOrder(t *testing.T) {
	path := writeConfig(t, "archlint.toml", `
order = ["CycleFinding", "BrokenImport", "LayerBoundaryViolation", "UnclassifiedModule"]
`)

	cfg, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []domain.ReasonCode{
		domain.ReasonCycle,
		domain.ReasonBrokenImport,
		domain.ReasonLayerBoundary,
		domain.ReasonUnclassified,
	}, cfg.ReasonOrder())
}

func TestLoad_UnknownReasonInOrderFailsFast(t *testing.T) {
	path := writeConfig(t, "archlint.yaml", `
order: [Nonsense]
`)

	_, err := NewLoader().Load(path)

	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "ghost.toml"))

	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "archlint.ini", "[rules]")

	_, err := NewLoader().Load(path)

	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, "bad.toml", `[[rules` )

	_, err := NewLoader().Load(path)

	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoad_UnknownLayerInPolicyFailsFast(t *testing.T) {
	path := writeConfig(t, "archlint.yaml", `
rules:
  - layer: domain
    pattern: "src/domain/**"
policy:
  domain: [domain]
  presentation: [domain]
`)

	_, err := NewLoader().Load(path)

	require.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), "presentation")
}

func TestLoad_DuplicateRuleFailsFast(t *testing.T) {
	path := writeConfig(t, "archlint.yaml", `
rules:
  - layer: domain
    pattern: "src/domain/**"
  - layer: domain
    pattern: "src/domain/**"
policy:
  domain: [domain]
`)

	_, err := NewLoader().Load(path)

	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoad_RuleMissingPattern(t *testing.T) {
	path := writeConfig(t, "archlint.yaml", `
rules:
  - layer: domain
policy:
  domain: [domain]
`)

	_, err := NewLoader().Load(path)

	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	path := writeConfig(t, "archlint.toml", `timeout = "soon"`)

	_, err := NewLoader().Load(path)

	require.ErrorIs(t, err, domain.ErrConfiguration)
}
