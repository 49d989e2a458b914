package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archlint/archlint/internal/core/domain"
)

func testResolver(paths ...string) *resolver {
	cfg := domain.DefaultConfig()
	cfg.Aliases = map[string]string{"@/": "src/"}
	return newResolver(paths, cfg)
}

func TestResolve_ExactMatchFirst(t *testing.T) {
	r := testResolver("src/a.ts", "src/b.ts")

	target, outcome := r.resolve("src/a.ts", "./b.ts")

	assert.Equal(t, resolvedInternal, outcome)
	assert.Equal(t, "src/b.ts", target)
}

func TestResolve_ExtensionOrder(t *testing.T) {
	// "ts" precedes "js" in the default extension order.
	r := testResolver("src/a.ts", "src/b.ts", "src/b.js")

	target, outcome := r.resolve("src/a.ts", "./b")

	assert.Equal(t, resolvedInternal, outcome)
	assert.Equal(t, "src/b.ts", target)
}

func TestResolve_DirectoryIndex(t *testing.T) {
	r := testResolver("src/a.ts", "src/lib/index.ts")

	target, outcome := r.resolve("src/a.ts", "./lib")

	assert.Equal(t, resolvedInternal, outcome)
	assert.Equal(t, "src/lib/index.ts", target)
}

func TestResolve_ParentTraversal(t *testing.T) {
	r := testResolver("src/infrastructure/pg.ts", "src/domain/order.ts")

	target, outcome := r.resolve("src/infrastructure/pg.ts", "../domain/order")

	assert.Equal(t, resolvedInternal, outcome)
	assert.Equal(t, "src/domain/order.ts", target)
}

func TestResolve_ExternalPackage(t *testing.T) {
	r := testResolver("src/a.ts")

	_, outcome := r.resolve("src/a.ts", "express")

	assert.Equal(t, resolvedExternal, outcome)
}

func TestResolve_ScopedExternalPackage(t *testing.T) {
	r := testResolver("src/a.ts")

	_, outcome := r.resolve("src/a.ts", "@nestjs/common")

	assert.Equal(t, resolvedExternal, outcome)
}

func TestResolve_BrokenRelative(t *testing.T) {
	r := testResolver("src/a.ts")

	_, outcome := r.resolve("src/a.ts", "./missing")

	assert.Equal(t, resolvedBroken, outcome)
}

func TestResolve_EscapesRootIsBroken(t *testing.T) {
	r := testResolver("src/a.ts")

	_, outcome := r.resolve("src/a.ts", "../../outside")

	assert.Equal(t, resolvedBroken, outcome)
}

func TestResolve_Alias(t *testing.T) {
	r := testResolver("src/a.ts", "src/domain/order.ts")

	target, outcome := r.resolve("src/a.ts", "@/domain/order")

	assert.Equal(t, resolvedInternal, outcome)
	assert.Equal(t, "src/domain/order.ts", target)
}

func TestResolve_AliasMissIsBroken(t *testing.T) {
	// An alias prefix claims the specifier for the project; a miss is a
	// broken import, not an external.
	r := testResolver("src/a.ts")

	_, outcome := r.resolve("src/a.ts", "@/domain/ghost")

	assert.Equal(t, resolvedBroken, outcome)
}

func TestResolve_LongestAliasWins(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Aliases = map[string]string{
		"@/":     "src/",
		"@/gen/": "generated/",
	}
	r := newResolver([]string{"generated/api.ts", "src/gen/api.ts"}, cfg)

	target, outcome := r.resolve("src/a.ts", "@/gen/api")

	assert.Equal(t, resolvedInternal, outcome)
	assert.Equal(t, "generated/api.ts", target)
}
