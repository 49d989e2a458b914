package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/archlint/archlint/internal/core/domain"
)

func TestNewLayerClassifier_BadPattern(t *testing.T) {
	_, err := NewLayerClassifier([]domain.LayerRule{
		{Layer: domain.LayerDomain, Pattern: "src/[domain/**"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c, err := NewLayerClassifier([]domain.LayerRule{
		{Layer: domain.LayerDomain, Pattern: "src/domain/**"},
		{Layer: domain.LayerInfrastructure, Pattern: "src/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LayerDomain, c.Classify("src/domain/order.ts"))
	assert.Equal(t, domain.LayerInfrastructure, c.Classify("src/adapters/db.ts"))
}

func TestClassify_OrderingMatters(t *testing.T) {
	// Same rules, reversed: the broad pattern now shadows the narrow one.
	c, err := NewLayerClassifier([]domain.LayerRule{
		{Layer: domain.LayerInfrastructure, Pattern: "src/**"},
		{Layer: domain.LayerDomain, Pattern: "src/domain/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LayerInfrastructure, c.Classify("src/domain/order.ts"))
}

func TestClassify_NoMatchIsUnclassified(t *testing.T) {
	c, err := NewLayerClassifier([]domain.LayerRule{
		{Layer: domain.LayerDomain, Pattern: "src/domain/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.LayerUnclassified, c.Classify("scripts/build.ts"))
}

func TestClassify_TopLevelDirectoryMatchesDefaultRules(t *testing.T) {
	c, err := NewLayerClassifier(domain.DefaultConfig().Rules)
	require.NoError(t, err)

	// No src/ prefix: the layer directory sits at the project root.
	assert.Equal(t, domain.LayerDomain, c.Classify("domain/order.ts"))
	assert.Equal(t, domain.LayerApplication, c.Classify("application/checkout.ts"))
}

func TestClassifyGraph_TagsEveryNode(t *testing.T) {
	c, err := NewLayerClassifier(domain.DefaultConfig().Rules)
	require.NoError(t, err)

	g := &domain.Graph{
		Nodes: []domain.ModuleNode{
			{Path: "src/domain/order.ts"},
			{Path: "src/application/checkout.ts"},
			{Path: "src/infrastructure/pg.ts"},
			{Path: "tools/gen.ts"},
		},
	}
	g.PathIndex = map[string]int{}
	for i, n := range g.Nodes {
		g.PathIndex[n.Path] = i
	}

	c.ClassifyGraph(g)

	assert.Equal(t, domain.LayerDomain, g.Nodes[0].Layer)
	assert.Equal(t, domain.LayerApplication, g.Nodes[1].Layer)
	assert.Equal(t, domain.LayerInfrastructure, g.Nodes[2].Layer)
	assert.Equal(t, domain.LayerUnclassified, g.Nodes[3].Layer)
}

func TestClassify_Idempotent(t *testing.T) {
	c, err := NewLayerClassifier(domain.DefaultConfig().Rules)
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		segment := rapid.StringMatching(`[a-z][a-z0-9_.-]{0,12}`)
		n := rapid.IntRange(1, 6).Draw(rt, "depth")
		path := ""
		for i := 0; i < n; i++ {
			if i > 0 {
				path += "/"
			}
			path += segment.Draw(rt, "segment")
		}

		first := c.Classify(path)
		for i := 0; i < 3; i++ {
			assert.Equal(rt, first, c.Classify(path))
		}
	})
}
