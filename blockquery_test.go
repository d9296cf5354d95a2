package blockquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/blockquery/query"
	"github.com/voxelforge/blockquery/world"
)

func testResolver() *query.Registry {
	registry := query.NewRegistry()
	registry.AddBlock("stone", "minecraft:stone")
	registry.AddMaterial("water", world.MaterialWater)
	return registry
}

func TestCompileAndMatch(t *testing.T) {
	resolver := testResolver()
	store := query.NewStore()

	p, err := Compile("stone", resolver, store)
	require.NoError(t, err)

	snap := world.NewSnapshot()
	snap.Set(world.Pos{}, &world.BlockState{Block: "minecraft:stone"})

	assert.True(t, Matches(p, snap, world.Pos{}))
	assert.False(t, Matches(p, snap, world.Pos{X: 1}))
}

func TestCompile_Error(t *testing.T) {
	_, err := Compile("@nope", testResolver(), query.NewStore())
	assert.Error(t, err)
}

func TestMustCompile(t *testing.T) {
	resolver := testResolver()

	assert.NotPanics(t, func() {
		MustCompile("stone,!~water", resolver, query.NewStore())
	})
	assert.Panics(t, func() {
		MustCompile("%missing", resolver, query.NewStore())
	})
}
