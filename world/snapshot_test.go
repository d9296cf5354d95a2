package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `
blocks:
  - at: [0, 64, 0]
    id: minecraft:grass
    material: ground
    properties: {snowy: "false"}
  - at: [0, 63, 0]
    id: minecraft:dirt
    type: soil
    material: ground
  - at: [1, 64, 0]
    id: minecraft:water
    material: water
`

func TestParseSnapshot(t *testing.T) {
	snap, err := ParseSnapshot([]byte(sampleSnapshot))
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Len())

	grass := snap.StateAt(Pos{X: 0, Y: 64, Z: 0})
	assert.Equal(t, BlockID("minecraft:grass"), grass.ID())
	assert.Equal(t, Material("ground"), grass.Material())

	dirt := snap.StateAt(Pos{X: 0, Y: 63, Z: 0})
	assert.Equal(t, TypeTag("soil"), dirt.TypeTag())

	water := snap.StateAt(Pos{X: 1, Y: 64, Z: 0})
	assert.Equal(t, MaterialWater, water.Material())
}

func TestParseSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "bad yaml", data: ":\n:"},
		{name: "short position", data: "blocks:\n  - at: [0, 0]\n    id: x"},
		{name: "missing id", data: "blocks:\n  - at: [0, 0, 0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestSnapshot_UnpopulatedIsAir(t *testing.T) {
	snap, err := ParseSnapshot([]byte(sampleSnapshot))
	require.NoError(t, err)

	far := Pos{X: 100, Y: 0, Z: 100}
	assert.True(t, snap.IsAir(far))
	require.NotNil(t, snap.StateAt(far), "StateAt never returns nil")
	assert.Equal(t, BlockID("air"), snap.StateAt(far).ID())

	assert.False(t, snap.IsAir(Pos{X: 0, Y: 64, Z: 0}))
}

func TestSnapshot_Bounds(t *testing.T) {
	snap, err := ParseSnapshot([]byte(sampleSnapshot))
	require.NoError(t, err)

	min, max, ok := snap.Bounds()
	require.True(t, ok)
	assert.Equal(t, Pos{X: 0, Y: 63, Z: 0}, min)
	assert.Equal(t, Pos{X: 1, Y: 64, Z: 0}, max)

	_, _, ok = NewSnapshot().Bounds()
	assert.False(t, ok)
}

func TestBlockState_PropertyCaseInsensitive(t *testing.T) {
	state := &BlockState{
		Block:      "minecraft:log",
		Properties: map[string]string{"Facing": "up"},
	}

	v, ok := state.Property("facing")
	require.True(t, ok)
	assert.Equal(t, "up", v)

	v, ok = state.Property("FACING")
	require.True(t, ok)
	assert.Equal(t, "up", v)

	_, ok = state.Property("half")
	assert.False(t, ok)
}

func TestPos_Steps(t *testing.T) {
	p := Pos{X: 1, Y: 2, Z: 3}

	assert.Equal(t, Pos{1, 3, 3}, p.Up())
	assert.Equal(t, Pos{1, 1, 3}, p.Down())
	assert.Equal(t, Pos{0, 2, 3}, p.West())
	assert.Equal(t, Pos{2, 2, 3}, p.East())
	assert.Equal(t, Pos{1, 2, 2}, p.North())
	assert.Equal(t, Pos{1, 2, 4}, p.South())
}
