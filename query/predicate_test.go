package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelforge/blockquery/world"
)

// countingWorld wraps a World and counts state lookups, so tests can observe
// whether a combinator short-circuited.
type countingWorld struct {
	inner world.World
	calls int
}

func (w *countingWorld) StateAt(pos world.Pos) world.State {
	w.calls++
	return w.inner.StateAt(pos)
}

func (w *countingWorld) IsAir(pos world.Pos) bool {
	w.calls++
	return w.inner.IsAir(pos)
}

func stoneWorld() *world.Snapshot {
	snap := world.NewSnapshot()
	snap.Set(world.Pos{X: 0, Y: 0, Z: 0}, &world.BlockState{
		Block:      "minecraft:stone",
		Tag:        "stone",
		Mat:        "rock",
		Properties: map[string]string{"variant": "smooth"},
	})
	return snap
}

func TestBuilders_Collapse(t *testing.T) {
	stone := Block("minecraft:stone")

	or := &OrBuilder{}
	or.Add(stone)
	assert.Same(t, stone, or.Build(), "single-child Or collapses to its child")

	and := &AndBuilder{}
	and.Add(stone)
	assert.Same(t, stone, and.Build(), "single-child And collapses to its child")
}

func TestBuilders_Empty(t *testing.T) {
	snap := stoneWorld()
	origin := world.Pos{}

	assert.False(t, (&OrBuilder{}).Build().Matches(snap, origin))
	assert.True(t, (&AndBuilder{}).Build().Matches(snap, origin))
}

func TestBuilders_IgnoreNil(t *testing.T) {
	or := &OrBuilder{}
	or.Add(nil)
	or.Add(Block("minecraft:stone"))
	or.Add(nil)

	p, ok := or.Build().(*BlockPredicate)
	require.True(t, ok)
	assert.Equal(t, world.BlockID("minecraft:stone"), p.ID)
}

func TestOr_ShortCircuits(t *testing.T) {
	w := &countingWorld{inner: stoneWorld()}
	p := Or(Block("minecraft:stone"), Block("minecraft:dirt"))

	require.True(t, p.Matches(w, world.Pos{}))
	assert.Equal(t, 1, w.calls, "second child must not be evaluated")
}

func TestAnd_ShortCircuits(t *testing.T) {
	w := &countingWorld{inner: stoneWorld()}
	p := And(Block("minecraft:dirt"), Block("minecraft:stone"))

	require.False(t, p.Matches(w, world.Pos{}))
	assert.Equal(t, 1, w.calls, "second child must not be evaluated")
}

func TestNot(t *testing.T) {
	snap := stoneWorld()
	origin := world.Pos{}

	assert.False(t, Not(Block("minecraft:stone")).Matches(snap, origin))
	assert.True(t, Not(Block("minecraft:dirt")).Matches(snap, origin))
}

func TestMatchAnyNone(t *testing.T) {
	snap := stoneWorld()
	origin := world.Pos{}

	assert.True(t, MatchAny().Matches(snap, origin))
	assert.False(t, MatchNone().Matches(snap, origin))
}

func TestExactState(t *testing.T) {
	state := &world.BlockState{Block: "minecraft:stone"}
	twin := &world.BlockState{Block: "minecraft:stone"}
	snap := world.NewSnapshot()
	snap.Set(world.Pos{}, state)

	assert.True(t, ExactState(state).Matches(snap, world.Pos{}))
	assert.False(t, ExactState(twin).Matches(snap, world.Pos{}),
		"exact-state compares identity, not field equality")
}

func TestTypeTag_StrictAndDerived(t *testing.T) {
	snap := world.NewSnapshot()
	snap.Set(world.Pos{}, &world.BlockState{Block: "bop:willow_leaves", Tag: "leaves"})

	strict := TypeTag("plant", true)
	assert.False(t, strict.Matches(snap, world.Pos{}))

	loose := TypeTag("plant", false, "leaves", "sapling")
	assert.True(t, loose.Matches(snap, world.Pos{}))

	looseExact := TypeTag("leaves", false)
	assert.True(t, looseExact.Matches(snap, world.Pos{}), "non-strict accepts the tag itself")
}

func TestProperty_CaseInsensitive(t *testing.T) {
	snap := world.NewSnapshot()
	snap.Set(world.Pos{}, &world.BlockState{
		Block:      "minecraft:log",
		Properties: map[string]string{"Facing": "UP"},
	})

	assert.True(t, Property("facing", "up").Matches(snap, world.Pos{}))
	assert.True(t, Property("FACING", "Up").Matches(snap, world.Pos{}))
	assert.False(t, Property("facing", "down").Matches(snap, world.Pos{}))
}

func TestProperty_AbsentIsFalse(t *testing.T) {
	snap := stoneWorld()
	assert.False(t, Property("facing", "up").Matches(snap, world.Pos{}))
}

func TestMaterial(t *testing.T) {
	snap := stoneWorld()

	assert.True(t, Material("rock").Matches(snap, world.Pos{}))
	assert.False(t, Material(world.MaterialWater).Matches(snap, world.Pos{}))
}

func TestAdjacentWater(t *testing.T) {
	snap := stoneWorld()
	snap.Set(world.Pos{X: 1, Y: 0, Z: 0}, &world.BlockState{
		Block: "minecraft:water",
		Mat:   world.MaterialWater,
	})

	assert.True(t, AdjacentWater().Matches(snap, world.Pos{}))
	assert.False(t, AdjacentWater().Matches(snap, world.Pos{X: 5, Y: 0, Z: 5}))

	// water above does not count, only the four horizontal neighbors
	snap.Set(world.Pos{X: 5, Y: 1, Z: 5}, &world.BlockState{
		Block: "minecraft:water",
		Mat:   world.MaterialWater,
	})
	assert.False(t, AdjacentWater().Matches(snap, world.Pos{X: 5, Y: 0, Z: 5}))
}

func TestAirAbove(t *testing.T) {
	snap := stoneWorld()
	assert.True(t, AirAbove().Matches(snap, world.Pos{}))

	snap.Set(world.Pos{X: 0, Y: 1, Z: 0}, &world.BlockState{Block: "minecraft:dirt"})
	assert.False(t, AirAbove().Matches(snap, world.Pos{}))
}

func TestAltitude(t *testing.T) {
	snap := stoneWorld()
	p := Altitude(60, 70)

	assert.False(t, p.Matches(snap, world.Pos{Y: 59}))
	assert.True(t, p.Matches(snap, world.Pos{Y: 60}))
	assert.True(t, p.Matches(snap, world.Pos{Y: 70}))
	assert.False(t, p.Matches(snap, world.Pos{Y: 71}))
}

func TestPredicate_String(t *testing.T) {
	tests := []struct {
		name string
		p    Predicate
		want string
	}{
		{"any", MatchAny(), "any"},
		{"none", MatchNone(), "none"},
		{"block", Block("minecraft:stone"), "block(minecraft:stone)"},
		{"not", Not(Block("minecraft:stone")), "not(block(minecraft:stone))"},
		{"or", Or(Block("a"), Block("b")), "or(block(a), block(b))"},
		{"and", And(Block("a"), Block("b")), "and(block(a), block(b))"},
		{"type", TypeTag("plant", false), "type(plant)"},
		{"exact type", TypeTag("plant", true), "exact-type(plant)"},
		{"property", Property("variant", "blue", "red"), "property(variant=blue|red)"},
		{"material", Material("water"), "material(water)"},
		{"adjacent water", AdjacentWater(), "adjacent-water"},
		{"air above", AirAbove(), "air-above"},
		{"altitude", Altitude(0, 64), "altitude(0..64)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.String())
		})
	}
}
