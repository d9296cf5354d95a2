package world

// BlockID identifies a concrete block, optionally namespaced ("minecraft:stone").
type BlockID string

// TypeTag classifies a block by kind. Tags form a hierarchy; a tag may derive
// from a parent tag (e.g. "leaves" derives from "plant").
type TypeTag string

// Material classifies the physical substance of a block independently of its
// exact identity (water-like, rock-like, plant-like, ...).
type Material string

// MaterialWater is the canonical material id for water-like blocks. Adjacency
// queries test against it.
const MaterialWater Material = "water"

// State is a read-only view of the block state at one position.
//
// Property looks up a state property by name. Implementations must match
// property names case-insensitively and report ok=false for properties the
// state does not carry.
type State interface {
	ID() BlockID
	TypeTag() TypeTag
	Material() Material
	Property(name string) (value string, ok bool)
}

// World supplies block states during predicate evaluation. Implementations
// are read-only from the engine's point of view: evaluation never writes
// through a World and never retains one beyond a single call.
//
// StateAt must return a non-nil State for every position; positions outside
// the populated area report an air-like state.
type World interface {
	StateAt(pos Pos) State
	IsAir(pos Pos) bool
}
