package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voxelforge/blockquery/world"
)

// Predicate is a compiled, immutable test against a block position. A
// Predicate never mutates the world it is handed and never retains it beyond
// the call, so a single compiled tree may be evaluated concurrently from many
// generation workers.
type Predicate interface {
	// Matches reports whether the position satisfies the predicate.
	Matches(w world.World, pos world.Pos) bool

	// String renders the predicate tree for diagnostics.
	String() string
}

var (
	_ Predicate = AnyPredicate{}
	_ Predicate = NonePredicate{}
	_ Predicate = (*OrPredicate)(nil)
	_ Predicate = (*AndPredicate)(nil)
	_ Predicate = (*NotPredicate)(nil)
	_ Predicate = (*BlockPredicate)(nil)
	_ Predicate = (*StatePredicate)(nil)
	_ Predicate = (*TypeTagPredicate)(nil)
	_ Predicate = (*PropertyPredicate)(nil)
	_ Predicate = (*MaterialPredicate)(nil)
	_ Predicate = AdjacentWaterPredicate{}
	_ Predicate = AirAbovePredicate{}
	_ Predicate = (*AltitudePredicate)(nil)
)

// AnyPredicate matches every position.
type AnyPredicate struct{}

// MatchAny returns a predicate that is always true.
func MatchAny() Predicate { return AnyPredicate{} }

func (AnyPredicate) Matches(world.World, world.Pos) bool { return true }
func (AnyPredicate) String() string                      { return "any" }

// NonePredicate matches no position.
type NonePredicate struct{}

// MatchNone returns a predicate that is always false.
func MatchNone() Predicate { return NonePredicate{} }

func (NonePredicate) Matches(world.World, world.Pos) bool { return false }
func (NonePredicate) String() string                      { return "none" }

// OrPredicate matches when any child matches. Evaluation short-circuits at
// the first true child, in source order.
type OrPredicate struct {
	children []Predicate
}

func (p *OrPredicate) Matches(w world.World, pos world.Pos) bool {
	for _, child := range p.children {
		if child.Matches(w, pos) {
			return true
		}
	}
	return false
}

func (p *OrPredicate) String() string { return formatCombinator("or", p.children) }

// AndPredicate matches when all children match. Evaluation short-circuits at
// the first false child, in source order.
type AndPredicate struct {
	children []Predicate
}

func (p *AndPredicate) Matches(w world.World, pos world.Pos) bool {
	for _, child := range p.children {
		if !child.Matches(w, pos) {
			return false
		}
	}
	return true
}

func (p *AndPredicate) String() string { return formatCombinator("and", p.children) }

// NotPredicate inverts its child.
type NotPredicate struct {
	child Predicate
}

// Not returns a predicate matching exactly when child does not.
func Not(child Predicate) Predicate {
	return &NotPredicate{child: child}
}

func (p *NotPredicate) Matches(w world.World, pos world.Pos) bool {
	return !p.child.Matches(w, pos)
}

func (p *NotPredicate) String() string { return "not(" + p.child.String() + ")" }

// BlockPredicate matches states with a particular block identity.
type BlockPredicate struct {
	ID world.BlockID
}

// Block returns a predicate matching the given block identity.
func Block(id world.BlockID) Predicate {
	return &BlockPredicate{ID: id}
}

func (p *BlockPredicate) Matches(w world.World, pos world.Pos) bool {
	return w.StateAt(pos).ID() == p.ID
}

func (p *BlockPredicate) String() string { return fmt.Sprintf("block(%s)", p.ID) }

// StatePredicate matches one exact state value. States are compared by
// interface equality, so the caller must hand in the same state value (or
// pointer) the world reports.
type StatePredicate struct {
	State world.State
}

// ExactState returns a predicate matching exactly the given state.
func ExactState(state world.State) Predicate {
	return &StatePredicate{State: state}
}

func (p *StatePredicate) Matches(w world.World, pos world.Pos) bool {
	return w.StateAt(pos) == p.State
}

func (p *StatePredicate) String() string { return fmt.Sprintf("state(%s)", p.State.ID()) }

// TypeTagPredicate matches states by their type tag. Strict predicates accept
// the exact tag only; non-strict predicates also accept every tag derived
// from it. The accept set is resolved at compile time so evaluation needs no
// registry access.
type TypeTagPredicate struct {
	Tag    world.TypeTag
	Strict bool

	accept map[world.TypeTag]bool
}

// TypeTag returns a type-tag predicate. For non-strict matching, derived
// lists the tags deriving from tag; the tag itself is always accepted.
func TypeTag(tag world.TypeTag, strict bool, derived ...world.TypeTag) Predicate {
	p := &TypeTagPredicate{Tag: tag, Strict: strict}
	if !strict {
		p.accept = make(map[world.TypeTag]bool, len(derived)+1)
		p.accept[tag] = true
		for _, d := range derived {
			p.accept[d] = true
		}
	}
	return p
}

func (p *TypeTagPredicate) Matches(w world.World, pos world.Pos) bool {
	tag := w.StateAt(pos).TypeTag()
	if p.Strict {
		return tag == p.Tag
	}
	return p.accept[tag]
}

func (p *TypeTagPredicate) String() string {
	if p.Strict {
		return fmt.Sprintf("exact-type(%s)", p.Tag)
	}
	return fmt.Sprintf("type(%s)", p.Tag)
}

// PropertyPredicate matches states carrying a named property whose value is
// in an accepted set. Both the property name and its values are compared
// case-insensitively. A state without the property never matches; property
// existence is a per-state question answered at evaluation time.
type PropertyPredicate struct {
	Name string

	values map[string]bool
}

// Property returns a property predicate accepting any of the given values.
func Property(name string, values ...string) Predicate {
	p := &PropertyPredicate{
		Name:   strings.ToLower(name),
		values: make(map[string]bool, len(values)),
	}
	for _, v := range values {
		p.values[strings.ToLower(v)] = true
	}
	return p
}

func (p *PropertyPredicate) Matches(w world.World, pos world.Pos) bool {
	value, ok := w.StateAt(pos).Property(p.Name)
	if !ok {
		return false
	}
	return p.values[strings.ToLower(value)]
}

func (p *PropertyPredicate) String() string {
	values := make([]string, 0, len(p.values))
	for v := range p.values {
		values = append(values, v)
	}
	sort.Strings(values)
	return fmt.Sprintf("property(%s=%s)", p.Name, strings.Join(values, "|"))
}

// MaterialPredicate matches states by material tag.
type MaterialPredicate struct {
	Mat world.Material
}

// Material returns a predicate matching the given material tag.
func Material(m world.Material) Predicate {
	return &MaterialPredicate{Mat: m}
}

func (p *MaterialPredicate) Matches(w world.World, pos world.Pos) bool {
	return w.StateAt(pos).Material() == p.Mat
}

func (p *MaterialPredicate) String() string { return fmt.Sprintf("material(%s)", p.Mat) }

// AdjacentWaterPredicate matches positions with a water-material neighbor on
// any of the four horizontal sides.
type AdjacentWaterPredicate struct{}

// AdjacentWater returns a predicate matching positions next to water.
func AdjacentWater() Predicate { return AdjacentWaterPredicate{} }

func (AdjacentWaterPredicate) Matches(w world.World, pos world.Pos) bool {
	return w.StateAt(pos.West()).Material() == world.MaterialWater ||
		w.StateAt(pos.East()).Material() == world.MaterialWater ||
		w.StateAt(pos.North()).Material() == world.MaterialWater ||
		w.StateAt(pos.South()).Material() == world.MaterialWater
}

func (AdjacentWaterPredicate) String() string { return "adjacent-water" }

// AirAbovePredicate matches positions with air directly above.
type AirAbovePredicate struct{}

// AirAbove returns a predicate matching positions with air above.
func AirAbove() Predicate { return AirAbovePredicate{} }

func (AirAbovePredicate) Matches(w world.World, pos world.Pos) bool {
	return w.IsAir(pos.Up())
}

func (AirAbovePredicate) String() string { return "air-above" }

// AltitudePredicate matches positions whose Y coordinate lies in an inclusive
// range.
type AltitudePredicate struct {
	Min, Max int
}

// Altitude returns a predicate matching positions with min <= Y <= max.
func Altitude(min, max int) Predicate {
	return &AltitudePredicate{Min: min, Max: max}
}

func (p *AltitudePredicate) Matches(_ world.World, pos world.Pos) bool {
	return pos.Y >= p.Min && pos.Y <= p.Max
}

func (p *AltitudePredicate) String() string {
	return fmt.Sprintf("altitude(%d..%d)", p.Min, p.Max)
}

// OrBuilder accumulates children for an OrPredicate. Combinators use an
// append-then-freeze pattern: children are gathered while a segment compiles
// and Build finalizes them into an immutable node, collapsing a singleton to
// its only child so callers always see the simplest equivalent tree.
type OrBuilder struct {
	children []Predicate
}

// Add appends a child. Nil children are ignored.
func (b *OrBuilder) Add(child Predicate) {
	if child != nil {
		b.children = append(b.children, child)
	}
}

// Build finalizes the accumulated children. An empty builder yields a
// predicate matching nothing.
func (b *OrBuilder) Build() Predicate {
	switch len(b.children) {
	case 0:
		return MatchNone()
	case 1:
		return b.children[0]
	default:
		return &OrPredicate{children: b.children}
	}
}

// AndBuilder accumulates children for an AndPredicate. See OrBuilder.
type AndBuilder struct {
	children []Predicate
}

// Add appends a child. Nil children are ignored.
func (b *AndBuilder) Add(child Predicate) {
	if child != nil {
		b.children = append(b.children, child)
	}
}

// Build finalizes the accumulated children. An empty builder yields a
// predicate matching everything, so an empty segment is vacuously true.
func (b *AndBuilder) Build() Predicate {
	switch len(b.children) {
	case 0:
		return MatchAny()
	case 1:
		return b.children[0]
	default:
		return &AndPredicate{children: b.children}
	}
}

// Or combines the given predicates into a disjunction.
func Or(children ...Predicate) Predicate {
	b := &OrBuilder{}
	for _, child := range children {
		b.Add(child)
	}
	return b.Build()
}

// And combines the given predicates into a conjunction.
func And(children ...Predicate) Predicate {
	b := &AndBuilder{}
	for _, child := range children {
		b.Add(child)
	}
	return b.Build()
}

func formatCombinator(name string, children []Predicate) string {
	parts := make([]string, len(children))
	for i, child := range children {
		parts[i] = child.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
