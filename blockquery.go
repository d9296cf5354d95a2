// Package blockquery compiles compact textual block queries ("air above and
// not water") into reusable predicates and evaluates them against world data
// during content placement. The grammar: comma-separated segments are
// alternatives (OR), juxtaposed tokens within a segment are conjoined (AND),
// and '!' negates the single following token. Tokens are bare block
// identifiers, %typeTag, $strictTypeTag, ~material, @predefinedQuery, or
// [property=value|value] groups.
package blockquery

import (
	"github.com/voxelforge/blockquery/query"
	"github.com/voxelforge/blockquery/world"
)

// Compile parses spec into a predicate, resolving names through resolver and
// @name references through store.
func Compile(spec string, resolver query.Resolver, store *query.Store) (query.Predicate, error) {
	return query.NewCompiler(resolver, store).Compile(spec)
}

// MustCompile is like Compile but panics on error. Intended for specs known
// good at init time.
func MustCompile(spec string, resolver query.Resolver, store *query.Store) query.Predicate {
	p, err := Compile(spec, resolver, store)
	if err != nil {
		panic(err)
	}
	return p
}

// Matches evaluates a compiled predicate at a position.
func Matches(p query.Predicate, w world.World, pos world.Pos) bool {
	return p.Matches(w, pos)
}
