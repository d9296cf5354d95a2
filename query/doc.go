// Package query implements the block query language: a compact textual
// notation for criteria on block positions and block states, compiled into
// immutable, composable predicates.
//
// A query is a comma-separated list of segments; the query matches when any
// segment matches. A segment is a run of juxtaposed tokens and matches when
// all of them do. Each token may be prefixed with '!' to negate it:
//
//	stone            block identity, via registry lookup
//	minecraft:stone  namespaced block identity
//	%leaves          type tag, accepting derived tags
//	$leaves          type tag, exact match only
//	~water           material tag
//	@fertile         reference to a predefined query
//	[facing=up]      property test; [red|blue] tests the default property
//
// So "grass,dirt [snowy=false]" reads "grass, or dirt that is not snowy".
//
// Compilation resolves every name up front through a Resolver and a Store
// and fails fast with a *ParseError on the first unknown name or malformed
// token. Evaluation never fails: lookups that miss at evaluation time make
// that leaf false.
package query
