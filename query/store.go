package query

import "sort"

// Store maps names to compiled predicates for @name references. The host
// populates it before compilation begins and treats it as read-only
// afterwards; a registration racing a compile is a host-side ordering bug,
// not something the engine guards against. Re-registering a name overwrites
// the prior predicate.
type Store struct {
	queries map[string]Predicate
}

// NewStore returns an empty predefined-query store.
func NewStore() *Store {
	return &Store{queries: make(map[string]Predicate)}
}

// Register stores a compiled predicate under name. Last write wins.
func (s *Store) Register(name string, p Predicate) {
	s.queries[name] = p
}

// Lookup returns the predicate registered under name.
func (s *Store) Lookup(name string) (Predicate, bool) {
	p, ok := s.queries[name]
	return p, ok
}

// Names lists the registered query names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.queries))
	for name := range s.queries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
