package query

import "github.com/voxelforge/blockquery/world"

// Resolver supplies the name lookups the compiler needs. The engine only
// reads through a Resolver; population is the host's business and must finish
// before any compile call that references the names.
type Resolver interface {
	// ResolveBlock resolves a bare or namespaced identifier to a block.
	ResolveBlock(name string) (world.BlockID, bool)

	// ResolveTypeTag resolves a type-tag name, trying the configured
	// namespace prefixes in order. First match wins.
	ResolveTypeTag(name string) (world.TypeTag, bool)

	// ResolveMaterial resolves a material-tag name.
	ResolveMaterial(name string) (world.Material, bool)

	// DerivedTags lists every tag deriving, directly or transitively,
	// from tag. Used to build the accept set of non-strict type-tag
	// predicates at compile time.
	DerivedTags(tag world.TypeTag) []world.TypeTag
}

// Registry is the standard map-backed Resolver. Registration is last-write-
// wins per name, so hosts can override defaults without an error path.
// Registries are not safe for concurrent mutation; the host must finish
// populating before handing one to concurrent compiles.
type Registry struct {
	blocks     map[string]world.BlockID
	typeTags   map[world.TypeTag]world.TypeTag // tag -> parent, "" at the root
	materials  map[string]world.Material
	searchPath []string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithSearchPath sets the ordered namespace prefixes tried when resolving
// type-tag names. Resolution order is load-bearing: when a name exists under
// several prefixes, the first prefix wins.
func WithSearchPath(prefixes ...string) RegistryOption {
	return func(r *Registry) {
		r.searchPath = prefixes
	}
}

// NewRegistry returns an empty Registry. The default search path is the bare
// prefix only.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		blocks:     make(map[string]world.BlockID),
		typeTags:   make(map[world.TypeTag]world.TypeTag),
		materials:  make(map[string]world.Material),
		searchPath: []string{""},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddBlock registers a block under the given lookup name.
func (r *Registry) AddBlock(name string, id world.BlockID) {
	r.blocks[name] = id
}

// AddBlocks registers each block under its own id string.
func (r *Registry) AddBlocks(ids ...world.BlockID) {
	for _, id := range ids {
		r.blocks[string(id)] = id
	}
}

// AddMaterial registers a material under the given lookup name.
func (r *Registry) AddMaterial(name string, m world.Material) {
	r.materials[name] = m
}

// AddTypeTag registers a tag with its parent tag ("" for a root tag).
func (r *Registry) AddTypeTag(tag, parent world.TypeTag) {
	r.typeTags[tag] = parent
}

func (r *Registry) ResolveBlock(name string) (world.BlockID, bool) {
	id, ok := r.blocks[name]
	return id, ok
}

func (r *Registry) ResolveTypeTag(name string) (world.TypeTag, bool) {
	for _, prefix := range r.searchPath {
		tag := world.TypeTag(prefix + name)
		if _, ok := r.typeTags[tag]; ok {
			return tag, true
		}
	}
	return "", false
}

func (r *Registry) ResolveMaterial(name string) (world.Material, bool) {
	m, ok := r.materials[name]
	return m, ok
}

func (r *Registry) DerivedTags(tag world.TypeTag) []world.TypeTag {
	var derived []world.TypeTag
	for t := range r.typeTags {
		if t != tag && r.derivesFrom(t, tag) {
			derived = append(derived, t)
		}
	}
	return derived
}

// derivesFrom walks t's parent chain looking for ancestor. The visited guard
// keeps a miswired cyclic hierarchy from hanging compilation.
func (r *Registry) derivesFrom(t, ancestor world.TypeTag) bool {
	visited := make(map[world.TypeTag]bool)
	for t != "" && !visited[t] {
		visited[t] = true
		parent, ok := r.typeTags[t]
		if !ok {
			return false
		}
		if parent == ancestor {
			return true
		}
		t = parent
	}
	return false
}
