package check

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voxelforge/blockquery/internal"
	"github.com/voxelforge/blockquery/query"
	"github.com/voxelforge/blockquery/world"
)

// Config is the vocabulary a query file is checked against: the names the
// registry resolves plus the predefined queries available to @name
// references.
type Config struct {
	// SearchPath lists the namespace prefixes tried, in order, when
	// resolving %name and $name type tags.
	SearchPath []string `yaml:"search_path"`

	// DefaultProperty is the property name bare bracket values test.
	DefaultProperty string `yaml:"default_property"`

	// Blocks maps lookup names to block ids. A mapping to "" registers
	// the name as its own id.
	Blocks map[string]string `yaml:"blocks"`

	// Materials maps lookup names to material ids.
	Materials map[string]string `yaml:"materials"`

	TypeTags []TypeTagConfig `yaml:"type_tags"`

	// Queries are predefined queries, compiled in order so later entries
	// may reference earlier ones with @name.
	Queries []NamedQuery `yaml:"queries"`
}

// TypeTagConfig declares one type tag and its optional parent tag.
type TypeTagConfig struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
}

// NamedQuery declares one predefined query.
type NamedQuery struct {
	Name  string `yaml:"name"`
	Query string `yaml:"query"`
}

// DefaultConfig returns the starter vocabulary written by `blockquery init`.
func DefaultConfig() Config {
	return Config{
		SearchPath:      []string{""},
		DefaultProperty: query.DefaultProperty,
		Blocks: map[string]string{
			"air":   "",
			"stone": "minecraft:stone",
			"dirt":  "minecraft:dirt",
			"grass": "minecraft:grass",
			"sand":  "minecraft:sand",
			"water": "minecraft:water",
		},
		Materials: map[string]string{
			"air":    "air",
			"ground": "ground",
			"rock":   "rock",
			"water":  string(world.MaterialWater),
		},
		TypeTags: []TypeTagConfig{
			{Name: "plant"},
			{Name: "leaves", Parent: "plant"},
			{Name: "sapling", Parent: "plant"},
		},
		Queries: []NamedQuery{
			{Name: "fertile", Query: "grass,dirt"},
			{Name: "surface", Query: "@fertile,sand"},
		},
	}
}

// ParseConfig reads a vocabulary config file. An empty path yields the
// default config.
func ParseConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var config Config
	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if config.DefaultProperty == "" {
		config.DefaultProperty = query.DefaultProperty
	}
	if len(config.SearchPath) == 0 {
		config.SearchPath = []string{""}
	}
	return config, nil
}

// WriteConfig writes a vocabulary config file.
func WriteConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// New builds an engine from the config file at configPath. The registry and
// store are fully populated before the engine's compiler sees them, honoring
// the populate-then-read lifecycle.
func New(configPath string) (*internal.Engine, error) {
	config, err := ParseConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(config)
}

// NewFromConfig builds an engine from an already-parsed config.
func NewFromConfig(config Config) (*internal.Engine, error) {
	registry := query.NewRegistry(query.WithSearchPath(config.SearchPath...))
	for name, id := range config.Blocks {
		if id == "" {
			id = name
		}
		registry.AddBlock(name, world.BlockID(id))
	}
	for name, m := range config.Materials {
		registry.AddMaterial(name, world.Material(m))
	}
	for _, tag := range config.TypeTags {
		registry.AddTypeTag(world.TypeTag(tag.Name), world.TypeTag(tag.Parent))
	}

	store := query.NewStore()
	compiler := query.NewCompiler(registry, store,
		query.WithDefaultProperty(config.DefaultProperty))
	for _, nq := range config.Queries {
		p, err := compiler.Compile(nq.Query)
		if err != nil {
			return nil, fmt.Errorf("predefined query %q: %w", nq.Name, err)
		}
		store.Register(nq.Name, p)
	}

	return internal.NewEngine(registry, store,
		query.WithDefaultProperty(config.DefaultProperty)), nil
}
