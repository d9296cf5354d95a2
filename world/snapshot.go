package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BlockState is a concrete State backed by plain data. It is the state type
// used by Snapshot worlds and by tests.
type BlockState struct {
	Block      BlockID
	Tag        TypeTag
	Mat        Material
	Properties map[string]string
}

func (s *BlockState) ID() BlockID        { return s.Block }
func (s *BlockState) TypeTag() TypeTag   { return s.Tag }
func (s *BlockState) Material() Material { return s.Mat }

func (s *BlockState) Property(name string) (string, bool) {
	for k, v := range s.Properties {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// air is the state reported for every position a Snapshot does not populate.
var air = &BlockState{Block: "air", Mat: "air"}

// Snapshot is an in-memory World built from explicit per-position states.
// Unpopulated positions are air.
type Snapshot struct {
	states map[Pos]*BlockState
}

// NewSnapshot returns an empty in-memory world.
func NewSnapshot() *Snapshot {
	return &Snapshot{states: make(map[Pos]*BlockState)}
}

// Set places a state at pos, replacing any previous state there.
func (s *Snapshot) Set(pos Pos, state *BlockState) {
	s.states[pos] = state
}

func (s *Snapshot) StateAt(pos Pos) State {
	if st, ok := s.states[pos]; ok {
		return st
	}
	return air
}

func (s *Snapshot) IsAir(pos Pos) bool {
	st, ok := s.states[pos]
	return !ok || st.Block == "air"
}

// Len reports how many positions the snapshot populates.
func (s *Snapshot) Len() int { return len(s.states) }

// Bounds returns the inclusive min/max corners of the populated region,
// or ok=false for an empty snapshot.
func (s *Snapshot) Bounds() (min, max Pos, ok bool) {
	for pos := range s.states {
		if !ok {
			min, max, ok = pos, pos, true
			continue
		}
		if pos.X < min.X {
			min.X = pos.X
		}
		if pos.Y < min.Y {
			min.Y = pos.Y
		}
		if pos.Z < min.Z {
			min.Z = pos.Z
		}
		if pos.X > max.X {
			max.X = pos.X
		}
		if pos.Y > max.Y {
			max.Y = pos.Y
		}
		if pos.Z > max.Z {
			max.Z = pos.Z
		}
	}
	return min, max, ok
}

type snapshotFile struct {
	Blocks []snapshotBlock `yaml:"blocks"`
}

type snapshotBlock struct {
	At         []int             `yaml:"at"`
	ID         string            `yaml:"id"`
	Type       string            `yaml:"type"`
	Material   string            `yaml:"material"`
	Properties map[string]string `yaml:"properties"`
}

// ParseSnapshot builds a Snapshot from YAML data of the form:
//
//	blocks:
//	  - at: [0, 0, 0]
//	    id: minecraft:stone
//	    type: stone
//	    material: rock
//	    properties: {variant: smooth}
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	snap := NewSnapshot()
	for i, b := range file.Blocks {
		if len(b.At) != 3 {
			return nil, fmt.Errorf("snapshot block %d: position must be [x, y, z]", i)
		}
		if b.ID == "" {
			return nil, fmt.Errorf("snapshot block %d: missing block id", i)
		}
		snap.Set(Pos{b.At[0], b.At[1], b.At[2]}, &BlockState{
			Block:      BlockID(b.ID),
			Tag:        TypeTag(b.Type),
			Mat:        Material(b.Material),
			Properties: b.Properties,
		})
	}
	return snap, nil
}

// LoadSnapshot reads and parses a snapshot YAML file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data)
}
