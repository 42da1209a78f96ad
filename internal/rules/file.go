package rules

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bls2brs/internal/brick"
)

// File is the root of a YAML rule file.
type File struct {
	// Version of the rule schema.
	Version string `yaml:"version,omitempty"`

	// Bricks maps exact UI names to their descriptors.
	Bricks map[string]EntryList `yaml:"bricks"`
}

// Entry is the YAML form of one descriptor.
type Entry struct {
	Asset          string    `yaml:"asset"`
	Size           [3]uint32 `yaml:"size,omitempty,flow"`
	Offset         [3]int32  `yaml:"offset,omitempty,flow"`
	Rotation       *uint8    `yaml:"rotation,omitempty"`
	Color          *RGBA     `yaml:"color,omitempty"`
	Direction      string    `yaml:"direction,omitempty"`
	Deferred       bool      `yaml:"deferred,omitempty"`
	Microwedge     bool      `yaml:"microwedge,omitempty"`
	Lattice        bool      `yaml:"lattice,omitempty"`
	InvertedWedge  bool      `yaml:"inverted_wedge,omitempty"`
	InvertedCorner bool      `yaml:"inverted_corner,omitempty"`
	Procedural     bool      `yaml:"procedural,omitempty"`
	NoCollide      bool      `yaml:"nocollide,omitempty"`
}

// EntryList accepts a single entry or a sequence of entries.
type EntryList []Entry

// RGBA is a color written as [r, g, b] or [r, g, b, a].
type RGBA brick.Color

// UnmarshalYAML implements custom YAML unmarshaling for EntryList.
func (l *EntryList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var e Entry

		err := node.Decode(&e)
		if err != nil {
			return err
		}

		*l = EntryList{e}

		return nil

	case yaml.SequenceNode:
		var entries []Entry

		err := node.Decode(&entries)
		if err != nil {
			return err
		}

		*l = entries

		return nil

	default:
		return fmt.Errorf("line %d: expected descriptor or list of descriptors", node.Line)
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for RGBA.
func (c *RGBA) UnmarshalYAML(node *yaml.Node) error {
	var parts []uint8

	err := node.Decode(&parts)
	if err != nil {
		return fmt.Errorf("line %d: color: %w", node.Line, err)
	}

	switch len(parts) {
	case 3:
		*c = RGBA{R: parts[0], G: parts[1], B: parts[2], A: 255}
	case 4:
		*c = RGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}
	default:
		return fmt.Errorf("line %d: color needs 3 or 4 components, got %d", node.Line, len(parts))
	}

	return nil
}

// MarshalYAML implements custom YAML marshaling for RGBA.
func (c RGBA) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []uint8{c.R, c.G, c.B, c.A} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}

	return node, nil
}

// Descriptor converts the entry to a descriptor.
func (e Entry) Descriptor() (brick.Descriptor, error) {
	if e.Asset == "" {
		return brick.Descriptor{}, errors.New("asset is required")
	}

	d := brick.New(e.Asset).
		WithSize(e.Size[0], e.Size[1], e.Size[2]).
		WithOffset(e.Offset[0], e.Offset[1], e.Offset[2]).
		WithDeferred(e.Deferred).
		WithMicrowedge(e.Microwedge).
		WithLattice(e.Lattice).
		WithInvertedWedge(e.InvertedWedge).
		WithInvertedCorner(e.InvertedCorner).
		WithProcedural(e.Procedural)

	if e.NoCollide {
		d = d.WithNoCollide()
	}

	if e.Rotation != nil {
		d = d.WithRotation(*e.Rotation % 4)
	}

	if e.Color != nil {
		d = d.WithColor(brick.Color(*e.Color))
	}

	if e.Direction != "" {
		dir, err := brick.ParseDirection(e.Direction)
		if err != nil {
			return brick.Descriptor{}, err
		}

		d = d.WithDirection(dir)
	}

	return d, nil
}

// LoadFile loads a YAML rule file and adds its literal rules to r.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rule file %s: %w", path, err)
	}

	if err := r.Load(data); err != nil {
		return fmt.Errorf("rule file %s: %w", path, err)
	}

	return nil
}

// Load parses YAML rule data and adds its literal rules to r. Nothing is
// added when the data is invalid.
func (r *Registry) Load(data []byte) error {
	f, err := Parse(data)
	if err != nil {
		return err
	}

	literals, err := f.Literals()
	if err != nil {
		return err
	}

	for name, ds := range literals {
		r.literals[name] = ds
	}

	return nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = "1"
	}

	if f.Version != "1" {
		return nil, fmt.Errorf("unsupported rule file version %q", f.Version)
	}

	return &f, nil
}

// Literals converts every entry of f to descriptors.
func (f *File) Literals() (map[string][]brick.Descriptor, error) {
	out := make(map[string][]brick.Descriptor, len(f.Bricks))

	for name, entries := range f.Bricks {
		if len(entries) == 0 {
			return nil, fmt.Errorf("brick %q: no descriptors", name)
		}

		ds := make([]brick.Descriptor, 0, len(entries))

		for i, e := range entries {
			d, err := e.Descriptor()
			if err != nil {
				return nil, fmt.Errorf("brick %q, descriptor %d: %w", name, i, err)
			}

			ds = append(ds, d)
		}

		out[name] = ds
	}

	return out, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
