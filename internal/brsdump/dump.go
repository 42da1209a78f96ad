// Package brsdump writes converted saves as YAML documents, one brick per
// flow mapping, for inspection and diffing.
package brsdump

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"bls2brs/internal/brick"
	"bls2brs/internal/convert"
)

// Version of the dump schema.
const Version = "1"

// Document is the YAML form of a save.
type Document struct {
	Version     string      `yaml:"version"`
	Map         string      `yaml:"map"`
	Author      User        `yaml:"author"`
	Description string      `yaml:"description"`
	SaveTime    time.Time   `yaml:"save_time"`
	Mods        []string    `yaml:"mods"`
	BrickAssets []string    `yaml:"brick_assets"`
	Materials   []string    `yaml:"materials"`
	Colors      []Color     `yaml:"colors"`
	BrickOwners []User      `yaml:"brick_owners"`
	Bricks      []BrickLine `yaml:"bricks"`
}

// User is the YAML form of convert.User.
type User struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Color is written as a flow sequence [r, g, b, a].
type Color [4]uint8

// ColorRef is either a palette reference or a custom color.
type ColorRef struct {
	Set    *uint32 `yaml:"set,omitempty"`
	Custom *Color  `yaml:"custom,omitempty,flow"`
	Index  *uint32 `yaml:"index,omitempty"`
}

// BrickLine is the YAML form of brick.Target.
type BrickLine struct {
	Asset      uint32    `yaml:"asset"`
	Size       [3]uint32 `yaml:"size,flow"`
	Position   [3]int32  `yaml:"position,flow"`
	Direction  string    `yaml:"direction"`
	Rotation   uint8     `yaml:"rotation"`
	Collision  bool      `yaml:"collision"`
	Visibility bool      `yaml:"visibility"`
	Material   uint32    `yaml:"material"`
	Color      ColorRef  `yaml:"color,flow"`
	Owner      uint32    `yaml:"owner"`
}

// MarshalYAML implements custom YAML marshaling for Color.
func (c Color) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range c {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}

	return node, nil
}

// MarshalYAML implements custom YAML marshaling for BrickLine, keeping each
// brick on one line.
func (b BrickLine) MarshalYAML() (any, error) {
	type plain BrickLine

	node := &yaml.Node{}
	if err := node.Encode(plain(b)); err != nil {
		return nil, err
	}

	node.Style = yaml.FlowStyle

	return node, nil
}

// FromSave converts a save to its YAML form.
func FromSave(data *convert.SaveData) *Document {
	doc := &Document{
		Version:     Version,
		Map:         data.Map,
		Author:      fromUser(data.Author),
		Description: data.Description,
		SaveTime:    data.SaveTime.UTC(),
		Mods:        append([]string{}, data.Mods...),
		BrickAssets: append([]string{}, data.BrickAssets...),
		Materials:   append([]string{}, data.Materials...),
		Colors:      make([]Color, len(data.Colors)),
		BrickOwners: make([]User, len(data.BrickOwners)),
		Bricks:      make([]BrickLine, len(data.Bricks)),
	}

	for i, c := range data.Colors {
		doc.Colors[i] = Color{c.R, c.G, c.B, c.A}
	}

	for i, u := range data.BrickOwners {
		doc.BrickOwners[i] = fromUser(u)
	}

	for i, t := range data.Bricks {
		doc.Bricks[i] = fromTarget(t)
	}

	return doc
}

func fromUser(u convert.User) User {
	return User{ID: u.ID.String(), Name: u.Name}
}

func fromTarget(t brick.Target) BrickLine {
	var ref ColorRef

	index := t.Color.Index
	if t.Color.Custom {
		c := Color{t.Color.RGBA.R, t.Color.RGBA.G, t.Color.RGBA.B, t.Color.RGBA.A}
		ref.Custom, ref.Index = &c, &index
	} else {
		ref.Set = &index
	}

	return BrickLine{
		Asset:      t.AssetIndex,
		Size:       t.Size,
		Position:   t.Position,
		Direction:  t.Direction.String(),
		Rotation:   t.Rotation,
		Collision:  t.Collision,
		Visibility: t.Visibility,
		Material:   uint32(t.Material),
		Color:      ref,
		Owner:      t.OwnerIndex,
	}
}

// Save converts the document back, checking ids and directions.
func (d *Document) Save() (*convert.SaveData, error) {
	if d.Version != Version {
		return nil, fmt.Errorf("unsupported dump version %q", d.Version)
	}

	author, err := d.Author.user()
	if err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}

	data := &convert.SaveData{
		Map:         d.Map,
		Author:      author,
		Description: d.Description,
		SaveTime:    d.SaveTime,
		Mods:        d.Mods,
		BrickAssets: d.BrickAssets,
		Materials:   d.Materials,
		Colors:      make([]brick.Color, len(d.Colors)),
		BrickOwners: make([]convert.User, len(d.BrickOwners)),
		Bricks:      make([]brick.Target, len(d.Bricks)),
	}

	for i, c := range d.Colors {
		data.Colors[i] = brick.RGBA(c[0], c[1], c[2], c[3])
	}

	for i, u := range d.BrickOwners {
		if data.BrickOwners[i], err = u.user(); err != nil {
			return nil, fmt.Errorf("owner %d: %w", i, err)
		}
	}

	for i, b := range d.Bricks {
		if data.Bricks[i], err = b.target(); err != nil {
			return nil, fmt.Errorf("brick %d: %w", i, err)
		}
	}

	return data, nil
}

func (u User) user() (convert.User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return convert.User{}, err
	}

	return convert.User{ID: id, Name: u.Name}, nil
}

func (b BrickLine) target() (brick.Target, error) {
	dir, err := brick.ParseDirection(b.Direction)
	if err != nil {
		return brick.Target{}, err
	}

	var mode brick.ColorMode

	switch {
	case b.Color.Custom != nil && b.Color.Index != nil:
		c := *b.Color.Custom
		mode = brick.CustomColor(brick.RGBA(c[0], c[1], c[2], c[3]), *b.Color.Index)
	case b.Color.Set != nil:
		mode = brick.SetColor(*b.Color.Set)
	default:
		return brick.Target{}, errors.New("color needs set or custom and index")
	}

	return brick.Target{
		AssetIndex: b.Asset,
		Size:       b.Size,
		Position:   b.Position,
		Direction:  dir,
		Rotation:   b.Rotation,
		Collision:  b.Collision,
		Visibility: b.Visibility,
		Material:   brick.Material(b.Material),
		Color:      mode,
		OwnerIndex: b.Owner,
	}, nil
}

// Writer is a convert.Sink that encodes saves to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter returns a sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes data as one YAML document.
func (w *Writer) Write(data *convert.SaveData) error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)

	if err := enc.Encode(FromSave(data)); err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}

	return enc.Close()
}

// FileSink is a convert.Sink that writes to a file, replacing it.
type FileSink struct {
	Path string
}

// Write creates the file and encodes data into it.
func (s FileSink) Write(data *convert.SaveData) (err error) {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Path, err)
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", s.Path, cerr)
		}
	}()

	return NewWriter(f).Write(data)
}

// Read decodes a dump written by Writer.
func Read(r io.Reader) (*convert.SaveData, error) {
	var doc Document

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse dump: %w", err)
	}

	return doc.Save()
}
