package convert

import (
	"time"

	"github.com/google/uuid"

	"bls2brs/internal/brick"
)

// PublicOwnerID is the id of the owner every converted brick belongs to.
var PublicOwnerID = uuid.UUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// User is a save author or brick owner.
type User struct {
	ID   uuid.UUID
	Name string
}

// SaveData is a complete Brickadia save, ready for a Sink.
type SaveData struct {
	Map         string
	Author      User
	Description string
	SaveTime    time.Time
	Mods        []string
	// BrickAssets is indexed by Target.AssetIndex.
	BrickAssets []string
	// Colors is the palette followed by interned custom colors.
	Colors []brick.Color
	// Materials is indexed by Target.Material.
	Materials   []string
	BrickOwners []User
	Bricks      []brick.Target
}

// Source is a stream of Blockland bricks with save metadata.
type Source interface {
	// Description returns the save description.
	Description() string
	// Colors returns the master palette in linear color space.
	Colors() []brick.LinearColor
	// CountHint returns the number of bricks the source expects to yield.
	CountHint() (int, bool)
	// Next returns the next brick, or io.EOF after the last one.
	Next() (brick.Source, error)
}

// Sink stores a finished save.
type Sink interface {
	Write(data *SaveData) error
}
