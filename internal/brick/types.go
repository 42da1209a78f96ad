package brick

import "fmt"

// Source is one brick as read from a Blockland save.
type Source struct {
	// Name is the UI name of the brick datablock, the mapping key.
	Name string
	// Position is the brick center in Blockland units.
	Position [3]float32
	// Angle is the quarter-turn index about the vertical axis (0-3).
	Angle uint8
	// Baseplate is set for bricks flagged as baseplates.
	Baseplate bool
	// ColorIndex references the save's master palette.
	ColorIndex uint8
	// LinearColor, when set, is an inline linear RGBA color that replaces
	// the palette reference.
	LinearColor *LinearColor
	// Print is the auxiliary variant string (print texture name).
	Print string
	// ColorFx is the color effect code (0 none, 1 pearl, 2 chrome, 3 glow, ...).
	ColorFx uint8
	// ShapeFx is the shape effect code.
	ShapeFx    uint8
	Raycasting bool
	Collision  bool
	Rendering  bool
}

// LinearColor is a linear floating point RGBA color in [0,1].
type LinearColor struct {
	R, G, B, A float32
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA returns a Color from its components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// String returns the color as "rgba(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// ColorMode references a palette entry or carries a custom color.
type ColorMode struct {
	// Custom is true when RGBA holds the color of the brick.
	Custom bool
	// Index is the palette index for Set colors, or the index of the
	// interned custom color in the save's color table.
	Index uint32
	// RGBA is only meaningful when Custom is true.
	RGBA Color
}

// SetColor returns a ColorMode referencing palette entry index.
func SetColor(index uint32) ColorMode {
	return ColorMode{Index: index}
}

// CustomColor returns a custom ColorMode for c interned at index.
func CustomColor(c Color, index uint32) ColorMode {
	return ColorMode{Custom: true, Index: index, RGBA: c}
}

// Target is one Brickadia brick.
type Target struct {
	AssetIndex uint32
	Size       [3]uint32
	Position   [3]int32
	Direction  Direction
	Rotation   uint8
	Collision  bool
	Visibility bool
	Material   Material
	Color      ColorMode
	OwnerIndex uint32
}
