// Package geometry places a descriptor in the world frame of its source
// brick: rotation, position, orientation, size permutations and
// collision. Every function is pure.
package geometry

import (
	"math"

	"bls2brs/internal/brick"
)

// Scale is the number of Brickadia units per Blockland unit.
const Scale = 20

// Placement is the concrete geometry of one target brick.
type Placement struct {
	Size      [3]uint32
	Position  [3]int32
	Direction brick.Direction
	Rotation  uint8
	Collision bool
}

// Rotation returns (base + offset) mod 4.
func Rotation(base, offset uint8) uint8 {
	return (base%4 + offset%4) % 4
}

// Rotate90 turns a 2D vector one quarter turn counter-clockwise.
func Rotate90(v [2]int32) [2]int32 {
	return [2]int32{-v[1], v[0]}
}

// RotateOffset applies Rotate90 times mod 4 times.
func RotateOffset(v [2]int32, times uint8) [2]int32 {
	for i := uint8(0); i < times%4; i++ {
		v = Rotate90(v)
	}

	return v
}

// Position converts a Blockland position to Brickadia units and adds a
// world-frame offset. The two games swap the X and Y axes. Coordinates
// saturate at the int32 range.
func Position(p [3]float32, offset [3]int32) [3]int32 {
	return [3]int32{
		addUnits(toUnits(p[1]), offset[0]),
		addUnits(toUnits(p[0]), offset[1]),
		addUnits(toUnits(p[2]), offset[2]),
	}
}

// toUnits scales v and truncates it toward zero. NaN maps to zero.
func toUnits(v float32) int32 {
	f := float64(v * Scale)

	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

func addUnits(a, b int32) int32 {
	return int32(max(min(int64(a)+int64(b), math.MaxInt32), math.MinInt32))
}

// Transform computes the placement of d relative to src.
func Transform(src *brick.Source, d *brick.Descriptor) Placement {
	angle := src.Angle % 4
	rotation := Rotation(angle, d.RotationOffset)

	xy := RotateOffset([2]int32{d.Offset[0], d.Offset[1]}, angle)
	position := Position(src.Position, [3]int32{xy[0], xy[1], d.Offset[2]})

	size := d.Size
	direction := d.Direction

	if d.Microwedge {
		size, direction, rotation = microwedge(size, direction, rotation)
	}

	if d.Lattice {
		size, direction = lattice(size, rotation)
	}

	odd := rotation%2 == 1
	if (d.InvertedWedge && odd) || (d.InvertedCorner && !odd) {
		rotation = (rotation + 2) % 4
	}

	dir := brick.ZPositive
	if direction != nil {
		dir = *direction
	}

	return Placement{
		Size:      size,
		Position:  position,
		Direction: dir,
		Rotation:  rotation,
		Collision: src.Collision && !d.NoCollide,
	}
}

// microwedge lays a vertical slope down as an axis-aligned microwedge.
// A Z- request made before the conversion adds a half turn.
func microwedge(size [3]uint32, dir *brick.Direction, rotation uint8) ([3]uint32, *brick.Direction, uint8) {
	inverted := dir != nil && *dir == brick.ZNegative
	x, y, z := size[0], size[1], size[2]

	var out brick.Direction

	switch rotation {
	case 0:
		out = brick.YPositive
		size = [3]uint32{z, x, y}
	case 2:
		out = brick.YPositive
		size = [3]uint32{x, z, y}
		rotation = (rotation + 1) % 4
	case 1:
		out = brick.XPositive
		size = [3]uint32{x, z, y}
		rotation = (rotation + 2) % 4
	default:
		out = brick.XPositive
		size = [3]uint32{z, x, y}
		rotation = (rotation + 1) % 4
	}

	if inverted {
		rotation = (rotation + 2) % 4
	}

	return size, &out, rotation
}

// lattice lays an asset on its side, facing along its rotation.
func lattice(size [3]uint32, rotation uint8) ([3]uint32, *brick.Direction) {
	var out brick.Direction

	switch rotation {
	case 0:
		out = brick.YPositive
		size = [3]uint32{size[1], size[0], size[2]}
	case 2:
		out = brick.YNegative
		size = [3]uint32{size[1], size[0], size[2]}
	case 1:
		out = brick.XNegative
	default:
		out = brick.XPositive
	}

	return size, &out
}
