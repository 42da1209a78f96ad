package brick

// Descriptor describes one target brick relative to a source brick's
// local frame. The zero value is not useful; build descriptors with New.
type Descriptor struct {
	// Asset is the Brickadia brick asset name.
	Asset string
	// Size is the brick half-extent in Brickadia units. Zero for fixed
	// size assets.
	Size [3]uint32
	// Offset is the local offset from the source brick center, before the
	// source angle is applied.
	Offset [3]int32
	// RotationOffset is added to the source angle, in quarter turns.
	RotationOffset uint8
	// Color overrides the source color when set.
	Color *Color
	// Direction overrides the Z+ orientation when set.
	Direction *Direction

	// Deferred places the brick after all non-deferred bricks.
	Deferred bool
	// Microwedge turns a sloped candidate into an axis-aligned microwedge.
	Microwedge bool
	// Lattice lays the asset on its side.
	Lattice bool
	// InvertedWedge turns the brick 180 degrees when its rotation is odd.
	InvertedWedge bool
	// InvertedCorner turns the brick 180 degrees when its rotation is even.
	InvertedCorner bool
	// Procedural marks descriptors produced by composite pattern rules;
	// invisible procedural bricks are deferred.
	Procedural bool
	// NoCollide disables collision regardless of the source brick.
	NoCollide bool
}

// New returns a descriptor for asset with a rotation offset of one
// quarter turn, the default alignment between the two games.
func New(asset string) Descriptor {
	return Descriptor{Asset: asset, RotationOffset: 1}
}

func (d Descriptor) WithSize(x, y, z uint32) Descriptor {
	d.Size = [3]uint32{x, y, z}
	return d
}

func (d Descriptor) WithOffset(x, y, z int32) Descriptor {
	d.Offset = [3]int32{x, y, z}
	return d
}

func (d Descriptor) WithRotation(quarterTurns uint8) Descriptor {
	d.RotationOffset = quarterTurns
	return d
}

func (d Descriptor) WithColor(c Color) Descriptor {
	d.Color = &c
	return d
}

func (d Descriptor) WithDirection(dir Direction) Descriptor {
	d.Direction = dir.Ptr()
	return d
}

func (d Descriptor) WithDeferred(v bool) Descriptor {
	d.Deferred = v
	return d
}

func (d Descriptor) WithMicrowedge(v bool) Descriptor {
	d.Microwedge = v
	return d
}

func (d Descriptor) WithLattice(v bool) Descriptor {
	d.Lattice = v
	return d
}

func (d Descriptor) WithInvertedWedge(v bool) Descriptor {
	d.InvertedWedge = v
	return d
}

func (d Descriptor) WithInvertedCorner(v bool) Descriptor {
	d.InvertedCorner = v
	return d
}

func (d Descriptor) WithProcedural(v bool) Descriptor {
	d.Procedural = v
	return d
}

func (d Descriptor) WithNoCollide() Descriptor {
	d.NoCollide = true
	return d
}

// Clone returns a deep copy of d; override pointers are not shared.
func (d Descriptor) Clone() Descriptor {
	if d.Color != nil {
		c := *d.Color
		d.Color = &c
	}

	if d.Direction != nil {
		d.Direction = d.Direction.Ptr()
	}

	return d
}

// CloneAll returns deep copies of ds.
func CloneAll(ds []Descriptor) []Descriptor {
	out := make([]Descriptor, len(ds))
	for i := range ds {
		out[i] = ds[i].Clone()
	}

	return out
}
