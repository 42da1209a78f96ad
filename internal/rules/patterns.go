package rules

import (
	"math"
	"regexp"

	"bls2brs/internal/brick"
)

// Asset names shared by the pattern rules.
const (
	assetBrick      = "PB_DefaultBrick"
	assetMicroBrick = "PB_DefaultMicroBrick"
	assetMicroWedge = "PB_DefaultMicroWedge"
	assetTile       = "PB_DefaultTile"
	assetSmoothTile = "PB_DefaultSmoothTile"
	assetWedge      = "PB_DefaultWedge"
	assetArch       = "PB_DefaultArch"
)

// tilePrints are the print names that render as a studded tile rather
// than a smooth one.
var tilePrints = map[string]struct{}{
	"1x2f/blank": {},
	"2x2f/blank": {},
}

// DefaultPatterns returns the built-in pattern rules in resolution order.
func DefaultPatterns() []PatternRule {
	return []PatternRule{
		{
			Name:     "basic",
			Pattern:  regexp.MustCompile(`^(\d+)x(\d+)(?:x(\d+)|([Ff])|([Hh]))?( Print)?( Ceiling)?$`),
			Generate: basicBrick,
		},
		{
			Name:     "ramp",
			Pattern:  regexp.MustCompile(`^(-)?(18|25|45|65|72|80)° ?(Inv )?Ramp(?: (\d+)x)?( Corner)?(?: Print)?$`),
			Generate: degreeRamp,
		},
		{
			Name:     "crest",
			Pattern:  regexp.MustCompile(`(?P<angle>25|45)° Crest (?:(?P<end>End)|(?P<corner>Corner)|(?P<length>\d+)x)`),
			Generate: crest,
		},
		{
			Name:     "tile",
			Pattern:  regexp.MustCompile(`^(\d+)x(\d+)F Tile$`),
			Generate: flatTile,
		},
		{
			Name:     "baseplate",
			Pattern:  regexp.MustCompile(`^(\d+)x(\d+) Base$`),
			Generate: baseplate,
		},
		{
			Name:     "cube",
			Pattern:  regexp.MustCompile(`^(\d+)x Cube(?: (\d+)H)?$`),
			Generate: cube,
		},
		{
			Name: "modter",
			Pattern: regexp.MustCompile(`^\s?(?P<size>\d+)x (?:(?P<cube>Cube)|(?P<ramp>Ramp)|(?P<cornera>CornerA|CorA)|` +
				`(?P<cornerb>CornerB|CorB)|(?P<cornerc>CornerC|CorC)|(?P<cornerd>CornerD|CorD)|(?P<wedge>Wedge))` +
				`(?P<inv2> Inv)?(?:(?P<steep> Steep)|(?P<three_quarters> 3/4h)|(?P<half> 1/2h)|(?P<quarter> 1/4h)| )?(?P<inv> Inv.)?$`),
			Generate: modTerrain,
		},
		{
			Name:     "arch",
			Pattern:  regexp.MustCompile(`(\d+)x(\d+)x?(?P<height>\d+)? Arch(?P<up> Up)?`),
			Generate: arch,
		},
		{
			Name:     "panel",
			Pattern:  regexp.MustCompile(`^(\d)h Panel (?P<corner>Corner )?(?P<length>\d)x`),
			Generate: panel,
		},
		{
			Name:     "center-ramp",
			Pattern:  regexp.MustCompile(`^(-)?(\d+)° Center (Diag )?Ramp 1x`),
			Generate: centerRamp,
		},
		{
			Name:     "log",
			Pattern:  regexp.MustCompile(`^1x(\d) Log( Wall)?`),
			Generate: logBrick,
		},
	}
}

// basicBrick handles "WxL", "WxLxH", "WxLF", "WxLH" with optional Print
// and Ceiling suffixes.
func basicBrick(m Match, src *brick.Source) ([]brick.Descriptor, bool) {
	width, ok := m.Uint(1)
	if !ok {
		return nil, false
	}

	length, ok := m.Uint(2)
	if !ok {
		return nil, false
	}

	var z uint32

	switch {
	case m.Has(4): // F
		z = 2
	case m.Has(5): // H
		z = 4
	case m.Has(3):
		h, ok := m.Uint(3)
		if !ok {
			return nil, false
		}

		if z, ok = mulSize(h, 6); !ok {
			return nil, false
		}
	default:
		z = 6
	}

	isPrint := m.Has(6)

	asset := assetBrick
	if z == 2 && isPrint {
		asset = assetSmoothTile
		if _, isTile := tilePrints[src.Print]; isTile {
			asset = assetTile
		}
	}

	var rotation uint8 = 1
	if isPrint {
		rotation = 0
	}

	dir := brick.ZPositive
	if m.Has(7) {
		dir = brick.ZNegative
	}

	x, y, ok := studs(width, length)
	if !ok {
		return nil, false
	}

	return []brick.Descriptor{
		brick.New(asset).
			WithSize(x, y, z).
			WithRotation(rotation).
			WithDirection(dir),
	}, true
}

// degreeRamp handles the Brick_18Degree ramp pack and the stock ramps.
func degreeRamp(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	neg := m.Has(1)
	inv := m.Has(3)
	corner := m.Has(5)

	if inv && !corner {
		return nil, false
	}

	var asset string

	switch {
	case neg && inv:
		asset = "PB_DefaultRampInnerCornerInverted"
	case neg && corner:
		asset = "PB_DefaultRampCornerInverted"
	case neg:
		asset = "PB_DefaultRampInverted"
	case inv:
		asset = "PB_DefaultRampInnerCorner"
	case corner:
		asset = "PB_DefaultRampCorner"
	default:
		asset = "PB_DefaultRamp"
	}

	var x, z uint32

	switch m.Group(2) {
	case "18":
		x, z = 20, 6
	case "25":
		x, z = 15, 6
	case "45":
		x, z = 10, 6
	case "65":
		x, z = 10, 12
	case "72":
		x, z = 10, 18
	case "80":
		x, z = 10, 30
	default:
		return nil, false
	}

	y := x

	if m.Has(4) {
		if corner {
			return nil, false
		}

		length, ok := m.Uint(4)
		if !ok {
			return nil, false
		}

		if y, ok = mulSize(length, 5); !ok {
			return nil, false
		}
	}

	var rotation uint8
	if corner && inv {
		rotation = 1
	}

	return []brick.Descriptor{
		brick.New(asset).WithSize(x, y, z).WithRotation(rotation),
	}, true
}

func crest(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	var (
		z      uint32
		offset int32
	)

	switch m.Named("angle") {
	case "25":
		z, offset = 4, -2
	case "45":
		z, offset = 6, 0
	default:
		return nil, false
	}

	var (
		asset    string
		x, y     uint32
		rotation uint8
	)

	switch {
	case m.HasNamed("end"):
		asset, x, y, rotation = "PB_DefaultRampCrestEnd", 10, 5, 2
	case m.HasNamed("corner"):
		asset, x, y, rotation = "PB_DefaultRampCrestCorner", 10, 10, 2
	default:
		length, ok := m.NamedUint("length")
		if !ok {
			return nil, false
		}

		if y, ok = mulSize(length, 5); !ok {
			return nil, false
		}

		asset, x, rotation = "PB_DefaultRampCrest", 10, 0
	}

	return []brick.Descriptor{
		brick.New(asset).WithSize(x, y, z).WithRotation(rotation).WithOffset(0, 0, offset),
	}, true
}

func flatTile(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	length, ok := m.Uint(1)
	if !ok {
		return nil, false
	}

	width, ok := m.Uint(2)
	if !ok {
		return nil, false
	}

	x, y, ok := studs(width, length)
	if !ok {
		return nil, false
	}

	return []brick.Descriptor{brick.New(assetTile).WithSize(x, y, 2)}, true
}

func baseplate(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	width, ok := m.Uint(1)
	if !ok {
		return nil, false
	}

	length, ok := m.Uint(2)
	if !ok {
		return nil, false
	}

	x, y, ok := studs(width, length)
	if !ok {
		return nil, false
	}

	return []brick.Descriptor{brick.New(assetBrick).WithSize(x, y, 2)}, true
}

// cube handles Brick_2x_Cube style names, "4x Cube" and "4x Cube 2H".
// An unparsable extension is treated as absent.
func cube(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	size, ok := m.Uint(1)
	if !ok {
		return nil, false
	}

	side, ok := mulSize(size, 5)
	if !ok {
		return nil, false
	}

	height := side
	if n, ok := m.Uint(2); ok {
		if height, ok = mulSize(side, n); !ok {
			return nil, false
		}
	}

	return []brick.Descriptor{brick.New(assetBrick).WithSize(side, side, height)}, true
}

// modTerrain handles the ModTer pack: cubes, ramps, wedges and corners,
// with steep and fractional heights and inverted variants.
func modTerrain(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	size, ok := m.NamedUint("size")
	if !ok {
		return nil, false
	}

	side, ok := mulSize(size, 5)
	if !ok {
		return nil, false
	}

	var height uint32

	switch {
	case m.HasNamed("steep"):
		height, ok = mulSize(side, 2)
	case m.HasNamed("three_quarters"):
		height, ok = mulSize(side, 3)
		height /= 4
	case m.HasNamed("half"):
		height = size / 2 * 5
	case m.HasNamed("quarter"):
		height = size / 4 * 5
	default:
		height = side
	}

	if !ok {
		return nil, false
	}

	var (
		asset      string
		rotation   uint8
		microwedge bool
	)

	isRamp := m.HasNamed("ramp")
	isWedge := m.HasNamed("wedge")

	switch {
	case m.HasNamed("cube"):
		asset, rotation = assetMicroBrick, 1
	case isWedge:
		asset, rotation = assetMicroWedge, 2
	case isRamp:
		asset, rotation, microwedge = assetMicroWedge, 3, true
	case m.HasNamed("cornera"):
		asset, rotation = "PB_DefaultMicroWedgeTriangleCorner", 2
	case m.HasNamed("cornerb"):
		asset, rotation = "PB_DefaultMicroWedgeOuterCorner", 2
	case m.HasNamed("cornerc"):
		asset, rotation = "PB_DefaultMicroWedgeCorner", 2
	case m.HasNamed("cornerd"):
		asset, rotation = "PB_DefaultMicroWedgeInnerCorner", 2
	default:
		return nil, false
	}

	dir := brick.ZPositive
	invertedWedge := false

	if m.HasNamed("inv") || m.HasNamed("inv2") {
		dir = brick.ZNegative
		if isRamp {
			rotation += 2
		} else {
			rotation += 3
			invertedWedge = true
		}
	}

	if isWedge && (size == 2 || (size == 4 && height != side)) {
		rotation++
	}

	return []brick.Descriptor{
		brick.New(asset).
			WithSize(side, side, height).
			WithRotation(rotation % 4).
			WithMicrowedge(microwedge).
			WithInvertedWedge(invertedWedge).
			WithDirection(dir).
			WithProcedural(true),
	}, true
}

// arch handles the Brick_Arch pack. Without an explicit height, 5-long
// arches are 2 high and 8-long arches 3 high.
func arch(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	width, ok := m.Uint(1)
	if !ok {
		return nil, false
	}

	length, ok := m.Uint(2)
	if !ok {
		return nil, false
	}

	var height uint32

	if m.HasNamed("height") {
		height, ok = m.NamedUint("height")
		if !ok {
			return nil, false
		}
	} else {
		switch length {
		case 5:
			height = 2
		case 8:
			height = 3
		default:
			height = 1
		}
	}

	dir := brick.ZPositive
	if m.HasNamed("up") {
		dir = brick.ZNegative
	}

	var rotation uint8 = 1
	if length > 8 {
		rotation = 2
	}

	x, y, ok := studs(width, length)
	if !ok {
		return nil, false
	}

	z, ok := mulSize(height, 6)
	if !ok {
		return nil, false
	}

	return []brick.Descriptor{
		brick.New(assetArch).
			WithSize(x, y, z).
			WithDirection(dir).
			WithRotation(rotation),
	}, true
}

// panel handles the 1RandomPack panels, built from a base plate, a thin
// wall and, for tall panels, a top plate.
func panel(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	height, ok := m.Uint(1)
	if !ok {
		return nil, false
	}

	length, ok := m.NamedUint("length")
	if !ok {
		return nil, false
	}

	h := int32(height * 6)
	base := brick.New(assetMicroBrick).WithSize(length*5, 5, 2).WithOffset(0, 0, 2-h)

	switch {
	case m.HasNamed("corner"):
		return []brick.Descriptor{
			base,
			brick.New(assetMicroBrick).WithSize(length*5, 1, 4).WithOffset(-4, 0, 2),
			brick.New(assetMicroBrick).WithSize(1, 4, 4).WithOffset(1, -4, 2),
		}, true
	case height == 1:
		return []brick.Descriptor{
			base,
			brick.New(assetMicroBrick).WithSize(length*5, 1, 4).WithOffset(-4, 0, 2),
		}, true
	case height == 0:
		// The wall would have a negative height.
		return nil, false
	default:
		return []brick.Descriptor{
			base,
			brick.New(assetMicroBrick).WithSize(length*5, 1, height*6-4).WithOffset(-4, 0, 0),
			brick.New(assetMicroBrick).WithSize(length*5, 5, 2).WithOffset(0, 0, h-2),
		}, true
	}
}

// centerRamp handles the 1RandomPack center ramps: a 1x1 column flanked
// by two wedges.
func centerRamp(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	neg := m.Has(1)
	diag := m.Has(3)

	var z, x uint32

	switch m.Group(2) {
	case "18":
		z, x = 6, 15
	case "25":
		z, x = 6, 10
	case "45":
		z, x = 6, 5
	case "65":
		z, x = 12, 5
	case "72":
		z, x = 18, 5
	case "80":
		z, x = 30, 5
	default:
		return nil, false
	}

	dir, inverted := brick.ZPositive, false
	if neg {
		dir, inverted = brick.ZNegative, true
	}

	dir2, inverted2 := dir, inverted
	if diag {
		dir2, inverted2 = brick.ZNegative, true
	}

	shift := int32(x) + 5

	return []brick.Descriptor{
		brick.New(assetBrick).WithSize(5, 5, z).WithDirection(dir),
		brick.New(assetWedge).WithSize(x, 5, z).WithOffset(-shift, 0, 0).
			WithRotation(2).WithDirection(dir2).WithInvertedCorner(inverted2),
		brick.New(assetWedge).WithSize(x, 5, z).WithOffset(shift, 0, 0).
			WithRotation(0).WithDirection(dir).WithInvertedCorner(inverted),
	}, true
}

// logBrick handles the Log Bricks addon: a row of octo plates, or six
// stacked octo bricks per stud for walls.
func logBrick(m Match, _ *brick.Source) ([]brick.Descriptor, bool) {
	w, ok := m.Uint(1)
	if !ok {
		return nil, false
	}

	width := int32(w)
	wall := m.Has(2)
	start := (width - 1) * 5

	var out []brick.Descriptor

	for i := int32(0); i < width; i++ {
		x := i*10 - start

		if wall {
			for j := int32(0); j < 6; j++ {
				out = append(out, brick.New("B_1x_Octo").WithOffset(x, 0, j*10-25))
			}

			continue
		}

		out = append(out,
			brick.New("B_1x1F_Octo").WithOffset(x, 0, -4),
			brick.New("B_1x1F_Octo").WithOffset(x, 0, 0),
			brick.New("B_1x1F_Octo").WithOffset(x, 0, 4),
		)
	}

	return out, true
}

// mulSize returns the product of v and every factor, or false when it
// does not fit in a uint32.
func mulSize(v uint32, factors ...uint32) (uint32, bool) {
	p := uint64(v)
	for _, k := range factors {
		p *= uint64(k)
		if p > math.MaxUint32 {
			return 0, false
		}
	}

	return uint32(p), true
}

// studs converts a width and length in studs to brick units.
func studs(width, length uint32) (uint32, uint32, bool) {
	x, ok := mulSize(width, 5)
	if !ok {
		return 0, 0, false
	}

	y, ok := mulSize(length, 5)
	if !ok {
		return 0, 0, false
	}

	return x, y, true
}
