// Package color converts Blockland's linear palette colors into the
// 8-bit colors stored in Brickadia saves.
package color

import (
	"math"

	"bls2brs/internal/brick"
)

// GammaExpand applies the sRGB expansion curve to one component in [0,1].
// Formula: if u <= 0.04045: u/12.92; else: pow((u+0.055)/1.055, 2.4).
func GammaExpand(u float32) float32 {
	if u <= 0.04045 {
		return u / 12.92
	}

	return float32(math.Pow(float64((u+0.055)/1.055), 2.4))
}

// FromLinear expands every component of c, alpha included, and scales it
// to [0,255]. Values are clamped and truncated.
func FromLinear(c brick.LinearColor) brick.Color {
	return brick.Color{
		R: toByte(GammaExpand(c.R)),
		G: toByte(GammaExpand(c.G)),
		B: toByte(GammaExpand(c.B)),
		A: toByte(GammaExpand(c.A)),
	}
}

// Palette converts a master palette entry by entry; the result is
// index-aligned with src.
func Palette(src []brick.LinearColor) []brick.Color {
	out := make([]brick.Color, len(src))
	for i, c := range src {
		out[i] = FromLinear(c)
	}

	return out
}

func toByte(v float32) uint8 {
	v *= 255
	if !(v > 0) { // NaN as well
		return 0
	}

	if v >= 255 {
		return 255
	}

	return uint8(v)
}
