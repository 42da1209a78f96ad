package brick

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Direction,Material -linecomment -output=enum_string.go

// Direction is the axis a Brickadia brick's top faces.
type Direction uint8

const (
	XPositive Direction = iota // x+
	XNegative                  // x-
	YPositive                  // y+
	YNegative                  // y-
	ZPositive                  // z+
	ZNegative                  // z-
)

// ParseDirection parses a short axis name such as "z-" or "Y+".
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := XPositive; d <= ZNegative; d++ {
		if d.String() == s {
			return d, nil
		}
	}

	return 0, fmt.Errorf("unknown direction %q (expected one of x+, x-, y+, y-, z+, z-)", s)
}

// Ptr returns a pointer to a copy of d.
func (d Direction) Ptr() *Direction {
	return &d
}
