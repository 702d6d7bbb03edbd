package arrow

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidStyle reports an arrowhead style outside the known set.
var ErrInvalidStyle = errors.New("invalid arrowhead style")

const (
	// HalfAngle is the angle, in radians, between each wing of a
	// [Triangle] arrowhead and the reversed terminal direction.
	HalfAngle = math.Pi / 6

	// BarbAngle is the angle, in radians, between each ear of a [Barbed]
	// arrowhead and the reversed terminal direction.
	BarbAngle = 0.3

	// neckRatio is the distance of a barbed head's neck from its tip, as a
	// fraction of the head's size.
	neckRatio = 0.75
)

// ArrowheadStyle selects the arrowhead polygon. The zero value is
// [Triangle].
type ArrowheadStyle int

const (
	// Triangle heads are [wing1, tip, wing2].
	Triangle ArrowheadStyle = iota
	// Barbed heads are [ear1, tip, ear2, neck], a chevron with a notch cut
	// into its base.
	Barbed
)

func (s ArrowheadStyle) Valid() bool {
	return s == Triangle || s == Barbed
}

func (s ArrowheadStyle) String() string {
	switch s {
	case Triangle:
		return "triangle"
	case Barbed:
		return "barbed"
	default:
		return fmt.Sprintf("ArrowheadStyle(%d)", int(s))
	}
}

// ParseArrowheadStyle parses "triangle" or "barbed", ignoring case.
func ParseArrowheadStyle(s string) (ArrowheadStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triangle":
		return Triangle, nil
	case "barbed":
		return Barbed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, s)
	}
}

func (s ArrowheadStyle) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStyle, int(s))
	}
	return []byte(s.String()), nil
}

func (s *ArrowheadStyle) UnmarshalText(text []byte) error {
	v, err := ParseArrowheadStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// TerminalDirection returns the unit direction of travel at the end of c.
//
// The direction is that of P3−P2, which is B′(1)/3. Only if P2 coincides
// exactly with P3 does it fall back to P3−P0; a control arm of any nonzero
// length, however short, sets the direction. If P3−P0 is zero too, the
// direction is undefined and ok is false.
func TerminalDirection(c CubicBez) (u Vec2, ok bool) {
	d := c.P3.Sub(c.P2)
	if d.IsZero() {
		d = c.P3.Sub(c.P0)
		if d.IsZero() {
			return Vec2{}, false
		}
	}
	return d.Normalize(), true
}

// BuildArrowhead returns the [Triangle] arrowhead at the end of c.
func BuildArrowhead(c CubicBez, size float64) Polygon {
	return Triangle.Build(c, size)
}

// Build returns the arrowhead polygon at the end of c, scaled by size.
//
// The tip is always c.P3 and always at index 1. Sizes that are not positive
// produce a polygon whose points all equal the tip, as does a curve without
// a terminal direction. Build panics if s is not valid.
func (s ArrowheadStyle) Build(c CubicBez, size float64) Polygon {
	tip := c.P3
	u, ok := TerminalDirection(c)
	if !ok || !(size > 0) {
		size = 0
	}
	back := u.Negate()
	wing := func(th, length float64) Point {
		return tip.Translate(back.Rotate(th).Mul(length))
	}

	switch s {
	case Triangle:
		return Polygon{
			wing(HalfAngle, size),
			tip,
			wing(-HalfAngle, size),
		}
	case Barbed:
		return Polygon{
			wing(BarbAngle, size),
			tip,
			wing(-BarbAngle, size),
			tip.Translate(back.Mul(neckRatio * size)),
		}
	default:
		panic(fmt.Sprintf("unhandled arrowhead style %v", s))
	}
}
