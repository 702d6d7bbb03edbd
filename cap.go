package arrow

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidCap reports a start cap style outside the known set.
var ErrInvalidCap = errors.New("invalid cap style")

// CapStyle selects the shape drawn at the start of the curve. The zero value
// is [NoCap].
type CapStyle int

const (
	NoCap CapStyle = iota
	// CircleCap is a stroked circle centered on the start point.
	CircleCap
	// DiscCap is a filled circle centered on the start point.
	DiscCap
	// ArrowheadCap is an arrowhead pointing backwards out of the start
	// point, with its tip on it.
	ArrowheadCap
)

var capNames = [...]string{
	NoCap:        "none",
	CircleCap:    "circle",
	DiscCap:      "disc",
	ArrowheadCap: "arrowhead",
}

func (s CapStyle) Valid() bool {
	return s >= NoCap && s <= ArrowheadCap
}

func (s CapStyle) String() string {
	if !s.Valid() {
		return fmt.Sprintf("CapStyle(%d)", int(s))
	}
	return capNames[s]
}

// ParseCapStyle parses "none", "circle", "disc" or "arrowhead", ignoring
// case.
func ParseCapStyle(s string) (CapStyle, error) {
	s = strings.TrimSpace(s)
	for c := NoCap; c <= ArrowheadCap; c++ {
		if strings.EqualFold(s, capNames[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCap, s)
}

func (s CapStyle) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCap, int(s))
	}
	return []byte(s.String()), nil
}

func (s *CapStyle) UnmarshalText(text []byte) error {
	v, err := ParseCapStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Cap is the shape at the start of a curve.
type Cap struct {
	Style CapStyle
	// Circle is set for CircleCap and DiscCap. Its radius is the cap size.
	Circle Circle
	// Head is set for ArrowheadCap, with its tip at index 1.
	Head Polygon
}

// BuildStartCap returns the cap of the given style at c.P0. Circles and discs
// have a radius of size. Arrowheads have wings of length size, use the
// head style, and point against the curve's initial direction. Sizes that
// are not positive collapse the cap onto P0. BuildStartCap panics if style
// or head is not valid.
func BuildStartCap(c CubicBez, style CapStyle, head ArrowheadStyle, size float64) Cap {
	if !(size > 0) {
		size = 0
	}
	switch style {
	case NoCap:
		return Cap{}
	case CircleCap, DiscCap:
		return Cap{Style: style, Circle: Circle{Center: c.P0, Radius: size}}
	case ArrowheadCap:
		return Cap{Style: style, Head: head.Build(c.Reverse(), size)}
	default:
		panic(fmt.Sprintf("unhandled cap style %v", style))
	}
}

// BoundingBox returns the box enclosing the cap. It is meaningless for
// NoCap.
func (cp Cap) BoundingBox() Rect {
	switch cp.Style {
	case CircleCap, DiscCap:
		return cp.Circle.BoundingBox()
	case ArrowheadCap:
		return cp.Head.BoundingBox()
	default:
		return Rect{}
	}
}

// Transform maps the cap into another space. The circle's radius is scaled
// by the transform's mean scale factor.
func (cp Cap) Transform(aff Affine) Cap {
	out := Cap{Style: cp.Style}
	if cp.Style == CircleCap || cp.Style == DiscCap {
		out.Circle = Circle{
			Center: cp.Circle.Center.Transform(aff),
			Radius: cp.Circle.Radius * math.Sqrt(math.Abs(aff.Determinant())),
		}
	}
	if cp.Head != nil {
		out.Head = cp.Head.Transform(aff)
	}
	return out
}
