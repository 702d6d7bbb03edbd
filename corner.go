package arrow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCorner reports a corner outside the closed set of anchors.
var ErrInvalidCorner = errors.New("invalid corner")

// Corner is a symbolic anchor on a bounding rectangle. The zero value is not
// a valid corner.
type Corner int

const (
	TopLeft Corner = iota + 1
	TopRight
	BottomLeft
	BottomRight
	Center
)

var cornerNames = [...]string{
	TopLeft:     "topLeft",
	TopRight:    "topRight",
	BottomLeft:  "bottomLeft",
	BottomRight: "bottomRight",
	Center:      "center",
}

var cornerShortNames = [...]string{
	TopLeft:     "tl",
	TopRight:    "tr",
	BottomLeft:  "bl",
	BottomRight: "br",
	Center:      "center",
}

// Valid reports whether c is one of the five anchors.
func (c Corner) Valid() bool {
	return c >= TopLeft && c <= Center
}

func (c Corner) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Corner(%d)", int(c))
	}
	return cornerNames[c]
}

// Code returns the host's integer code for c: 0 through 4 in the order top
// left, top right, bottom left, bottom right, center. It returns -1 for
// invalid corners.
func (c Corner) Code() int {
	if !c.Valid() {
		return -1
	}
	return int(c - TopLeft)
}

// CornerFromCode is the inverse of [Corner.Code].
func CornerFromCode(code int) (Corner, error) {
	c := TopLeft + Corner(code)
	if code < 0 || !c.Valid() {
		return 0, fmt.Errorf("%w: code %d", ErrInvalidCorner, code)
	}
	return c, nil
}

// ParseCorner parses a corner from its name ("bottomLeft"), its short name
// ("bl"), or its integer code ("2"). Names are not case-sensitive.
func ParseCorner(s string) (Corner, error) {
	s = strings.TrimSpace(s)
	for c := TopLeft; c <= Center; c++ {
		if strings.EqualFold(s, cornerNames[c]) || strings.EqualFold(s, cornerShortNames[c]) {
			return c, nil
		}
	}
	if code, err := strconv.Atoi(s); err == nil {
		return CornerFromCode(code)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCorner, s)
}

func (c Corner) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCorner, int(c))
	}
	return []byte(cornerNames[c]), nil
}

func (c *Corner) UnmarshalText(text []byte) error {
	v, err := ParseCorner(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Point returns the anchor position of c on bounds.
//
// It panics if c is not valid; configurations are checked by
// [Config.Validate] before geometry is computed.
func (c Corner) Point(bounds Rect) Point {
	switch c {
	case TopLeft:
		return Pt(bounds.X0, bounds.Y0)
	case TopRight:
		return Pt(bounds.X1, bounds.Y0)
	case BottomLeft:
		return Pt(bounds.X0, bounds.Y1)
	case BottomRight:
		return Pt(bounds.X1, bounds.Y1)
	case Center:
		return bounds.Center()
	default:
		panic(fmt.Sprintf("unhandled corner %v", c))
	}
}

// Resolve maps a corner and offset to an absolute position on bounds. It
// panics on invalid corners, like [Corner.Point].
func Resolve(corner Corner, bounds Rect, offset Vec2) Point {
	return corner.Point(bounds).Translate(offset)
}
