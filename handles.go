package arrow

import "fmt"

// DefaultHandleRadius is the radius of handle markers drawn by the renderers.
const DefaultHandleRadius = 3

// HandleRole identifies which curve point a [Handle] marks.
type HandleRole int

const (
	HandleStart HandleRole = iota + 1
	HandleStartControl
	HandleEndControl
	HandleEnd
)

func (r HandleRole) String() string {
	switch r {
	case HandleStart:
		return "start"
	case HandleStartControl:
		return "startControl"
	case HandleEndControl:
		return "endControl"
	case HandleEnd:
		return "end"
	default:
		return fmt.Sprintf("HandleRole(%d)", int(r))
	}
}

// IsControl reports whether the role marks a control point rather than an
// endpoint.
func (r HandleRole) IsControl() bool {
	return r == HandleStartControl || r == HandleEndControl
}

type Handle struct {
	Role HandleRole
	Pos  Point
}

// HandleSet holds the editing aids of a curve, in the order start, start
// control, end control, end.
type HandleSet [4]Handle

// BuildHandles tags the four points of c with their roles.
func BuildHandles(c CubicBez) HandleSet {
	return HandleSet{
		{HandleStart, c.P0},
		{HandleStartControl, c.P1},
		{HandleEndControl, c.P2},
		{HandleEnd, c.P3},
	}
}

// Pos returns the position of the handle with the given role.
func (hs HandleSet) Pos(role HandleRole) (Point, bool) {
	for _, h := range hs {
		if h.Role == role {
			return h.Pos, true
		}
	}
	return Point{}, false
}

// Lines returns the two control arms: start to start control, and end to end
// control.
func (hs HandleSet) Lines() [2]Line {
	return [2]Line{
		{hs[0].Pos, hs[1].Pos},
		{hs[3].Pos, hs[2].Pos},
	}
}

// Markers returns a circle of the given radius around each handle.
func (hs HandleSet) Markers(radius float64) [4]Circle {
	var out [4]Circle
	for i, h := range hs {
		out[i] = Circle{Center: h.Pos, Radius: radius}
	}
	return out
}

// BoundingBox returns the box enclosing all markers of the given radius.
func (hs HandleSet) BoundingBox(radius float64) Rect {
	ms := hs.Markers(radius)
	bbox := ms[0].BoundingBox()
	for _, m := range ms[1:] {
		bbox = bbox.Union(m.BoundingBox())
	}
	return bbox
}

func (hs HandleSet) Transform(aff Affine) HandleSet {
	for i := range hs {
		hs[i].Pos = hs[i].Pos.Transform(aff)
	}
	return hs
}
