package arrow

import (
	"iter"
)

// Polygon is a closed polygon. The closing edge from the last point back to
// the first is implicit.
type Polygon []Point

var _ Shape = Polygon(nil)

// PathElements implements [Shape]. A polygon with no points yields nothing.
func (p Polygon) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p) == 0 {
			return
		}
		if !yield(MoveTo(p[0])) {
			return
		}
		for _, pt := range p[1:] {
			if !yield(LineTo(pt)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// BoundingBox implements [Shape].
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Area returns the signed area using the shoelace formula. It is positive for
// clockwise polygons in a y-down space.
func (p Polygon) Area() float64 {
	var sum float64
	for i, pt := range p {
		next := p[(i+1)%len(p)]
		sum += Vec2(pt).Cross(Vec2(next))
	}
	return 0.5 * sum
}

// Winding returns the winding number of pt with respect to the polygon.
func (p Polygon) Winding(pt Point) int {
	var w int
	for i, a := range p {
		b := p[(i+1)%len(p)]
		if a.Y <= pt.Y {
			if b.Y > pt.Y && b.Sub(a).Cross(pt.Sub(a)) > 0 {
				w++
			}
		} else if b.Y <= pt.Y && b.Sub(a).Cross(pt.Sub(a)) < 0 {
			w--
		}
	}
	return w
}

// Contains reports whether pt lies inside the polygon, using the non-zero
// winding rule.
func (p Polygon) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

func (p Polygon) Transform(aff Affine) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}
	return out
}
