package arrow

import (
	"iter"
	"sort"
)

// maxFlattenDepth bounds the subdivision in [CubicBez.Flatten].
const maxFlattenDepth = 16

var _ Shape = CubicBez{}
var _ ParametricCurve = CubicBez{}

// CubicBez is a cubic Bézier. P0 and P3 are the endpoints, P1 and P2 the
// control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// BuildCurve constructs the connector curve from its resolved endpoints and
// their control offsets.
//
// Each control offset is relative to its own endpoint: P1 = start +
// startControl and P2 = end + endControl. Degenerate inputs are not rejected.
func BuildCurve(start Point, startControl Vec2, end Point, endControl Vec2) CubicBez {
	return CubicBez{
		P0: start,
		P1: start.Translate(startControl),
		P2: end.Translate(endControl),
		P3: end,
	}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// BoundingBox implements [Shape].
func (c CubicBez) BoundingBox() Rect {
	return BoundingBox(c)
}

// PathElements implements [Shape].
func (c CubicBez) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

// Eval evaluates the curve at t, in Bernstein form:
//
//	B(t) = (1-t)³P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3
//
// Eval(0) is exactly P0 and Eval(1) is exactly P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the tangent B′(t):
//
//	B′(t) = 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2)
func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

// Differentiate returns the derivative of the curve, which is a quadratic
// Bézier whose points are to be read as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the part of the curve between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.Deriv(t0).Mul(scale))
	p2 := p3.Translate(c.Deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Reverse returns the same curve traversed from P3 to P0.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// Tangents returns the start and end tangent directions. Where a control
// point coincides with its endpoint, the next distinct point is used.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

// Flatten approximates the curve with a polyline. It yields P0 first and P3
// last; no point of the curve is farther than tolerance from the polyline.
func (c CubicBez) Flatten(tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !yield(c.P0) {
			return
		}
		c.flatten(tolerance, 0, yield)
	}
}

func (c CubicBez) flatten(tolerance float64, depth int, yield func(Point) bool) bool {
	if depth >= maxFlattenDepth || c.isFlat(tolerance) {
		return yield(c.P3)
	}
	l, r := c.Subdivide()
	return l.flatten(tolerance, depth+1, yield) && r.flatten(tolerance, depth+1, yield)
}

// isFlat reports whether both control points are within tolerance of the
// points a straight line would put them at. The curve then stays within
// tolerance of its chord.
func (c CubicBez) isFlat(tolerance float64) bool {
	tol2 := tolerance * tolerance
	return c.P1.DistanceSquared(c.P0.Lerp(c.P3, 1.0/3.0)) <= tol2 &&
		c.P2.DistanceSquared(c.P0.Lerp(c.P3, 2.0/3.0)) <= tol2
}
