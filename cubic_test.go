package arrow

import (
	"math"
	"slices"
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezDerivFormula(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(20, 0), Pt(80, 100), Pt(100, 100)}
	for _, ts := range []float64{0, 0.25, 0.5, 0.9, 1} {
		mt := 1 - ts
		want := c.P1.Sub(c.P0).Mul(3 * mt * mt).
			Add(c.P2.Sub(c.P1).Mul(6 * mt * ts)).
			Add(c.P3.Sub(c.P2).Mul(3 * ts * ts))
		diff(t, want, c.Deriv(ts), approx)
	}
	// The terminal tangent is three times the last control arm.
	diff(t, c.P3.Sub(c.P2).Mul(3), c.Deriv(1))
}

func TestCubicBezEndpoints(t *testing.T) {
	curves := []CubicBez{
		{Pt(0, 0), Pt(20, 0), Pt(80, 100), Pt(100, 100)},
		{Pt(0.1, 0.2), Pt(-3.3, 7.7), Pt(1e6, -1e-6), Pt(0.3, 0.7)},
		{Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)},
	}
	for _, c := range curves {
		if got := c.Eval(0); got != c.P0 {
			t.Errorf("B(0) = %s, want %s", got, c.P0)
		}
		if got := c.Eval(1); got != c.P3 {
			t.Errorf("B(1) = %s, want %s", got, c.P3)
		}
	}
}

func TestBuildCurve(t *testing.T) {
	type args struct {
		start, end               Point
		startControl, endControl Vec2
	}
	tests := []args{
		{Pt(0, 0), Pt(100, 100), Vec(20, 0), Vec(-20, 0)},
		{Pt(20, 80), Pt(80, 20), Vec(20, 0), Vec(0, 100)},
		{Pt(0.1, 0.7), Pt(-0.3, 1e9), Vec(1e-9, -0.2), Vec(0.3, 0.1)},
		{Pt(5, 5), Pt(5, 5), Vec(0, 0), Vec(0, 0)},
	}
	for _, tt := range tests {
		c := BuildCurve(tt.start, tt.startControl, tt.end, tt.endControl)
		diff(t, tt.start, c.P0)
		diff(t, tt.end, c.P3)
		// Controls are relative to their own endpoint.
		diff(t, tt.start.Translate(tt.startControl), c.P1)
		diff(t, tt.end.Translate(tt.endControl), c.P2)
	}
}

func TestBuildCurveControlInvariant(t *testing.T) {
	// Offsets that are exactly representable round-trip through subtraction.
	start, end := Pt(10, 20), Pt(110, 70)
	sc, ec := Vec(12.5, -3.25), Vec(-40, 0.5)
	c := BuildCurve(start, sc, end, ec)
	diff(t, sc, c.P1.Sub(c.P0))
	diff(t, ec, c.P2.Sub(c.P3))
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(20, 0), Pt(80, 100), Pt(100, 100)}
	l, r := c.Subdivide()
	diff(t, c.P0, l.P0)
	diff(t, c.P3, r.P3)
	diff(t, l.P3, r.P0)
	for i := range 5 {
		ts := float64(i) / 4
		diff(t, c.Eval(ts/2), l.Eval(ts), approx)
		diff(t, c.Eval(0.5+ts/2), r.Eval(ts), approx)
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(20, 0), Pt(80, 100), Pt(100, 100)}
	seg := c.Subsegment(0.25, 0.75)
	for i := range 5 {
		ts := float64(i) / 4
		diff(t, c.Eval(0.25+ts*0.5), seg.Eval(ts), approx)
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	// The curve overshoots its endpoints in y.
	c := CubicBez{Pt(0, 0), Pt(0, -30), Pt(100, 130), Pt(100, 100)}
	bbox := c.BoundingBox()
	if bbox.Y0 >= 0 || bbox.Y1 <= 100 {
		t.Errorf("bounding box %v doesn't cover the overshoot", bbox)
	}
	const n = 100
	for i := range n + 1 {
		p := c.Eval(float64(i) / n)
		if p.X < bbox.X0-1e-9 || p.X > bbox.X1+1e-9 || p.Y < bbox.Y0-1e-9 || p.Y > bbox.Y1+1e-9 {
			t.Fatalf("%s is outside of %v", p, bbox)
		}
	}
}

func TestCubicBezExtremaDegenerate(t *testing.T) {
	c := CubicBez{Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)}
	if ex, n := c.Extrema(); n != 0 {
		t.Errorf("got extrema %v for a point", ex[:n])
	}
	diff(t, Rect{5, 5, 5, 5}, c.BoundingBox())
}

func TestCubicBezFlatten(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(20, 0), Pt(80, 100), Pt(100, 100)}
	for _, tol := range []float64{1, 0.1, 0.01} {
		pts := slices.Collect(c.Flatten(tol))
		if len(pts) < 2 {
			t.Fatalf("got %d points", len(pts))
		}
		diff(t, c.P0, pts[0])
		diff(t, c.P3, pts[len(pts)-1])

		// Every sample of the curve must be near the polyline.
		const n = 200
		for i := range n + 1 {
			p := c.Eval(float64(i) / n)
			best := math.Inf(1)
			for j := 1; j < len(pts); j++ {
				best = min(best, distToSegment(p, pts[j-1], pts[j]))
			}
			if best > tol {
				t.Fatalf("tolerance %g: %s is %g away from the polyline", tol, p, best)
			}
		}
	}
}

func TestCubicBezFlattenLine(t *testing.T) {
	c := BuildCurve(Pt(0, 0), Vec(10, 0), Pt(30, 0), Vec(-10, 0))
	diff(t, []Point{Pt(0, 0), Pt(30, 0)}, slices.Collect(c.Flatten(0.1)))
}

func distToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Hypot2()
	if l2 == 0 {
		return p.Distance(a)
	}
	ts := min(max(p.Sub(a).Dot(ab)/l2, 0), 1)
	return p.Distance(a.Translate(ab.Mul(ts)))
}

func TestCubicBezTangents(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(10, 10)}
	d0, d1 := c.Tangents()
	diff(t, Vec(10, 10), d0)
	diff(t, Vec(10, 10), d1)
}
