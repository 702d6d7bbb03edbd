package arrow

import (
	"slices"
	"testing"
)

func TestPolygonArea(t *testing.T) {
	sq := Polygon{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if got := sq.Area(); got != 100 {
		t.Errorf("got area %g, want 100", got)
	}
	rev := slices.Clone(sq)
	slices.Reverse(rev)
	if got := rev.Area(); got != -100 {
		t.Errorf("got area %g, want -100", got)
	}
	if got := (Polygon{}).Area(); got != 0 {
		t.Errorf("got area %g for empty polygon", got)
	}
}

func TestPolygonContains(t *testing.T) {
	sq := Polygon{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if w := sq.Winding(Pt(5, 5)); w != 1 {
		t.Errorf("got winding %d, want 1", w)
	}
	for _, pt := range []Point{Pt(-1, 5), Pt(5, 11), Pt(20, 20)} {
		if sq.Contains(pt) {
			t.Errorf("%s should be outside", pt)
		}
	}
	tri := Polygon{Pt(0, 0), Pt(10, 5), Pt(0, 10)}
	if !tri.Contains(Pt(2, 5)) {
		t.Error("(2, 5) should be inside")
	}
	if tri.Contains(Pt(9, 1)) {
		t.Error("(9, 1) should be outside")
	}
}

func TestPolygonPathElements(t *testing.T) {
	tri := Polygon{Pt(0, 0), Pt(10, 5), Pt(0, 10)}
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 5)),
		LineTo(Pt(0, 10)),
		ClosePath(),
	}
	diff(t, want, slices.Collect(tri.PathElements(DefaultTolerance)))
	if els := slices.Collect(Polygon(nil).PathElements(DefaultTolerance)); len(els) != 0 {
		t.Errorf("got %v for an empty polygon", els)
	}
	diff(t, Rect{0, 0, 10, 10}, tri.BoundingBox())
}

func TestPolygonTransform(t *testing.T) {
	tri := Polygon{Pt(0, 0), Pt(10, 5), Pt(0, 10)}
	got := tri.Transform(Translate(Vec(1, 2)).ThenScale(2, 2))
	want := Polygon{Pt(2, 4), Pt(22, 14), Pt(2, 24)}
	diff(t, want, got, approx)
}
