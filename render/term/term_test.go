package term

import (
	"testing"

	"github.com/bezierview/arrow"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestBounds(t *testing.T) {
	s := newScreen(t, 40, 20)
	diff(t, arrow.Rect{X0: 0, Y0: 0, X1: 320, Y1: 320}, Bounds(s, DefaultOptions()))
}

func TestDrawStraight(t *testing.T) {
	s := newScreen(t, 40, 20)
	opts := DefaultOptions()
	cfg := arrow.Config{
		Start:     arrow.Endpoint{Anchor: arrow.TopLeft, Offset: arrow.Vec(16, 24)},
		End:       arrow.Endpoint{Anchor: arrow.TopRight, Offset: arrow.Vec(-16, 24)},
		LineWidth: 1,
		ArrowSize: 10,
	}
	g := arrow.ComputeGeometry(cfg, Bounds(s, opts))
	Draw(s, g, opts)

	// The curve runs along row 1 from column 2 to the tip at column 38. The
	// head reaches column 37, the only cell center it covers.
	for x := 2; x <= 38; x++ {
		want := '─'
		if x == 37 {
			want = opts.HeadRune
		}
		if r := runeAt(s, x, 1); r != want {
			t.Errorf("cell (%d, 1) is %q, want %q", x, r, want)
		}
	}
	for _, row := range []int{0, 2} {
		for x := 0; x < 40; x++ {
			if r := runeAt(s, x, row); r != ' ' {
				t.Errorf("cell (%d, %d) is %q, want blank", x, row, r)
			}
		}
	}
}

func curveConfig() arrow.Config {
	return arrow.Config{
		Start:     arrow.Endpoint{Anchor: arrow.TopLeft, Offset: arrow.Vec(16, 16), Control: arrow.Vec(80, 0)},
		End:       arrow.Endpoint{Anchor: arrow.BottomRight, Offset: arrow.Vec(-16, -16), Control: arrow.Vec(-80, 0)},
		LineWidth: 2,
		ArrowSize: 64,
	}
}

func TestDrawCurve(t *testing.T) {
	s := newScreen(t, 40, 20)
	opts := DefaultOptions()
	g := arrow.ComputeGeometry(curveConfig(), Bounds(s, opts))
	Draw(s, g, opts)

	// The curve leaves (16, 16) horizontally.
	if r := runeAt(s, 2, 1); r != '─' {
		t.Errorf("start cell is %q", r)
	}
	// A 64 unit head covers several cells left of the tip at (304, 304).
	for _, x := range []int{33, 34, 35} {
		if r := runeAt(s, x, 19); r != opts.HeadRune {
			t.Errorf("head cell (%d, 19) is %q", x, r)
		}
	}
	// Nothing is drawn in the bottom left.
	if r := runeAt(s, 1, 18); r != ' ' {
		t.Errorf("cell (1, 18) is %q", r)
	}
	// Without handles there are no markers.
	if r := runeAt(s, 12, 1); r == opts.HandleRune {
		t.Error("handle drawn although disabled")
	}
}

func TestDrawHandles(t *testing.T) {
	s := newScreen(t, 40, 20)
	opts := DefaultOptions()
	cfg := curveConfig()
	cfg.ShowHandles = true
	g := arrow.ComputeGeometry(cfg, Bounds(s, opts))
	Draw(s, g, opts)

	// Start (16, 16), control (96, 16), control (224, 304), end (304, 304).
	for _, c := range [][2]int{{2, 1}, {12, 1}, {28, 19}, {38, 19}} {
		r, _, style, _ := s.GetContent(c[0], c[1])
		if r != opts.HandleRune {
			t.Errorf("cell %v is %q, want a handle", c, r)
		}
		if style != opts.HandleStyle {
			t.Errorf("cell %v has style %v", c, style)
		}
	}
}

func TestDrawStartCap(t *testing.T) {
	// The straight arrow of TestDrawStraight starts at (16, 24), in cell
	// (2, 1), and runs right.
	capped := func(style arrow.CapStyle, size float64) tcell.SimulationScreen {
		s := newScreen(t, 40, 20)
		opts := DefaultOptions()
		cfg := arrow.Config{
			Start:        arrow.Endpoint{Anchor: arrow.TopLeft, Offset: arrow.Vec(16, 24)},
			End:          arrow.Endpoint{Anchor: arrow.TopRight, Offset: arrow.Vec(-16, 24)},
			LineWidth:    1,
			ArrowSize:    10,
			StartCap:     style,
			StartCapSize: size,
		}
		Draw(s, arrow.ComputeGeometry(cfg, Bounds(s, opts)), opts)
		return s
	}
	head := DefaultOptions().HeadRune

	t.Run("disc", func(t *testing.T) {
		s := capped(arrow.DiscCap, 10)
		// Cell centers (12, 24) and (20, 24) lie within 10 units of the start.
		for _, c := range [][2]int{{1, 1}, {2, 1}} {
			if r := runeAt(s, c[0], c[1]); r != head {
				t.Errorf("cell %v is %q, want %q", c, r, head)
			}
		}
		diff(t, ' ', runeAt(s, 0, 1))
		diff(t, '─', runeAt(s, 3, 1))
		diff(t, ' ', runeAt(s, 2, 0))
	})

	t.Run("circle", func(t *testing.T) {
		s := capped(arrow.CircleCap, 20)
		// Top (16, 4), bottom (16, 44), right (36, 24).
		for _, c := range [][2]int{{2, 0}, {2, 2}, {4, 1}} {
			if r := runeAt(s, c[0], c[1]); r != head {
				t.Errorf("cell %v is %q, want %q", c, r, head)
			}
		}
		// The ring is hollow.
		diff(t, '─', runeAt(s, 2, 1))
	})

	t.Run("arrowhead", func(t *testing.T) {
		s := capped(arrow.ArrowheadCap, 10)
		// The head points left from the start and covers cell (2, 1).
		diff(t, head, runeAt(s, 2, 1))
		diff(t, '─', runeAt(s, 4, 1))
		diff(t, ' ', runeAt(s, 1, 1))
	})
}

func TestDrawClipped(t *testing.T) {
	s := newScreen(t, 10, 5)
	opts := DefaultOptions()
	// Bounds much larger than the screen; nothing may panic.
	g := arrow.ComputeGeometry(curveConfig(), arrow.NewRectFromOrigin(arrow.Pt(-100, -100), arrow.Sz(1000, 1000)))
	Draw(s, g, opts)
}

func TestSlopeRune(t *testing.T) {
	tests := []struct {
		d    arrow.Vec2
		want rune
	}{
		{arrow.Vec(1, 0), '─'},
		{arrow.Vec(-3, 1), '─'},
		{arrow.Vec(0, 1), '│'},
		{arrow.Vec(1, 1), '╲'},
		{arrow.Vec(-1, -1), '╲'},
		{arrow.Vec(1, -1), '╱'},
	}
	for _, tt := range tests {
		if got := slopeRune(tt.d); got != tt.want {
			t.Errorf("slopeRune(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
