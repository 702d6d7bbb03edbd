// Package term draws arrow geometry into a terminal screen.
//
// Geometry is computed in device units, where a cell is CellWidth units wide
// and CellHeight units tall, and is mapped onto cells when drawn.
package term

import (
	"math"

	"github.com/bezierview/arrow"
	"github.com/gdamore/tcell/v2"
)

// Options controls how geometry is mapped onto cells.
type Options struct {
	// CellWidth and CellHeight are the size of one cell in device units.
	CellWidth  float64
	CellHeight float64

	CurveStyle  tcell.Style
	HeadStyle   tcell.Style
	HandleStyle tcell.Style

	// HeadRune fills the arrowhead, and HandleRune marks handles.
	HeadRune   rune
	HandleRune rune
}

// DefaultOptions uses 8×16 cells.
func DefaultOptions() Options {
	return Options{
		CellWidth:   8,
		CellHeight:  16,
		CurveStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		HeadStyle:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		HandleStyle: tcell.StyleDefault.Foreground(tcell.ColorRed),
		HeadRune:    '█',
		HandleRune:  'o',
	}
}

func (opts *Options) fill() {
	def := DefaultOptions()
	if opts.CellWidth <= 0 {
		opts.CellWidth = def.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = def.CellHeight
	}
	if opts.HeadRune == 0 {
		opts.HeadRune = def.HeadRune
	}
	if opts.HandleRune == 0 {
		opts.HandleRune = def.HandleRune
	}
}

// Bounds returns the screen's area in device units.
func Bounds(screen tcell.Screen, opts Options) arrow.Rect {
	opts.fill()
	w, h := screen.Size()
	return arrow.NewRectFromOrigin(arrow.Pt(0, 0), arrow.Sz(float64(w)*opts.CellWidth, float64(h)*opts.CellHeight))
}

type canvas struct {
	screen tcell.Screen
	w, h   int
}

func (cv canvas) set(x, y float64, r rune, style tcell.Style) bool {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	if cx < 0 || cy < 0 || cx >= cv.w || cy >= cv.h {
		return false
	}
	cv.screen.SetContent(cx, cy, r, nil, style)
	return true
}

// line plots the segment from a to b, in cell coordinates.
func (cv canvas) line(a, b arrow.Point, r rune, style tcell.Style) {
	d := b.Sub(a)
	n := 2*int(math.Ceil(max(math.Abs(d.X), math.Abs(d.Y)))) + 1
	for i := 0; i <= n; i++ {
		p := a.Lerp(b, float64(i)/float64(n))
		cv.set(p.X, p.Y, r, style)
	}
}

// slopeRune picks a box drawing character for a segment of direction d, in
// y-down cell coordinates.
func slopeRune(d arrow.Vec2) rune {
	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	switch {
	case ay <= 0.4*ax:
		return '─'
	case ax <= 0.4*ay:
		return '│'
	case d.X*d.Y > 0:
		return '╲'
	default:
		return '╱'
	}
}

// Draw draws g onto screen: the curve as line characters, the arrowhead and
// start cap as filled cells, and handle arms and markers if present. Cells outside the
// screen are skipped. Draw doesn't clear the screen or call Show.
func Draw(screen tcell.Screen, g arrow.Geometry, opts Options) {
	opts.fill()
	w, h := screen.Size()
	cv := canvas{screen, w, h}
	cg := g.Transform(arrow.Scale(1/opts.CellWidth, 1/opts.CellHeight))

	first := true
	var prev arrow.Point
	for p := range cg.Curve.Flatten(arrow.DefaultTolerance) {
		if first {
			first = false
			prev = p
			continue
		}
		d := p.Sub(prev)
		if !d.IsZero() {
			cv.line(prev, p, slopeRune(d), opts.CurveStyle)
		}
		prev = p
	}

	drawHead(cv, cg.Arrowhead, opts)
	drawCap(cv, g.StartCap, cg.StartCap, opts)

	if cg.Handles == nil {
		return
	}
	for _, l := range cg.Handles.Lines() {
		cv.line(l.P0, l.P1, '·', opts.HandleStyle)
	}
	for _, hd := range cg.Handles {
		cv.set(hd.Pos.X, hd.Pos.Y, opts.HandleRune, opts.HandleStyle)
	}
}

// drawHead fills every cell whose center lies in the head. Heads too small to
// cover any cell center still mark the tip's cell.
func drawHead(cv canvas, head arrow.Polygon, opts Options) {
	if len(head) < 2 {
		return
	}
	bbox := head.BoundingBox()
	filled := false
	for y := math.Floor(bbox.MinY()); y <= bbox.MaxY(); y++ {
		for x := math.Floor(bbox.MinX()); x <= bbox.MaxX(); x++ {
			if head.Contains(arrow.Pt(x+0.5, y+0.5)) {
				filled = cv.set(x, y, opts.HeadRune, opts.HeadStyle) || filled
			}
		}
	}
	if !filled {
		cv.set(head[1].X, head[1].Y, opts.HeadRune, opts.HeadStyle)
	}
}

// drawCap draws the start cap. Circles are measured in device units, so that
// non-square cells don't distort them; cp is the cap in device units and cc
// the same cap in cell coordinates.
func drawCap(cv canvas, cp, cc arrow.Cap, opts Options) {
	toDevice := func(x, y float64) arrow.Point {
		return arrow.Pt(x*opts.CellWidth, y*opts.CellHeight)
	}
	c := cp.Circle
	switch cp.Style {
	case arrow.CircleCap:
		step := min(opts.CellWidth, opts.CellHeight) / 2
		n := max(16, int(math.Ceil(2*math.Pi*c.Radius/step)))
		for i := range n {
			th := 2 * math.Pi * float64(i) / float64(n)
			p := c.Center.Translate(arrow.Vec(math.Cos(th), math.Sin(th)).Mul(c.Radius))
			cv.set(p.X/opts.CellWidth, p.Y/opts.CellHeight, opts.HeadRune, opts.HeadStyle)
		}
	case arrow.DiscCap:
		bbox := c.BoundingBox()
		filled := false
		for y := math.Floor(bbox.MinY() / opts.CellHeight); y <= bbox.MaxY()/opts.CellHeight; y++ {
			for x := math.Floor(bbox.MinX() / opts.CellWidth); x <= bbox.MaxX()/opts.CellWidth; x++ {
				if c.Contains(toDevice(x+0.5, y+0.5)) {
					filled = cv.set(x, y, opts.HeadRune, opts.HeadStyle) || filled
				}
			}
		}
		if !filled {
			cv.set(cc.Circle.Center.X, cc.Circle.Center.Y, opts.HeadRune, opts.HeadStyle)
		}
	case arrow.ArrowheadCap:
		drawHead(cv, cc.Head, opts)
	}
}
