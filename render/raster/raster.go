// Package raster renders arrow geometry into images with gg.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"iter"

	"github.com/bezierview/arrow"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Style holds the paint used by [Draw].
type Style struct {
	Color       color.Color
	HandleColor color.Color
	// HandleRadius is the radius of handle markers in device units.
	HandleRadius float64
	// HandleWidth is the stroke width of handle arms in device units.
	HandleWidth float64
}

// DefaultStyle draws a black arrow with red handles.
func DefaultStyle() Style {
	return Style{
		Color:        color.Black,
		HandleColor:  color.RGBA{255, 0, 0, 255},
		HandleRadius: arrow.DefaultHandleRadius,
		HandleWidth:  2,
	}
}

// Options configures [Render].
type Options struct {
	Width      int
	Height     int
	Background color.Color // nil for transparent
	Style      Style

	// Supersample is the factor the image is drawn at before being scaled
	// down to Width×Height. Values below 1 mean 4.
	Supersample int
}

// DefaultOptions returns a 320×240 white canvas drawn at four times its size.
func DefaultOptions() Options {
	return Options{
		Width:       320,
		Height:      240,
		Background:  color.White,
		Style:       DefaultStyle(),
		Supersample: 4,
	}
}

// Draw draws g onto dc in dc's coordinate space: the curve stroked with
// g.LineWidth and round caps, the arrowhead filled, the start cap, then
// handle arms and markers on top.
func Draw(dc *gg.Context, g arrow.Geometry, style Style) {
	if style.Color == nil {
		style.Color = color.Black
	}
	if style.HandleColor == nil {
		style.HandleColor = DefaultStyle().HandleColor
	}

	dc.SetLineCap(gg.LineCapRound)
	dc.SetColor(style.Color)
	if g.LineWidth > 0 {
		dc.SetLineWidth(g.LineWidth)
		appendPath(dc, g.PathElements())
		dc.Stroke()
	}
	appendPath(dc, g.Arrowhead.PathElements(arrow.DefaultTolerance))
	dc.Fill()
	drawCap(dc, g.StartCap, g.LineWidth)

	if g.Handles == nil {
		return
	}
	dc.SetColor(style.HandleColor)
	if style.HandleWidth > 0 {
		dc.SetLineWidth(style.HandleWidth)
		for _, l := range g.Handles.Lines() {
			dc.DrawLine(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
			dc.Stroke()
		}
	}
	for _, m := range g.Handles.Markers(style.HandleRadius) {
		dc.DrawCircle(m.Center.X, m.Center.Y, m.Radius)
		dc.Fill()
	}
}

func drawCap(dc *gg.Context, cp arrow.Cap, lineWidth float64) {
	switch cp.Style {
	case arrow.CircleCap:
		if lineWidth > 0 {
			dc.SetLineWidth(lineWidth)
			dc.DrawCircle(cp.Circle.Center.X, cp.Circle.Center.Y, cp.Circle.Radius)
			dc.Stroke()
		}
	case arrow.DiscCap:
		dc.DrawCircle(cp.Circle.Center.X, cp.Circle.Center.Y, cp.Circle.Radius)
		dc.Fill()
	case arrow.ArrowheadCap:
		appendPath(dc, cp.Head.PathElements(arrow.DefaultTolerance))
		dc.Fill()
	}
}

func appendPath(dc *gg.Context, seq iter.Seq[arrow.PathElement]) {
	for el := range seq {
		switch el.Kind {
		case arrow.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case arrow.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case arrow.QuadToKind:
			dc.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case arrow.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case arrow.ClosePathKind:
			dc.ClosePath()
		default:
			panic("unreachable")
		}
	}
}

// Render draws g, whose coordinates are in image pixels, into a new image.
func Render(g arrow.Geometry, opts Options) *image.RGBA {
	scale := opts.Supersample
	if scale < 1 {
		scale = 4
	}
	if opts.Style.HandleRadius == 0 && opts.Style.HandleWidth == 0 {
		def := DefaultStyle()
		opts.Style.HandleRadius = def.HandleRadius
		opts.Style.HandleWidth = def.HandleWidth
	}

	f := float64(scale)
	dc := gg.NewContext(opts.Width*scale, opts.Height*scale)
	if opts.Background != nil {
		dc.SetColor(opts.Background)
		dc.Clear()
	}
	style := opts.Style
	style.HandleRadius *= f
	style.HandleWidth *= f
	Draw(dc, g.Transform(arrow.Scale(f, f)), style)

	large := dc.Image()
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if scale == 1 {
		draw.Draw(out, out.Bounds(), large, image.Point{}, draw.Src)
		return out
	}
	draw.CatmullRom.Scale(out, out.Bounds(), large, large.Bounds(), draw.Over, nil)
	return out
}

// WritePNG renders g and encodes it to w as a PNG.
func WritePNG(w io.Writer, g arrow.Geometry, opts Options) error {
	return png.Encode(w, Render(g, opts))
}
