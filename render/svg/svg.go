// Package svg renders arrow geometry as a standalone SVG document.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/bezierview/arrow"
)

// Options controls SVG rendering.
type Options struct {
	Width  int // canvas width in user units
	Height int // canvas height in user units

	Background  string // background fill; empty for transparent
	Color       string // curve and arrowhead color
	HandleColor string // handle arms and markers

	// MaxPrecision limits the digits after the decimal point in path data.
	// 0 means full precision.
	MaxPrecision int
}

// DefaultOptions returns a black arrow with red handles on white.
func DefaultOptions() Options {
	return Options{
		Width:        320,
		Height:       240,
		Background:   "white",
		Color:        "black",
		HandleColor:  "red",
		MaxPrecision: 2,
	}
}

// Render returns the SVG document for g.
func Render(g arrow.Geometry, opts Options) string {
	sb := &strings.Builder{}
	// strings.Builder never fails.
	_ = Write(sb, g, opts)
	return sb.String()
}

// Write writes the SVG document for g to w.
func Write(w io.Writer, g arrow.Geometry, opts Options) error {
	if opts.Width == 0 {
		opts.Width = 320
	}
	if opts.Height == 0 {
		opts.Height = 240
	}
	if opts.Color == "" {
		opts.Color = "black"
	}
	if opts.HandleColor == "" {
		opts.HandleColor = "red"
	}
	svgOpts := arrow.SVGOptions{MaxPrecision: opts.MaxPrecision}
	num := svgOpts.FormatFloat

	sb := &strings.Builder{}
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, opts.Width, opts.Height, opts.Width, opts.Height))
	if opts.Background != "" {
		sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>
`, opts.Width, opts.Height, opts.Background))
	}

	sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"/>
`, arrow.SVG(g.PathElements(), svgOpts), opts.Color, num(g.LineWidth)))
	sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s"/>
`, arrow.SVG(g.Arrowhead.PathElements(arrow.DefaultTolerance), svgOpts), opts.Color))

	switch cp := g.StartCap; cp.Style {
	case arrow.CircleCap:
		sb.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>
`, num(cp.Circle.Center.X), num(cp.Circle.Center.Y), num(cp.Circle.Radius), opts.Color, num(g.LineWidth)))
	case arrow.DiscCap:
		sb.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>
`, num(cp.Circle.Center.X), num(cp.Circle.Center.Y), num(cp.Circle.Radius), opts.Color))
	case arrow.ArrowheadCap:
		sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s"/>
`, arrow.SVG(cp.Head.PathElements(arrow.DefaultTolerance), svgOpts), opts.Color))
	}

	if g.Handles != nil {
		for _, l := range g.Handles.Lines() {
			sb.WriteString(fmt.Sprintf(`<path d="%s" stroke="%s" stroke-width="2" stroke-linecap="round"/>
`, arrow.SVG(l.PathElements(arrow.DefaultTolerance), svgOpts), opts.HandleColor))
		}
		for _, m := range g.Handles.Markers(arrow.DefaultHandleRadius) {
			sb.WriteString(fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>
`, num(m.Center.X), num(m.Center.Y), num(m.Radius), opts.HandleColor))
		}
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
