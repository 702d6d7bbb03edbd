// Command arrow draws a curved arrow between two anchors of a canvas.
//
// Usage examples:
//
//	# SVG on stdout
//	arrow -startAnchor tl -startControl 20,0 -endAnchor br -endControl -20,0
//
//	# PNG with handles
//	arrow -format png -o arrow.png -showHandles
//
//	# Interactive terminal preview
//	arrow -format term
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bezierview/arrow"
	"github.com/bezierview/arrow/inspect"
	"github.com/bezierview/arrow/render/raster"
	"github.com/bezierview/arrow/render/svg"
	"github.com/bezierview/arrow/render/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("arrow: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type options struct {
	format      string
	output      string
	width       int
	height      int
	supersample int
}

// parseFlags builds a property sheet from the default configuration and
// args, with one flag per sheet property.
func parseFlags(args []string, stderr io.Writer) (*inspect.Sheet, options, error) {
	sheet, err := inspect.New(arrow.DefaultConfig())
	if err != nil {
		return nil, options{}, err
	}

	var opts options
	fs := flag.NewFlagSet("arrow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.format, "format", "svg", "output format: svg, png or term")
	fs.StringVar(&opts.output, "o", "-", "output file, - for stdout")
	fs.IntVar(&opts.width, "width", 320, "canvas width in pixels")
	fs.IntVar(&opts.height, "height", 240, "canvas height in pixels")
	fs.IntVar(&opts.supersample, "supersample", 4, "PNG supersampling factor")

	for _, p := range inspect.Properties() {
		name := p.Name
		def, _ := sheet.Get(name)
		usage := fmt.Sprintf("%s (%s, default %s)", p.Doc, p.Kind, def)
		set := func(v string) error { return sheet.Set(name, v) }
		if p.Kind == inspect.BoolKind {
			fs.BoolFunc(name, usage, set)
		} else {
			fs.Func(name, usage, set)
		}
	}

	if err := fs.Parse(args); err != nil {
		return nil, options{}, err
	}
	if fs.NArg() > 0 {
		return nil, options{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	if opts.width <= 0 || opts.height <= 0 {
		return nil, options{}, fmt.Errorf("invalid canvas size %dx%d", opts.width, opts.height)
	}
	return sheet, opts, nil
}

func run(args []string, stdout io.Writer) error {
	sheet, opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	switch opts.format {
	case "svg", "png":
	case "term":
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		defer screen.Fini()
		preview(screen, sheet)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	bounds := arrow.NewRectFromOrigin(arrow.Pt(0, 0), arrow.Sz(float64(opts.width), float64(opts.height)))
	g := sheet.Geometry(bounds)

	if opts.output == "-" || opts.output == "" {
		return render(stdout, g, opts)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := render(f, g, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func render(w io.Writer, g arrow.Geometry, opts options) error {
	switch opts.format {
	case "svg":
		svgOpts := svg.DefaultOptions()
		svgOpts.Width, svgOpts.Height = opts.width, opts.height
		return svg.Write(w, g, svgOpts)
	case "png":
		pngOpts := raster.DefaultOptions()
		pngOpts.Width, pngOpts.Height = opts.width, opts.height
		pngOpts.Supersample = opts.supersample
		return raster.WritePNG(w, g, pngOpts)
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
}

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
)

// preview shows the arrow on screen until the user quits, recomputing the
// geometry against the screen's size after every event.
func preview(screen tcell.Screen, sheet *inspect.Sheet) {
	opts := term.DefaultOptions()
	var message string
	for {
		screen.Clear()
		w, h := screen.Size()
		// The bottom row is the status line.
		bounds := term.Bounds(screen, opts)
		bounds.Y1 -= opts.CellHeight
		term.Draw(screen, sheet.Geometry(bounds), opts)
		drawStatus(screen, w, h, sheet, message)
		screen.Show()

		message = ""
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return
			case ev.Rune() == 'h':
				cfg := sheet.Config()
				if err := sheet.Set("showHandles", fmt.Sprint(!cfg.ShowHandles)); err != nil {
					message = err.Error()
				}
			case ev.Rune() == 's':
				next := arrow.Barbed
				if sheet.Config().Style == arrow.Barbed {
					next = arrow.Triangle
				}
				if err := sheet.Set("arrowStyle", next.String()); err != nil {
					message = err.Error()
				}
			case ev.Rune() == 'c':
				next := (sheet.Config().StartCap + 1) % (arrow.ArrowheadCap + 1)
				if err := sheet.Set("startCap", next.String()); err != nil {
					message = err.Error()
				}
			}
		case nil:
			// The screen was finalized.
			return
		}
	}
}

func drawStatus(screen tcell.Screen, w, h int, sheet *inspect.Sheet, message string) {
	if h < 1 {
		return
	}
	style := styleStatus
	cfg := sheet.Config()
	line := fmt.Sprintf(" %s, cap %s  h handles  s style  c cap  q quit", cfg.Style, cfg.StartCap)
	if message != "" {
		style = styleError
		line = " " + message
	}
	runes := []rune(line)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		screen.SetContent(x, h-1, r, nil, style)
	}
}
