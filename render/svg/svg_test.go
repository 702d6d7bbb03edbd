package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bezierview/arrow"
)

func exampleGeometry(showHandles bool) arrow.Geometry {
	cfg := arrow.Config{
		Start:       arrow.Endpoint{Anchor: arrow.TopLeft, Control: arrow.Vec(20, 0)},
		End:         arrow.Endpoint{Anchor: arrow.BottomRight, Control: arrow.Vec(-20, 0)},
		LineWidth:   2,
		ArrowSize:   10,
		ShowHandles: showHandles,
	}
	return arrow.ComputeGeometry(cfg, arrow.NewRectFromOrigin(arrow.Pt(0, 0), arrow.Sz(100, 100)))
}

func TestRender(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 100, 100
	out := Render(exampleGeometry(false), opts)

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100" viewBox="0 0 100 100">`,
		`<rect width="100" height="100" fill="white"/>`,
		`<path d="M0,0 C20,0 80,100 100,100" fill="none" stroke="black" stroke-width="2" stroke-linecap="round"/>`,
		`<path d="M91.34,95 L100,100 L91.34,105 Z" fill="black"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<circle") {
		t.Error("handles drawn although disabled")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document not terminated")
	}
}

func TestRenderHandles(t *testing.T) {
	out := Render(exampleGeometry(true), DefaultOptions())
	if n := strings.Count(out, "<circle"); n != 4 {
		t.Errorf("got %d markers, want 4", n)
	}
	for _, want := range []string{
		`<path d="M0,0 L20,0" stroke="red"`,
		`<path d="M100,100 L80,100" stroke="red"`,
		`<circle cx="80" cy="100" r="3" fill="red"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s", want)
		}
	}
}

func TestRenderStartCap(t *testing.T) {
	bounds := arrow.NewRectFromOrigin(arrow.Pt(10, 20), arrow.Sz(100, 100))
	tests := []struct {
		style arrow.CapStyle
		want  string
	}{
		{arrow.CircleCap, `<circle cx="10" cy="20" r="6" fill="none" stroke="black" stroke-width="2"/>`},
		{arrow.DiscCap, `<circle cx="10" cy="20" r="6" fill="black"/>`},
		{arrow.ArrowheadCap, `<path d="M15.2,23 L10,20 L15.2,17 Z" fill="black"/>`},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			cfg := arrow.Config{
				Start:        arrow.Endpoint{Anchor: arrow.TopLeft, Control: arrow.Vec(20, 0)},
				End:          arrow.Endpoint{Anchor: arrow.BottomRight, Control: arrow.Vec(-20, 0)},
				LineWidth:    2,
				ArrowSize:    10,
				StartCap:     tt.style,
				StartCapSize: 6,
			}
			out := Render(arrow.ComputeGeometry(cfg, bounds), DefaultOptions())
			if !strings.Contains(out, tt.want) {
				t.Errorf("output lacks %s:\n%s", tt.want, out)
			}
		})
	}

	out := Render(exampleGeometry(false), DefaultOptions())
	if strings.Contains(out, "<circle") || strings.Count(out, "<path") != 2 {
		t.Errorf("cap drawn although none is configured:\n%s", out)
	}
}

func TestRenderWellFormed(t *testing.T) {
	out := Render(exampleGeometry(true), Options{})
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Fatalf("malformed document: %s", err)
			}
			break
		}
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteError(t *testing.T) {
	if err := Write(failWriter{}, exampleGeometry(false), DefaultOptions()); !errors.Is(err, errWrite) {
		t.Errorf("got %v, want %v", err, errWrite)
	}
}
