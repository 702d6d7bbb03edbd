package arrow_test

import (
	"fmt"

	"github.com/bezierview/arrow"
)

func ExampleComputeGeometry() {
	cfg := arrow.Config{
		Start:     arrow.Endpoint{Anchor: arrow.TopLeft, Control: arrow.Vec(20, 0)},
		End:       arrow.Endpoint{Anchor: arrow.BottomRight, Control: arrow.Vec(-20, 0)},
		LineWidth: 2,
		ArrowSize: 10,
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	bounds := arrow.NewRectFromOrigin(arrow.Pt(0, 0), arrow.Sz(100, 100))
	g := arrow.ComputeGeometry(cfg, bounds)

	opts := arrow.SVGOptions{MaxPrecision: 2}
	fmt.Println(arrow.SVG(g.PathElements(), opts))
	fmt.Println(arrow.SVG(g.Arrowhead.PathElements(arrow.DefaultTolerance), opts))
	fmt.Println(g.Handles == nil)
	// Output:
	// M0,0 C20,0 80,100 100,100
	// M91.34,95 L100,100 L91.34,105 Z
	// true
}

func ExampleParseCorner() {
	for _, s := range []string{"tr", "bottomLeft", "4"} {
		c, err := arrow.ParseCorner(s)
		if err != nil {
			panic(err)
		}
		fmt.Println(c, c.Code())
	}
	// Output:
	// topRight 1
	// bottomLeft 2
	// center 4
}
