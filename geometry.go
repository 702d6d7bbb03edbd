package arrow

import (
	"iter"
	"math"
)

// Geometry is everything a renderer needs to draw one arrow.
type Geometry struct {
	Curve     CubicBez
	Arrowhead Polygon
	// StartCap has style NoCap unless the configuration asked for one.
	StartCap Cap
	// Handles is nil unless the configuration enabled them.
	Handles   *HandleSet
	LineWidth float64
}

// ComputeGeometry resolves cfg against bounds and builds the curve, its
// arrowhead, its start cap and, if enabled, its handles.
//
// ComputeGeometry is pure and safe for concurrent use. It expects cfg to have
// passed [Config.Validate] and panics on invalid corners or styles.
func ComputeGeometry(cfg Config, bounds Rect) Geometry {
	start := Resolve(cfg.Start.Anchor, bounds, cfg.Start.Offset)
	end := Resolve(cfg.End.Anchor, bounds, cfg.End.Offset)
	c := BuildCurve(start, cfg.Start.Control, end, cfg.End.Control)
	g := Geometry{
		Curve:     c,
		Arrowhead: cfg.Style.Build(c, cfg.ArrowSize),
		StartCap:  BuildStartCap(c, cfg.StartCap, cfg.Style, cfg.StartCapSize),
		LineWidth: cfg.LineWidth,
	}
	if cfg.ShowHandles {
		hs := BuildHandles(c)
		g.Handles = &hs
	}
	return g
}

// PathElements returns the curve's path, to be stroked with LineWidth.
func (g Geometry) PathElements() iter.Seq[PathElement] {
	return g.Curve.PathElements(DefaultTolerance)
}

// BoundingBox returns the area the arrow covers, including half the stroke
// width, the start cap and, if present, handle markers of
// [DefaultHandleRadius].
func (g Geometry) BoundingBox() Rect {
	hw := math.Abs(g.LineWidth) / 2
	bbox := g.Curve.BoundingBox().Inflate(hw, hw)
	if len(g.Arrowhead) > 0 {
		bbox = bbox.Union(g.Arrowhead.BoundingBox())
	}
	if g.StartCap.Style != NoCap {
		// Circle caps are stroked like the curve.
		bbox = bbox.Union(g.StartCap.BoundingBox().Inflate(hw, hw))
	}
	if g.Handles != nil {
		bbox = bbox.Union(g.Handles.BoundingBox(DefaultHandleRadius))
	}
	return bbox
}

// Transform maps the geometry into another space, such as device pixels. The
// line width is scaled by the transform's mean scale factor.
func (g Geometry) Transform(aff Affine) Geometry {
	out := Geometry{
		Curve:     g.Curve.Transform(aff),
		Arrowhead: g.Arrowhead.Transform(aff),
		StartCap:  g.StartCap.Transform(aff),
		LineWidth: g.LineWidth * math.Sqrt(math.Abs(aff.Determinant())),
	}
	if g.Handles != nil {
		hs := g.Handles.Transform(aff)
		out.Handles = &hs
	}
	return out
}
