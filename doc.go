// Package arrow computes the geometry of a curved, directional connector: a
// cubic Bézier between two points anchored to a rectangle, with an arrowhead
// at its end. It is meant to be embedded in a host that owns layout and
// drawing; the package only produces points, path elements and polygons.
//
// # Anchors
//
// Each endpoint of the connector is described by an [Endpoint]: a [Corner]
// of the bounding rectangle, an offset from that corner, and a control
// offset. [Resolve] turns a corner and offset into an absolute [Point].
//
// # Points and vectors
//
// [Point] is an absolute position and [Vec2] a relative offset or direction.
// Both have the same layout, and converting between them is always explicit:
// pt.Sub(o) yields a Vec2, pt.Translate(v) a Point, and Point(v) and Vec2(pt)
// reinterpret one as the other.
//
// # Curve
//
// [BuildCurve] builds the [CubicBez]. Control offsets are taken relative to
// their own endpoint, not to the opposite one: P1 = P0 + start control and
// P2 = P3 + end control.
//
// # Arrowhead
//
// [ArrowheadStyle.Build] orients the arrowhead along the curve's terminal
// direction, P3−P2, falling back to P3−P0 when the end control is zero.
// Degenerate curves and non-positive sizes produce a polygon collapsed onto
// the tip rather than an error.
//
// # Putting it together
//
// [ComputeGeometry] runs all of the above for a [Config] and bounds and
// returns a [Geometry]. It allocates nothing beyond its result and keeps no
// state, so it can run on every redraw and from any goroutine. Renderers for
// SVG, raster images and terminals live in the render subpackages, and the
// inspect package exposes a Config as named, string-valued properties for
// editors.
package arrow
