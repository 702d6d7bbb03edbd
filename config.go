package arrow

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite reports a NaN or infinite configuration value.
var ErrNonFinite = errors.New("value is not finite")

// Endpoint configures one end of the connector.
type Endpoint struct {
	// Anchor is the corner of the bounds the endpoint is attached to.
	Anchor Corner
	// Offset moves the endpoint away from its anchor.
	Offset Vec2
	// Control is the Bézier control point, relative to this endpoint.
	Control Vec2
}

// Config is a snapshot of everything that determines an arrow's geometry.
// It is a plain value and is not retained by any function of this package.
type Config struct {
	Start Endpoint
	End   Endpoint
	// LineWidth is the stroke width of the curve. The geometry doesn't depend
	// on it; it is passed through to renderers.
	LineWidth float64
	// ArrowSize is the length of the arrowhead's wings.
	ArrowSize float64
	// ShowHandles enables the editing aids in [Geometry.Handles].
	ShowHandles bool
	// Style is the shape of the arrowhead, and of an ArrowheadCap.
	Style ArrowheadStyle
	// StartCap is the shape drawn at the start point.
	StartCap CapStyle
	// StartCapSize is the radius of a circle or disc cap, or the wing length
	// of an arrowhead cap.
	StartCapSize float64
}

// DefaultConfig returns an arrow that starts near the bottom left and sweeps
// up into the top right corner.
func DefaultConfig() Config {
	return Config{
		Start: Endpoint{
			Anchor:  BottomLeft,
			Offset:  Vec(20, -20),
			Control: Vec(20, 0),
		},
		End: Endpoint{
			Anchor:  TopRight,
			Offset:  Vec(-20, 20),
			Control: Vec(0, 100),
		},
		LineWidth:    2,
		ArrowSize:    10,
		Style:        Triangle,
		StartCap:     NoCap,
		StartCapSize: 4,
	}
}

// Validate reports every problem with cfg, joined with [errors.Join]. The
// result matches [ErrInvalidCorner], [ErrInvalidStyle], [ErrInvalidCap] and
// [ErrNonFinite] with [errors.Is].
//
// Geometry functions do not validate; they panic on invalid enumerations.
func (cfg Config) Validate() error {
	var errs []error
	check := func(name string, ep Endpoint) {
		if !ep.Anchor.Valid() {
			errs = append(errs, fmt.Errorf("%s anchor: %w: %d", name, ErrInvalidCorner, int(ep.Anchor)))
		}
		if !finiteVec(ep.Offset) {
			errs = append(errs, fmt.Errorf("%s offset %s: %w", name, ep.Offset, ErrNonFinite))
		}
		if !finiteVec(ep.Control) {
			errs = append(errs, fmt.Errorf("%s control %s: %w", name, ep.Control, ErrNonFinite))
		}
	}
	check("start", cfg.Start)
	check("end", cfg.End)
	if !finite(cfg.LineWidth) {
		errs = append(errs, fmt.Errorf("line width %g: %w", cfg.LineWidth, ErrNonFinite))
	}
	if !finite(cfg.ArrowSize) {
		errs = append(errs, fmt.Errorf("arrow size %g: %w", cfg.ArrowSize, ErrNonFinite))
	}
	if !cfg.Style.Valid() {
		errs = append(errs, fmt.Errorf("arrowhead: %w: %d", ErrInvalidStyle, int(cfg.Style)))
	}
	if !cfg.StartCap.Valid() {
		errs = append(errs, fmt.Errorf("start cap: %w: %d", ErrInvalidCap, int(cfg.StartCap)))
	}
	if !finite(cfg.StartCapSize) {
		errs = append(errs, fmt.Errorf("start cap size %g: %w", cfg.StartCapSize, ErrNonFinite))
	}
	return errors.Join(errs...)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v Vec2) bool {
	return !v.IsNaN() && !v.IsInf()
}
