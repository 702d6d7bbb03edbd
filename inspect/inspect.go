// Package inspect exposes an arrow configuration as a sheet of named,
// string-valued properties, for property editors and command-line flags.
//
// Values are parsed and validated when they are set, so a [Sheet] always
// holds a configuration that passes [arrow.Config.Validate].
package inspect

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bezierview/arrow"
)

// ErrUnknownProperty is returned for property names not in [Properties].
var ErrUnknownProperty = errors.New("unknown property")

// PropertyError records a value that could not be assigned to a property.
type PropertyError struct {
	Name  string
	Value string
	Err   error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %s: invalid value %q: %s", e.Name, e.Value, e.Err)
}

func (e *PropertyError) Unwrap() error { return e.Err }

// Kind describes the syntax of a property's values.
type Kind int

const (
	// CornerKind values are parsed by [arrow.ParseCorner].
	CornerKind Kind = iota + 1
	// VectorKind values are two numbers, written "x,y" or "{x, y}".
	VectorKind
	// FloatKind values are finite numbers.
	FloatKind
	// BoolKind values are parsed by [strconv.ParseBool].
	BoolKind
	// StyleKind values are parsed by [arrow.ParseArrowheadStyle].
	StyleKind
	// CapKind values are parsed by [arrow.ParseCapStyle].
	CapKind
)

func (k Kind) String() string {
	switch k {
	case CornerKind:
		return "corner"
	case VectorKind:
		return "vector"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case StyleKind:
		return "style"
	case CapKind:
		return "cap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Property describes one entry of a [Sheet].
type Property struct {
	Name string
	Kind Kind
	Doc  string
}

type field struct {
	Property
	get func(cfg *arrow.Config) string
	set func(cfg *arrow.Config, value string) error
}

func cornerField(name, doc string, ptr func(*arrow.Config) *arrow.Corner) field {
	return field{
		Property: Property{name, CornerKind, doc},
		get:      func(cfg *arrow.Config) string { return ptr(cfg).String() },
		set: func(cfg *arrow.Config, value string) error {
			c, err := arrow.ParseCorner(value)
			if err != nil {
				return err
			}
			*ptr(cfg) = c
			return nil
		},
	}
}

func vectorField(name, doc string, ptr func(*arrow.Config) *arrow.Vec2) field {
	return field{
		Property: Property{name, VectorKind, doc},
		get:      func(cfg *arrow.Config) string { return FormatVector(*ptr(cfg)) },
		set: func(cfg *arrow.Config, value string) error {
			v, err := ParseVector(value)
			if err != nil {
				return err
			}
			*ptr(cfg) = v
			return nil
		},
	}
}

func floatField(name, doc string, ptr func(*arrow.Config) *float64) field {
	return field{
		Property: Property{name, FloatKind, doc},
		get:      func(cfg *arrow.Config) string { return formatFloat(*ptr(cfg)) },
		set: func(cfg *arrow.Config, value string) error {
			f, err := parseFloat(value)
			if err != nil {
				return err
			}
			*ptr(cfg) = f
			return nil
		},
	}
}

var fields = []field{
	cornerField("startAnchor", "corner the curve starts from",
		func(cfg *arrow.Config) *arrow.Corner { return &cfg.Start.Anchor }),
	vectorField("startOffset", "offset of the start point from its anchor",
		func(cfg *arrow.Config) *arrow.Vec2 { return &cfg.Start.Offset }),
	vectorField("startControl", "first control point, relative to the start point",
		func(cfg *arrow.Config) *arrow.Vec2 { return &cfg.Start.Control }),
	cornerField("endAnchor", "corner the curve ends at",
		func(cfg *arrow.Config) *arrow.Corner { return &cfg.End.Anchor }),
	vectorField("endOffset", "offset of the end point from its anchor",
		func(cfg *arrow.Config) *arrow.Vec2 { return &cfg.End.Offset }),
	vectorField("endControl", "second control point, relative to the end point",
		func(cfg *arrow.Config) *arrow.Vec2 { return &cfg.End.Control }),
	floatField("lineWidth", "stroke width of the curve",
		func(cfg *arrow.Config) *float64 { return &cfg.LineWidth }),
	floatField("arrowSize", "length of the arrowhead's wings",
		func(cfg *arrow.Config) *float64 { return &cfg.ArrowSize }),
	{
		Property: Property{"showHandles", BoolKind, "draw control arms and handle markers"},
		get:      func(cfg *arrow.Config) string { return strconv.FormatBool(cfg.ShowHandles) },
		set: func(cfg *arrow.Config, value string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return err
			}
			cfg.ShowHandles = b
			return nil
		},
	},
	{
		Property: Property{"arrowStyle", StyleKind, "arrowhead shape, triangle or barbed"},
		get:      func(cfg *arrow.Config) string { return cfg.Style.String() },
		set: func(cfg *arrow.Config, value string) error {
			s, err := arrow.ParseArrowheadStyle(value)
			if err != nil {
				return err
			}
			cfg.Style = s
			return nil
		},
	},
	{
		Property: Property{"startCap", CapKind, "shape at the start point: none, circle, disc or arrowhead"},
		get:      func(cfg *arrow.Config) string { return cfg.StartCap.String() },
		set: func(cfg *arrow.Config, value string) error {
			c, err := arrow.ParseCapStyle(value)
			if err != nil {
				return err
			}
			cfg.StartCap = c
			return nil
		},
	},
	floatField("startCapSize", "radius or wing length of the start cap",
		func(cfg *arrow.Config) *float64 { return &cfg.StartCapSize }),
}

func lookup(name string) (*field, error) {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// Properties returns the sheet's properties in display order.
func Properties() []Property {
	out := make([]Property, len(fields))
	for i, f := range fields {
		out[i] = f.Property
	}
	return out
}

// Sheet is an editable arrow configuration. It is not safe for concurrent
// use; snapshot it with [Sheet.Config] to hand the configuration to other
// goroutines.
type Sheet struct {
	cfg arrow.Config
}

// New returns a sheet holding cfg. It returns the validation error if cfg is
// not valid.
func New(cfg arrow.Config) (*Sheet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sheet{cfg: cfg}, nil
}

// Get returns the current value of the named property, in the syntax that
// [Sheet.Set] accepts.
func (s *Sheet) Get(name string) (string, error) {
	f, err := lookup(name)
	if err != nil {
		return "", err
	}
	return f.get(&s.cfg), nil
}

// Set parses value and assigns it to the named property. On error the sheet
// is unchanged, and the error is a [*PropertyError] unless the name is
// unknown.
func (s *Sheet) Set(name, value string) error {
	f, err := lookup(name)
	if err != nil {
		return err
	}
	cfg := s.cfg
	if err := f.set(&cfg, value); err != nil {
		return &PropertyError{Name: name, Value: value, Err: err}
	}
	s.cfg = cfg
	return nil
}

// Config returns a snapshot of the configuration.
func (s *Sheet) Config() arrow.Config {
	return s.cfg
}

// Geometry computes the arrow's geometry within bounds.
func (s *Sheet) Geometry(bounds arrow.Rect) arrow.Geometry {
	return arrow.ComputeGeometry(s.cfg, bounds)
}

// ParseVector parses two comma or space separated numbers, optionally
// wrapped in braces as in "{20, -20}".
func ParseVector(s string) (arrow.Vec2, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") != strings.HasSuffix(s, "}") {
		return arrow.Vec2{}, fmt.Errorf("unbalanced braces in vector %q", s)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
	parts := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(parts) != 2 {
		return arrow.Vec2{}, fmt.Errorf("vector needs two components, got %d", len(parts))
	}
	x, err := parseFloat(parts[0])
	if err != nil {
		return arrow.Vec2{}, err
	}
	y, err := parseFloat(parts[1])
	if err != nil {
		return arrow.Vec2{}, err
	}
	return arrow.Vec(x, y), nil
}

// FormatVector formats v as "x,y".
func FormatVector(v arrow.Vec2) string {
	return formatFloat(v.X) + "," + formatFloat(v.Y)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, arrow.ErrNonFinite
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
