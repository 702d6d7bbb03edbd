package arrow

import (
	"fmt"
	"math"
)

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
