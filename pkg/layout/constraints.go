package layout

import (
	"math"

	"github.com/freshcart/gridkit/pkg/graphics"
)

// Unbounded is the max extent used for an axis with no upper limit.
const Unbounded = math.MaxFloat64

// Constraints describe the min and max size a render box may take.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// TightWidth returns constraints fixing the width and leaving height free.
func TightWidth(width float64) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: Unbounded}
}

// IsTight reports whether only one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth >= c.MaxWidth && c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether the max width is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unbounded && !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether the max height is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded && !math.IsInf(c.MaxHeight, 1)
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Loosen drops the minimums.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
