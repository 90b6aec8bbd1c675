package graphics

import (
	"fmt"
	"math"
)

// TileMode specifies how a gradient is extended beyond its stop range.
type TileMode int

const (
	// TileModeClamp extends the edge colors outward.
	TileModeClamp TileMode = iota

	// TileModeRepeat tiles the gradient.
	TileModeRepeat

	// TileModeMirror tiles with alternating mirrored copies.
	TileModeMirror
)

// String returns a human-readable representation of the tile mode.
func (m TileMode) String() string {
	switch m {
	case TileModeClamp:
		return "clamp"
	case TileModeRepeat:
		return "repeat"
	case TileModeMirror:
		return "mirror"
	default:
		return fmt.Sprintf("TileMode(%d)", int(m))
	}
}

// apply maps a raw gradient parameter according to the tile mode. Clamp
// leaves t untouched: edge colors are held by the stop sampler.
func (m TileMode) apply(t float64) float64 {
	switch m {
	case TileModeRepeat:
		return t - math.Floor(t)
	case TileModeMirror:
		f := math.Mod(math.Abs(t), 2)
		if f > 1 {
			return 2 - f
		}
		return f
	default:
		return t
	}
}

// ColorFilterType specifies the algorithm used by a ColorFilter.
type ColorFilterType int

const (
	// ColorFilterBlend blends a constant color with the input using a blend mode.
	ColorFilterBlend ColorFilterType = iota
)

// ColorFilter transforms colors as a fill is composited.
//
// The controls use a blend filter with BlendModeSrcATop to tint a pressed
// surface: the tint only lands where the fill already has coverage.
type ColorFilter struct {
	// Type specifies the filter algorithm.
	Type ColorFilterType

	// Color is the constant color for ColorFilterBlend.
	Color Color

	// BlendMode controls how Color is blended for ColorFilterBlend.
	BlendMode BlendMode
}

// NewTintFilter returns a src-atop blend filter with the given color.
func NewTintFilter(c Color) *ColorFilter {
	return &ColorFilter{
		Type:      ColorFilterBlend,
		Color:     c,
		BlendMode: BlendModeSrcATop,
	}
}
