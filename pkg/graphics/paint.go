package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// BlendMode controls how source and destination colors are composited.
type BlendMode int

const (
	BlendModeSrcOver BlendMode = iota // src_over
	BlendModeSrcATop                  // src_atop
)

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendModeSrcOver:
		return "src_over"
	case BlendModeSrcATop:
		return "src_atop"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(b))
	}
}

// Paint describes how to draw a shape or text on the canvas.
type Paint struct {
	Color       Color
	Gradient    *Gradient  // If set, overrides Color for the fill
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels

	// Compositing
	BlendMode BlendMode // Compositing mode
	Alpha     float64   // Overall opacity 0.0-1.0

	// ColorFilter is applied on top of the fill where the fill has coverage.
	ColorFilter *ColorFilter
}

// DefaultPaint returns a basic opaque white fill paint with standard compositing.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		BlendMode:   BlendModeSrcOver,
		Alpha:       1.0,
	}
}

// ColorAt returns the paint's source color at p, before alpha and filters.
func (p Paint) ColorAt(pt Offset) Color {
	if p.Gradient != nil && p.Gradient.IsValid() {
		return p.Gradient.At(pt)
	}
	return p.Color
}
