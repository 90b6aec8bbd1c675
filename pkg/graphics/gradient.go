package graphics

import (
	"fmt"
	"math"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
	// GradientTypeSweep indicates an angular gradient around a center.
	GradientTypeSweep
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	case GradientTypeSweep:
		return "sweep"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
}

// RadialGradient defines a gradient from a center point.
type RadialGradient struct {
	Center Offset
	Radius float64
}

// SweepGradient defines a gradient swept clockwise around a center, starting
// at the positive x axis.
type SweepGradient struct {
	Center Offset
}

// Gradient describes a linear, radial or sweep gradient.
//
// Stops are kept in the order supplied; they are not sorted and positions
// outside [0, 1] are passed through to the sampler.
type Gradient struct {
	Type     GradientType
	Linear   LinearGradient
	Radial   RadialGradient
	Sweep    SweepGradient
	Stops    []GradientStop
	TileMode TileMode
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type:   GradientTypeLinear,
		Linear: LinearGradient{Start: start, End: end},
		Stops:  cloneGradientStops(stops),
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Offset, radius float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type:   GradientTypeRadial,
		Radial: RadialGradient{Center: center, Radius: radius},
		Stops:  cloneGradientStops(stops),
	}
}

// NewSweepGradient constructs a sweep gradient definition.
func NewSweepGradient(center Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type:  GradientTypeSweep,
		Sweep: SweepGradient{Center: center},
		Stops: cloneGradientStops(stops),
	}
}

// Colors returns the stop colors in order.
func (g *Gradient) Colors() []Color {
	if g == nil {
		return nil
	}
	colors := make([]Color, len(g.Stops))
	for i, s := range g.Stops {
		colors[i] = s.Color
	}
	return colors
}

// Positions returns the stop positions in order.
func (g *Gradient) Positions() []float64 {
	if g == nil {
		return nil
	}
	pos := make([]float64, len(g.Stops))
	for i, s := range g.Stops {
		pos[i] = s.Position
	}
	return pos
}

// IsValid reports whether the gradient can be sampled.
func (g *Gradient) IsValid() bool {
	if g == nil || len(g.Stops) == 0 {
		return false
	}
	switch g.Type {
	case GradientTypeLinear, GradientTypeSweep:
		return true
	case GradientTypeRadial:
		return g.Radial.Radius > 0
	default:
		return false
	}
}

// At returns the color of the gradient at point p.
func (g *Gradient) At(p Offset) Color {
	if !g.IsValid() {
		return ColorTransparent
	}
	var t float64
	switch g.Type {
	case GradientTypeLinear:
		dx := g.Linear.End.X - g.Linear.Start.X
		dy := g.Linear.End.Y - g.Linear.Start.Y
		den := dx*dx + dy*dy
		if den == 0 {
			return g.Stops[len(g.Stops)-1].Color
		}
		t = ((p.X-g.Linear.Start.X)*dx + (p.Y-g.Linear.Start.Y)*dy) / den
	case GradientTypeRadial:
		t = math.Hypot(p.X-g.Radial.Center.X, p.Y-g.Radial.Center.Y) / g.Radial.Radius
	case GradientTypeSweep:
		a := math.Atan2(p.Y-g.Sweep.Center.Y, p.X-g.Sweep.Center.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		t = a / (2 * math.Pi)
	}
	return g.sample(g.TileMode.apply(t))
}

// sample interpolates the stops at t, holding the edge colors outside the
// first and last stop.
func (g *Gradient) sample(t float64) Color {
	stops := g.Stops
	if len(stops) == 1 || t <= stops[0].Position {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if t > next.Position {
			continue
		}
		span := next.Position - prev.Position
		if span <= 0 {
			return next.Color
		}
		return lerpColor(prev.Color, next.Color, (t-prev.Position)/span)
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b Color, t float64) Color {
	l := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return ARGB(l(a.A(), b.A()), l(a.R(), b.R()), l(a.G(), b.G()), l(a.B(), b.B()))
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
