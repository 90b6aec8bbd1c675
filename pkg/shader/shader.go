// Package shader turns a parsed gradient into a graphics.Gradient sized to a
// control, optionally brightness-shifted for the pressed state.
package shader

import (
	"errors"
	"fmt"
	"math"

	"github.com/veilar-ui/veilar/pkg/graphics"
	"github.com/veilar-ui/veilar/pkg/style"
)

// ErrNoStops is returned when a gradient has nothing to interpolate.
var ErrNoStops = errors.New("shader: gradient has no color stops")

// Build returns the shader for spec over a width x height box. Every stop
// color is passed through graphics.ShiftBrightness with factor; a factor of
// 1 leaves the colors untouched. Stops are passed through in written order.
// The tile mode is always clamp.
func Build(spec *style.GradientSpec, width, height, factor float64) (*graphics.Gradient, error) {
	if spec == nil || len(spec.Stops) == 0 {
		return nil, ErrNoStops
	}
	if !finite(width) || !finite(height) || !finite(factor) {
		return nil, fmt.Errorf("shader: invalid dimensions %gx%g (factor %g)", width, height, factor)
	}

	stops := make([]graphics.GradientStop, len(spec.Stops))
	for i, s := range spec.Stops {
		stops[i] = graphics.GradientStop{
			Position: s.Position,
			Color:    graphics.ShiftBrightness(s.Color, factor),
		}
	}

	center := graphics.Offset{X: width / 2, Y: height / 2}
	var g *graphics.Gradient
	switch spec.Kind {
	case style.GradientLinear:
		g = graphics.NewLinearGradient(graphics.Offset{}, LinearEnd(spec.Angle, width, height), stops)
	case style.GradientRadial:
		g = graphics.NewRadialGradient(center, math.Max(width, height)/2, stops)
	case style.GradientSweep:
		g = graphics.NewSweepGradient(center, stops)
	default:
		return nil, fmt.Errorf("shader: unsupported gradient kind %v", spec.Kind)
	}
	g.TileMode = graphics.TileModeClamp
	return g, nil
}

// LinearEnd returns the end point of a linear gradient that starts at the
// origin: (cos(a)*width, sin(a)*height) with a in degrees. The direction is
// therefore skewed on non-square boxes; existing styles depend on it.
func LinearEnd(angleDegrees, width, height float64) graphics.Offset {
	a := angleDegrees * math.Pi / 180
	return graphics.Offset{X: math.Cos(a) * width, Y: math.Sin(a) * height}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
