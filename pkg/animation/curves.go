package animation

import "math"

// LinearCurve is the identity curve.
func LinearCurve(t float64) float64 {
	return t
}

// AccelerateDecelerate starts and ends slowly and is fastest at the
// midpoint. It is symmetric, so AccelerateDecelerate(0.5) is exactly 0.5.
func AccelerateDecelerate(t float64) float64 {
	t = clampUnit(t)
	return 0.5 - math.Cos(t*math.Pi)/2
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
