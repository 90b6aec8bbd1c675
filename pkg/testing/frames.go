package testing

import (
	"testing"
	"time"

	"github.com/veilar-ui/veilar/pkg/animation"
)

// UseFakeClock installs a FakeClock as the animation clock for the duration
// of the test.
func UseFakeClock(t testing.TB) *FakeClock {
	t.Helper()
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

// Pump advances clk by d in frames of at most frame, stepping the animation
// tickers after each one. It returns the number of frames stepped.
func Pump(clk *FakeClock, d, frame time.Duration) int {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	frames := 0
	for d > 0 {
		step := min(frame, d)
		clk.Advance(step)
		animation.StepTickers()
		d -= step
		frames++
	}
	return frames
}

// Settle steps frames until no ticker is active or limit elapses and
// reports whether the animations settled.
func Settle(clk *FakeClock, limit time.Duration) bool {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed <= limit; elapsed += frame {
		if !animation.HasActiveTickers() {
			return true
		}
		clk.Advance(frame)
		animation.StepTickers()
	}
	return !animation.HasActiveTickers()
}
