package animation

import "time"

// Clock is the time source of every ticker.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var clock Clock = systemClock{}

// SetClock replaces the time source and returns the previous one so tests
// can restore it. Passing nil restores the system clock.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = systemClock{}
	}
	clock = c
	return prev
}

// Now returns the current time of the active clock.
func Now() time.Time { return clock.Now() }
