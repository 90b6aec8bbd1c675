package animation

import (
	"fmt"
	"time"
)

// AnimationStatus is the state of an AnimationController.
//
//	             Forward / AnimateTo(higher)
//	Dismissed ────────────────────────────────► Completed
//	    ▲                                          │
//	    └──────────────────────────────────────────┘
//	             Reverse / AnimateTo(lower)
//
// While moving the status is AnimationForward or AnimationReverse. A
// controller that settles strictly between its bounds reports
// AnimationStopped.
type AnimationStatus int

const (
	// AnimationDismissed means the value rests at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the value is moving up.
	AnimationForward
	// AnimationReverse means the value is moving down.
	AnimationReverse
	// AnimationCompleted means the value rests at the upper bound.
	AnimationCompleted
	// AnimationStopped means the value rests between the bounds.
	AnimationStopped
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	case AnimationStopped:
		return "stopped"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController moves Value toward a target over Duration.
//
// Each call to AnimateTo (or one step of AnimateThrough) takes the full
// Duration regardless of the distance to travel. Controllers must be used
// from the UI goroutine and disposed when their owner goes away.
type AnimationController struct {
	// Value is the current value.
	Value float64
	// Duration is the length of one animation segment.
	Duration time.Duration
	// Curve shapes linear progress; nil means linear.
	Curve func(float64) float64
	// LowerBound and UpperBound are the resting values reported as
	// dismissed and completed.
	LowerBound float64
	UpperBound float64

	status          AnimationStatus
	ticker          *Ticker
	startValue      float64
	target          float64
	queue           []float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController returns a controller resting at 0 with bounds [0, 1].
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		UpperBound:      1,
		Curve:           LinearCurve,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates to UpperBound.
func (c *AnimationController) Forward() {
	c.AnimateThrough(c.UpperBound)
}

// Reverse animates to LowerBound.
func (c *AnimationController) Reverse() {
	c.AnimateThrough(c.LowerBound)
}

// AnimateTo animates from the current value to target, replacing any
// animation in flight.
func (c *AnimationController) AnimateTo(target float64) {
	c.AnimateThrough(target)
}

// AnimateThrough animates to each target in turn, one Duration per target.
// The sequence replaces any animation in flight.
func (c *AnimationController) AnimateThrough(targets ...float64) {
	c.stopTicker()
	if len(targets) == 0 {
		return
	}
	c.queue = append(c.queue[:0], targets[1:]...)
	c.startSegment(targets[0])
}

func (c *AnimationController) startSegment(target float64) {
	c.startValue = c.Value
	c.target = target
	if target >= c.Value {
		c.setStatus(AnimationForward)
	} else {
		c.setStatus(AnimationReverse)
	}
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress < 1 {
		return
	}
	c.Value = c.target
	c.stopTicker()
	if len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.startSegment(next)
		return
	}
	c.settle()
}

func (c *AnimationController) settle() {
	switch {
	case c.Value <= c.LowerBound:
		c.setStatus(AnimationDismissed)
	case c.Value >= c.UpperBound:
		c.setStatus(AnimationCompleted)
	default:
		c.setStatus(AnimationStopped)
	}
}

// SetValue jumps to v without animating and notifies listeners.
func (c *AnimationController) SetValue(v float64) {
	c.Stop()
	c.Value = v
	c.notifyListeners()
	c.settle()
}

// Reset jumps to LowerBound.
func (c *AnimationController) Reset() {
	c.SetValue(c.LowerBound)
}

// Stop halts the animation at the current value and drops queued targets.
func (c *AnimationController) Stop() {
	wasRunning := c.ticker != nil
	c.stopTicker()
	c.queue = c.queue[:0]
	if wasRunning {
		c.settle()
	}
}

func (c *AnimationController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating reports whether a ticker is driving the value.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil
}

// AddListener registers fn to run after every value change and returns a
// function that unregisters it.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// AddStatusListener registers fn to run on every status change and returns
// a function that unregisters it.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() { delete(c.statusListeners, id) }
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.stopTicker()
	c.queue = nil
	c.listeners = nil
	c.statusListeners = nil
}
