// Package animation drives the press and long-press transitions of the
// styled controls.
//
// An [AnimationController] moves a value between bounds over a duration,
// shaped by an easing curve. Controllers are advanced by [StepTickers],
// which the host calls once per frame; tests swap the time source with
// [SetClock] and step frames by hand.
//
//	c := animation.NewAnimationController(100 * time.Millisecond)
//	c.LowerBound, c.UpperBound = 0.95, 1
//	c.Value = 1
//	c.AddListener(func() { view.SetScale(c.Value) })
//	c.AnimateTo(0.95)
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active. The callback receives
// the time elapsed since Start.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a stopped ticker.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start registers the ticker with the frame loop.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop removes the ticker from the frame loop.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since Start, or 0 when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances every active ticker. Call it once per frame from the
// UI goroutine.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Callbacks may start or stop tickers, so iterate over a snapshot.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
