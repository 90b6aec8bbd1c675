package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilar-ui/veilar/pkg/animation"
	vtesting "github.com/veilar-ui/veilar/pkg/testing"
)

func TestControllerAnimatesOverDuration(t *testing.T) {
	clk := vtesting.UseFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	t.Cleanup(c.Dispose)

	var statuses []animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) { statuses = append(statuses, s) })

	c.Forward()
	assert.True(t, c.IsAnimating())
	assert.Equal(t, animation.AnimationForward, c.Status())

	vtesting.Pump(clk, 25*time.Millisecond, 25*time.Millisecond)
	assert.InDelta(t, 0.25, c.Value, 1e-9)

	vtesting.Pump(clk, 100*time.Millisecond, 25*time.Millisecond)
	assert.Equal(t, 1.0, c.Value)
	assert.False(t, c.IsAnimating())
	assert.Equal(t, []animation.AnimationStatus{animation.AnimationForward, animation.AnimationCompleted}, statuses)

	c.Reverse()
	vtesting.Pump(clk, 100*time.Millisecond, 50*time.Millisecond)
	assert.Equal(t, 0.0, c.Value)
	assert.Equal(t, animation.AnimationDismissed, c.Status())
}

func TestControllerSettlesBetweenBounds(t *testing.T) {
	clk := vtesting.UseFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	t.Cleanup(c.Dispose)
	c.LowerBound, c.UpperBound = 0.9, 1.1
	c.SetValue(1)
	assert.Equal(t, animation.AnimationStopped, c.Status())

	c.AnimateTo(0.95)
	assert.Equal(t, animation.AnimationReverse, c.Status())
	require.True(t, vtesting.Settle(clk, time.Second))
	assert.InDelta(t, 0.95, c.Value, 1e-12)
	assert.Equal(t, animation.AnimationStopped, c.Status())
}

func TestControllerAnimateThroughRunsEachSegment(t *testing.T) {
	clk := vtesting.UseFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	t.Cleanup(c.Dispose)
	c.SetValue(1)
	c.UpperBound = 2

	var peak float64
	c.AddListener(func() { peak = max(peak, c.Value) })

	c.AnimateThrough(1.05, 1)
	vtesting.Pump(clk, 100*time.Millisecond, 20*time.Millisecond)
	assert.InDelta(t, 1.05, c.Value, 1e-12, "first segment ends at the peak")
	assert.True(t, c.IsAnimating(), "second segment is queued")

	vtesting.Pump(clk, 100*time.Millisecond, 20*time.Millisecond)
	assert.Equal(t, 1.0, c.Value)
	assert.False(t, c.IsAnimating())
	assert.InDelta(t, 1.05, peak, 1e-12)
}

func TestControllerStopDropsQueue(t *testing.T) {
	clk := vtesting.UseFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	t.Cleanup(c.Dispose)

	c.AnimateThrough(1, 0)
	vtesting.Pump(clk, 40*time.Millisecond, 20*time.Millisecond)
	c.Stop()
	v := c.Value
	vtesting.Pump(clk, 300*time.Millisecond, 20*time.Millisecond)
	assert.Equal(t, v, c.Value)
	assert.False(t, animation.HasActiveTickers())
}

func TestControllerZeroDurationJumps(t *testing.T) {
	clk := vtesting.UseFakeClock(t)
	c := animation.NewAnimationController(0)
	t.Cleanup(c.Dispose)

	c.Forward()
	vtesting.Pump(clk, time.Millisecond, time.Millisecond)
	assert.Equal(t, 1.0, c.Value)
	assert.Equal(t, animation.AnimationCompleted, c.Status())
}

func TestListenerUnsubscribe(t *testing.T) {
	c := animation.NewAnimationController(time.Second)
	t.Cleanup(c.Dispose)
	calls := 0
	remove := c.AddListener(func() { calls++ })
	c.SetValue(0.5)
	remove()
	c.SetValue(0.7)
	assert.Equal(t, 1, calls)
}

func TestAccelerateDecelerate(t *testing.T) {
	assert.Equal(t, 0.0, animation.AccelerateDecelerate(0))
	assert.Equal(t, 1.0, animation.AccelerateDecelerate(1))
	assert.InDelta(t, 0.5, animation.AccelerateDecelerate(0.5), 1e-12)
	assert.Less(t, animation.AccelerateDecelerate(0.25), 0.25, "slow start")
	assert.Greater(t, animation.AccelerateDecelerate(0.75), 0.75, "slow finish")
	assert.Equal(t, 1.0, animation.AccelerateDecelerate(2), "clamped")
}

func TestControllerCurveShapesProgress(t *testing.T) {
	clk := vtesting.UseFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	t.Cleanup(c.Dispose)
	c.Curve = animation.AccelerateDecelerate

	c.Forward()
	vtesting.Pump(clk, 25*time.Millisecond, 25*time.Millisecond)
	assert.InDelta(t, animation.AccelerateDecelerate(0.25), c.Value, 1e-9)
	vtesting.Pump(clk, 25*time.Millisecond, 25*time.Millisecond)
	assert.InDelta(t, 0.5, c.Value, 1e-9)
}
