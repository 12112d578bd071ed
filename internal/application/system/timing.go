package system

import "time"

// SimDelta converts a wall-clock frame delta into a simulation delta in seconds.
// Negative deltas become 0 and hitches are capped at maxStep.
func SimDelta(frame time.Duration, maxStep float64) float64 {
	dt := frame.Seconds()
	if dt < 0 {
		return 0
	}
	if maxStep > 0 && dt > maxStep {
		return maxStep
	}
	return dt
}

// Clock measures wall-clock time between frames
type Clock struct {
	now     func() time.Time
	last    time.Time
	maxStep float64
}

// NewClock creates a clock reading the system time
func NewClock(maxStep float64) *Clock {
	return NewClockWithSource(maxStep, time.Now)
}

// NewClockWithSource creates a clock reading time from now
func NewClockWithSource(maxStep float64, now func() time.Time) *Clock {
	return &Clock{now: now, maxStep: maxStep}
}

// Tick returns the simulation delta since the previous Tick.
// The first Tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := SimDelta(t.Sub(c.last), c.maxStep)
	c.last = t
	return dt
}

// Reset forgets the previous frame so the next Tick returns 0
func (c *Clock) Reset() {
	c.last = time.Time{}
}
