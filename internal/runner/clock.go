package runner

import "time"

// Clock measures elapsed time between frames.
type Clock interface {
	// Restart returns the seconds since the previous restart and starts a new interval.
	Restart() float64
}

// WallClock is a Clock backed by the system monotonic clock.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

// NewWallClock creates a clock whose first interval starts now.
func NewWallClock() *WallClock {
	return &WallClock{last: time.Now(), now: time.Now}
}

// Restart implements Clock.
func (c *WallClock) Restart() float64 {
	t := c.now()
	elapsed := t.Sub(c.last).Seconds()
	c.last = t
	return elapsed
}

// FixedClock reports the same step on every restart. Used for headless
// simulation and tests where frames must be reproducible.
type FixedClock struct {
	Step     float64
	Restarts int
}

// NewFixedClock creates a clock that advances by step seconds per frame.
func NewFixedClock(step float64) *FixedClock {
	return &FixedClock{Step: step}
}

// Restart implements Clock.
func (c *FixedClock) Restart() float64 {
	c.Restarts++
	return c.Step
}
