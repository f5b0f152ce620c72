package sim

import "time"

// DefaultMaxCatchUp bounds how much real time the clock will convert into
// catch-up ticks after a hitch. Anything beyond it is dropped so a debugger
// pause or window drag cannot trigger a tick spiral.
const DefaultMaxCatchUp = 250 * time.Millisecond

// Clock converts variable frame time into whole fixed steps. The shell feeds
// it real elapsed time each frame and runs Step once per returned tick;
// leftover time stays in the accumulator for the next frame.
type Clock struct {
	step       time.Duration
	accum      time.Duration
	maxCatchUp time.Duration
}

// NewClock returns a clock with the given fixed step. Panics on a
// non-positive step.
func NewClock(step time.Duration) *Clock {
	if step <= 0 {
		panic("sim: clock step must be positive")
	}
	return &Clock{step: step, maxCatchUp: DefaultMaxCatchUp}
}

// SetMaxCatchUp changes the accumulator clamp. Values below one step
// effectively freeze the clock and are rejected.
func (c *Clock) SetMaxCatchUp(d time.Duration) {
	if d >= c.step {
		c.maxCatchUp = d
	}
}

// Tick adds elapsed real time and returns how many fixed steps are due.
// Negative elapsed counts as zero.
func (c *Clock) Tick(elapsed time.Duration) int {
	if elapsed > 0 {
		c.accum += elapsed
	}
	if c.accum > c.maxCatchUp {
		c.accum = c.maxCatchUp
	}
	n := int(c.accum / c.step)
	c.accum -= time.Duration(n) * c.step
	return n
}

// Step is the fixed step duration.
func (c *Clock) Step() time.Duration { return c.step }

// Pending is the accumulated remainder, for the debug overlay.
func (c *Clock) Pending() time.Duration { return c.accum }

// Reset drops any accumulated time, used on level changes and unpause.
func (c *Clock) Reset() { c.accum = 0 }
