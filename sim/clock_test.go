package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockDrainsWholeSteps(t *testing.T) {
	c := NewClock(10 * time.Millisecond)

	assert.Equal(t, 0, c.Tick(4*time.Millisecond))
	assert.Equal(t, 1, c.Tick(7*time.Millisecond), "remainder carries across frames")
	assert.Equal(t, time.Millisecond, c.Pending())

	assert.Equal(t, 3, c.Tick(30*time.Millisecond))
}

func TestClockClampsCatchUp(t *testing.T) {
	c := NewClock(10 * time.Millisecond)

	// A multi-second hitch produces a bounded burst, not a spiral.
	assert.Equal(t, 25, c.Tick(5*time.Second))
	assert.Equal(t, time.Duration(0), c.Pending())
}

func TestClockIgnoresNegativeElapsed(t *testing.T) {
	c := NewClock(10 * time.Millisecond)
	c.Tick(5 * time.Millisecond)

	assert.Equal(t, 0, c.Tick(-time.Hour))
	assert.Equal(t, 5*time.Millisecond, c.Pending())
}

func TestClockReset(t *testing.T) {
	c := NewClock(10 * time.Millisecond)
	c.Tick(5 * time.Millisecond)
	c.Reset()
	assert.Equal(t, time.Duration(0), c.Pending())
}

func TestClockRejectsBadConfig(t *testing.T) {
	assert.Panics(t, func() { NewClock(0) })

	c := NewClock(10 * time.Millisecond)
	c.SetMaxCatchUp(time.Millisecond) // below one step, rejected
	assert.Equal(t, 25, c.Tick(time.Second), "clamp unchanged")
}
