package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/icefall/level"
)

// Test fixtures use a 10ms step so rates divide into round per-tick deltas:
// accel 1000 px/s^2 becomes exactly 10 px/s per tick.
const testStep = 10 * time.Millisecond

const (
	testBodyW = 12.0
	testBodyH = 14.0
)

func testTuning() Tuning {
	return Tuning{
		AccelGround:      1000,
		AccelAir:         500,
		FrictionGround:   800,
		SlipFriction:     200,
		SlipAccelMult:    0.5,
		SlipMaxSpeedMult: 1.0,
		MaxSpeedGround:   100,
		MaxSpeedAir:      80,
		Gravity:          1000,
		MaxFallSpeed:     300,
		JumpPower:        250,
		JumpCutMult:      0.4,
		JumpBuffer:       150 * time.Millisecond,
		CoyoteTime:       100 * time.Millisecond,
		DecayDelay:       500 * time.Millisecond,
	}
}

// gridFrom builds a 16px grid from legend rows: # solid, ^ kill, ~ slip,
// % unstable, anything else empty.
func gridFrom(rows ...string) *level.Grid {
	g := level.NewGrid(len(rows), len(rows[0]), 16)
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '#':
				g.SetTile(r, c, level.Solid)
			case '^':
				g.SetTile(r, c, level.Kill)
			case '~':
				g.SetTile(r, c, level.Slip)
			case '%':
				g.SetTile(r, c, level.Unstable)
			}
		}
	}
	return g
}

func newTestSim(g *level.Grid, x, y float64) *Simulation {
	return New(g, testTuning(), testStep, x, y, testBodyW, testBodyH)
}

// standingOn returns the Y that rests the test body exactly on top of a tile row.
func standingOn(row int) float64 {
	return float64(row)*16 - testBodyH
}

func stepN(s *Simulation, n int, in Input) {
	for i := 0; i < n; i++ {
		s.Step(in)
	}
}

// settle runs a few idle ticks so a freshly placed body derives its ground state.
func settle(s *Simulation) {
	stepN(s, 3, Input{})
}

func TestRunOneSecond(t *testing.T) {
	g := gridFrom(
		"....................",
		"....................",
		"####################",
	)
	s := newTestSim(g, 16, standingOn(2))
	settle(s)
	startX := s.Body().X

	stepN(s, 100, Input{Right: true})

	// Grounded steering applies at the pre-collision stage and again at the
	// post-collision stage, so the ramp runs 20,40..100 px/s over five ticks
	// and then holds flat at the cap.
	traveled := s.Body().X - startX
	t.Logf("traveled %.2f px in 1s", traveled)
	assert.InDelta(t, 98.0, traveled, 0.1)
	assert.Equal(t, 100.0, s.Body().VX)
	assert.True(t, s.Body().OnGround)
}

func TestStandingStaysGrounded(t *testing.T) {
	g := gridFrom(
		"..........",
		"..........",
		"##########",
	)
	s := newTestSim(g, 32, standingOn(2))
	settle(s)
	restY := s.Body().Y
	require.True(t, s.Body().OnGround)

	for i := 0; i < 100; i++ {
		s.Step(Input{})
		assert.True(t, s.Body().OnGround)
		assert.Equal(t, restY, s.Body().Y)
		assert.Equal(t, 0.0, s.Body().VY)
	}
}

func TestBothDirectionsCancel(t *testing.T) {
	g := gridFrom(
		"..........",
		"##########",
	)
	s := newTestSim(g, 32, standingOn(1))
	settle(s)

	stepN(s, 10, Input{Left: true, Right: true})
	assert.Equal(t, 0.0, s.Body().VX, "opposing directions read as no input")
	assert.Equal(t, 32.0, s.Body().X)
}
