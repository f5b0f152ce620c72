package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/icefall/level"
)

func TestCrackedIceCrumblesUnderfoot(t *testing.T) {
	g := gridFrom(
		"............",
		"............",
		"...%........",
		"............",
		"############",
	)
	s := newTestSim(g, 50, 2)

	for i := 0; i < 100 && !s.Body().OnGround; i++ {
		s.Step(Input{})
	}
	require.True(t, s.Body().OnGround)
	require.Equal(t, standingOn(2), s.Body().Y)

	deadline, armed := g.DecayDeadline(2, 3)
	require.True(t, armed, "landing arms the decay timer")
	assert.Equal(t, s.Now()+500*time.Millisecond, deadline)

	// Stand still until the ice gives way. The sweep runs at the end of the
	// tick whose time reaches the deadline, so the floor holds through the
	// tick before it.
	for s.Now() < deadline-testStep {
		s.Step(Input{})
		require.Equal(t, level.Unstable, g.TileAt(2, 3))
		require.True(t, s.Body().OnGround)
	}
	s.Step(Input{})
	assert.Equal(t, level.Empty, g.TileAt(2, 3), "crumbles exactly at the deadline")
	assert.Equal(t, 1, s.Events().Broke)
	assert.True(t, s.Body().OnGround, "the tick that breaks the tile already stood on it")

	s.Step(Input{})
	assert.False(t, s.Body().OnGround, "nothing left to stand on")
	assert.Greater(t, s.Body().VY, 0.0)

	for i := 0; i < 100 && !s.Body().OnGround; i++ {
		s.Step(Input{})
	}
	assert.Equal(t, standingOn(4), s.Body().Y, "comes to rest on the floor below")
}

func TestRelandingKeepsOriginalDeadline(t *testing.T) {
	g := gridFrom(
		"............",
		"............",
		"............",
		"............",
		"...%%.......",
	)
	tun := testTuning()
	tun.DecayDelay = 2 * time.Second
	s := New(g, tun, testStep, 52, 2, testBodyW, testBodyH)

	for i := 0; i < 200 && !s.Body().OnGround; i++ {
		s.Step(Input{})
	}
	require.True(t, s.Body().OnGround)
	first, armed := g.DecayDeadline(4, 3)
	require.True(t, armed)

	// Hop off and re-land before expiry: the deadline must not move.
	s.Step(Input{Jump: true})
	require.True(t, s.Events().Jumped)
	for i := 0; i < 200 && !s.Body().OnGround; i++ {
		s.Step(Input{Jump: true})
	}
	require.True(t, s.Body().OnGround, "should re-land before the ice breaks")

	second, armed := g.DecayDeadline(4, 3)
	require.True(t, armed)
	assert.Equal(t, first, second, "re-landing never resets the timer")

	// The cell empties exactly once, at the original deadline.
	transitions := 0
	prev := g.TileAt(4, 3)
	for i := 0; i < 400; i++ {
		s.Step(Input{})
		cur := g.TileAt(4, 3)
		if prev == level.Unstable && cur == level.Empty {
			transitions++
			assert.GreaterOrEqual(t, s.Now(), first)
			assert.LessOrEqual(t, s.Now(), first+testStep)
		}
		prev = cur
	}
	assert.Equal(t, 1, transitions)
}

func TestDeathPreservesDecayTimers(t *testing.T) {
	g := gridFrom(
		"............",
		"....^.......",
		"##%#########",
		"############",
	)
	s := newTestSim(g, 34, 4)

	for i := 0; i < 100 && !s.Body().OnGround; i++ {
		s.Step(Input{})
	}
	require.True(t, s.Body().OnGround)
	deadline, armed := g.DecayDeadline(2, 2)
	require.True(t, armed)

	// Run into the spikes before the ice breaks.
	died := false
	for i := 0; i < 40 && !died; i++ {
		s.Step(Input{Right: true})
		died = s.Events().Respawned
	}
	require.True(t, died, "never reached the spikes")
	require.Less(t, s.Now(), deadline, "died after the ice already broke; shrink the run-up")

	assert.Equal(t, 1, g.ActiveDecays(), "death does not clear decay timers")

	// Idle: the body falls back onto the cracked cell, which still crumbles
	// at the original deadline and drops it to the floor below.
	for s.Now() <= deadline {
		s.Step(Input{})
	}
	assert.Equal(t, level.Empty, g.TileAt(2, 2))

	for i := 0; i < 100 && !s.Body().OnGround; i++ {
		s.Step(Input{})
	}
	assert.Equal(t, standingOn(3), s.Body().Y)
}
