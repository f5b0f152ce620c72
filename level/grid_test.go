package level

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridReadsAreTotal(t *testing.T) {
	g := NewGrid(4, 6, 16)
	g.SetTile(2, 3, Solid)

	assert.Equal(t, Solid, g.TileAt(2, 3))
	assert.Equal(t, Empty, g.TileAt(0, 0))

	// Out of bounds on every side reads Empty, never panics.
	assert.Equal(t, Empty, g.TileAt(-1, 3))
	assert.Equal(t, Empty, g.TileAt(4, 3))
	assert.Equal(t, Empty, g.TileAt(2, -1))
	assert.Equal(t, Empty, g.TileAt(2, 6))

	// Out-of-bounds writes are dropped.
	g.SetTile(-1, 0, Solid)
	g.SetTile(0, 99, Solid)
	assert.Equal(t, Empty, g.TileAt(0, 0))
}

func TestCellAtPositionFloors(t *testing.T) {
	g := NewGrid(4, 4, 16)

	assert.Equal(t, Cell{Row: 0, Col: 0}, g.CellAtPosition(0, 0))
	assert.Equal(t, Cell{Row: 0, Col: 0}, g.CellAtPosition(15.999, 15.999))
	assert.Equal(t, Cell{Row: 1, Col: 1}, g.CellAtPosition(16, 16))
	assert.Equal(t, Cell{Row: 2, Col: 3}, g.CellAtPosition(55, 40))

	// Negative coordinates floor into negative cells instead of cell zero.
	assert.Equal(t, Cell{Row: -1, Col: -1}, g.CellAtPosition(-0.5, -0.5))
	assert.Equal(t, Cell{Row: -2, Col: 0}, g.CellAtPosition(3, -17))

	g.SetTile(1, 1, Kill)
	assert.Equal(t, Kill, g.TileAtPosition(17, 20))
	assert.Equal(t, Empty, g.TileAtPosition(-3, 20))
}

func TestArmDecayOnlyArmsUnstable(t *testing.T) {
	g := NewGrid(2, 2, 16)
	g.SetTile(0, 0, Solid)
	g.SetTile(0, 1, Unstable)

	g.ArmDecay(0, 0, 0, 500*time.Millisecond)
	g.ArmDecay(1, 1, 0, 500*time.Millisecond) // empty cell
	assert.Equal(t, 0, g.ActiveDecays())

	g.ArmDecay(0, 1, time.Second, 500*time.Millisecond)
	require.Equal(t, 1, g.ActiveDecays())
	deadline, ok := g.DecayDeadline(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, deadline)
}

func TestArmDecayDoesNotExtend(t *testing.T) {
	g := NewGrid(1, 1, 16)
	g.SetTile(0, 0, Unstable)

	g.ArmDecay(0, 0, 0, 500*time.Millisecond)
	g.ArmDecay(0, 0, 400*time.Millisecond, 500*time.Millisecond)

	deadline, ok := g.DecayDeadline(0, 0)
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, deadline, "second landing must not buy more time")
}

func TestSweepDecayCrumblesAtDeadline(t *testing.T) {
	g := NewGrid(1, 2, 16)
	g.SetTile(0, 0, Unstable)
	g.SetTile(0, 1, Unstable)

	g.ArmDecay(0, 0, 0, 500*time.Millisecond)
	g.ArmDecay(0, 1, 0, 900*time.Millisecond)

	assert.Equal(t, 0, g.SweepDecay(499*time.Millisecond))
	assert.Equal(t, Unstable, g.TileAt(0, 0))

	assert.Equal(t, 1, g.SweepDecay(500*time.Millisecond), "deadline is inclusive")
	assert.Equal(t, Empty, g.TileAt(0, 0))
	assert.Equal(t, Unstable, g.TileAt(0, 1))
	assert.Equal(t, 1, g.ActiveDecays())

	assert.Equal(t, 1, g.SweepDecay(2*time.Second))
	assert.Equal(t, 0, g.ActiveDecays())
}

func TestSweepDecayDiscardsStaleTimers(t *testing.T) {
	g := NewGrid(1, 1, 16)
	g.SetTile(0, 0, Unstable)
	g.ArmDecay(0, 0, 0, 100*time.Millisecond)

	// External mutation after arming wins; the stale timer is dropped silently.
	g.SetTile(0, 0, Solid)
	assert.Equal(t, 0, g.SweepDecay(time.Second))
	assert.Equal(t, Solid, g.TileAt(0, 0))
	assert.Equal(t, 0, g.ActiveDecays())
}
