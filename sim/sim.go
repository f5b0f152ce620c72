// Package sim is the movement and collision core: a single kinematic body
// stepped at a fixed logical tick against a tile grid. It is deterministic
// and free of wall-clock and rendering concerns; the game shell feeds it held
// input and drains fixed steps from a Clock.
package sim

import (
	"time"

	"github.com/automoto/icefall/level"
)

// Input is the held-key snapshot for one tick. Edges (press/release) are
// derived inside the tick from the previous tick's snapshot, so feeding the
// same snapshot to several catch-up ticks cannot double-fire a press.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Body is the kinematic state of the player. Position is the top-left corner
// in pixels, +Y down. OnGround and OnSlip are re-derived by the vertical
// collision pass every tick.
type Body struct {
	X, Y float64
	W, H float64

	VX, VY float64

	OnGround    bool
	OnSlip      bool
	CoyoteUntil time.Duration
}

// Events reports what a single tick did, for the shell (fx, camera, counters).
type Events struct {
	Jumped    bool
	Landed    bool
	Respawned bool
	Broke     int
}

// Simulation owns the body, the grid it collides with, and logical time.
// Single writer: only Step mutates state; everything else is a read.
type Simulation struct {
	grid *level.Grid
	body Body
	tun  Tuning

	spawnX, spawnY float64

	step time.Duration
	dt   float64 // step in seconds
	now  time.Duration

	jumpBufferUntil time.Duration
	prevJump        bool

	events Events
}

// New places a w x h body at the spawn point, airborne with zero velocity.
// step is the fixed tick duration and must be positive.
func New(grid *level.Grid, tun Tuning, step time.Duration, spawnX, spawnY, w, h float64) *Simulation {
	if step <= 0 {
		panic("sim: step must be positive")
	}
	return &Simulation{
		grid:   grid,
		tun:    tun,
		spawnX: spawnX,
		spawnY: spawnY,
		step:   step,
		dt:     step.Seconds(),
		body:   Body{X: spawnX, Y: spawnY, W: w, H: h},
	}
}

// Body returns a copy of the current body state.
func (s *Simulation) Body() Body { return s.body }

// Grid returns the live grid. The simulation is its single writer; treat it
// as read-only between ticks.
func (s *Simulation) Grid() *level.Grid { return s.grid }

// Now is the logical time, advanced by one step per tick.
func (s *Simulation) Now() time.Duration { return s.now }

// Events reports what the most recent tick did.
func (s *Simulation) Events() Events { return s.events }

// Spawn returns the respawn point.
func (s *Simulation) Spawn() (x, y float64) { return s.spawnX, s.spawnY }

// Tuning returns the active tuning values.
func (s *Simulation) Tuning() Tuning { return s.tun }

// SetTuning swaps tuning between ticks, for live editing.
func (s *Simulation) SetTuning(t Tuning) { s.tun = t }

// JumpBufferedUntil exposes the buffer deadline for the debug overlay.
func (s *Simulation) JumpBufferedUntil() time.Duration { return s.jumpBufferUntil }
