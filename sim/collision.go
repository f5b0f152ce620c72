package sim

import "github.com/automoto/icefall/level"

// collisionEpsilon is the gap left between the body and a wall or ceiling
// after a snap, so the next tick's probe reads the air beside the tile.
// Landing snaps are exact: the resting probe must keep seeing the floor.
const collisionEpsilon = 0.01

// resolveHorizontal probes two points on the leading vertical edge, inset one
// pixel from the corners, and reacts to the first decisive sample: lethal
// tiles respawn, blocking tiles snap the body flush and zero vx. Probe
// direction follows the sign of vx and defaults right at exactly zero.
func (s *Simulation) resolveHorizontal() {
	right := s.body.VX >= 0
	xLead := s.body.X
	if right {
		xLead = s.body.X + s.body.W
	}

	ts := s.grid.TileSize()
	for _, sampleY := range [2]float64{s.body.Y + 1, s.body.Y + s.body.H - 1} {
		c := s.grid.CellAtPosition(xLead, sampleY)
		b := s.grid.TileAt(c.Row, c.Col).Behavior()
		switch {
		case b == level.BehaviorLethal:
			s.respawn()
			return
		case b.Blocks():
			if right {
				s.body.X = float64(c.Col)*ts - s.body.W - collisionEpsilon
			} else {
				s.body.X = float64(c.Col+1)*ts + collisionEpsilon
			}
			s.body.VX = 0
			return
		}
	}
}

// resolveVertical mirrors the horizontal pass along Y. It is the single
// source of truth for ground contact: OnGround is cleared up front and only a
// downward blocking hit sets it, along with the slip flag, the coyote
// deadline, and decay arming for cracked ice. Probe direction defaults down
// at exactly zero vy.
func (s *Simulation) resolveVertical() {
	s.body.OnGround = false

	down := s.body.VY >= 0
	yLead := s.body.Y
	if down {
		yLead = s.body.Y + s.body.H
	}

	ts := s.grid.TileSize()
	for _, sampleX := range [2]float64{s.body.X + 1, s.body.X + s.body.W - 1} {
		c := s.grid.CellAtPosition(sampleX, yLead)
		kind := s.grid.TileAt(c.Row, c.Col)
		b := kind.Behavior()
		switch {
		case b == level.BehaviorLethal:
			s.respawn()
			return
		case b.Blocks():
			if down {
				s.body.Y = float64(c.Row)*ts - s.body.H
				s.body.VY = 0
				s.body.OnGround = true
				s.body.OnSlip = b == level.BehaviorSlippery
				s.body.CoyoteUntil = s.now + s.tun.CoyoteTime
				if b == level.BehaviorCrumbling {
					s.grid.ArmDecay(c.Row, c.Col, s.now, s.tun.DecayDelay)
				}
			} else {
				s.body.Y = float64(c.Row+1)*ts + collisionEpsilon
				s.body.VY = 0
			}
			return
		}
	}
}

// respawn resets the body to the spawn point with zero velocity, airborne.
// Slip state re-derives next tick; decay timers and the jump buffer are left
// alone so they persist or expire on their own.
func (s *Simulation) respawn() {
	s.body.X = s.spawnX
	s.body.Y = s.spawnY
	s.body.VX = 0
	s.body.VY = 0
	s.body.OnGround = false
	s.events.Respawned = true
}
