package sim

import "github.com/automoto/icefall/gamemath"

// Step advances the simulation by exactly one fixed tick. Stage order matters:
// steering happens against the previous tick's ground state, collisions
// re-derive it, and the post-collision stages re-apply ground handling so a
// tick that lands steers and clamps like a grounded tick.
func (s *Simulation) Step(in Input) {
	s.now += s.step
	s.events = Events{}

	// --- Input edges (press arms the jump buffer, release cuts the jump) ---
	pressed := in.Jump && !s.prevJump
	released := !in.Jump && s.prevJump
	s.prevJump = in.Jump
	if released && s.body.VY < 0 {
		s.body.VY *= s.tun.JumpCutMult
	}
	if pressed {
		s.jumpBufferUntil = s.now + s.tun.JumpBuffer
	}

	// --- Slip carry-over ---
	// Ground contact is re-derived below; steering uses last tick's traction.
	prevOnSlip := s.body.OnSlip
	s.body.OnSlip = false

	// --- Horizontal steering ---
	axis := 0.0
	if in.Left {
		axis--
	}
	if in.Right {
		axis++
	}
	grounded := s.body.OnGround
	if axis != 0 {
		accel := s.tun.AccelAir
		maxSpeed := s.tun.MaxSpeedAir
		if grounded {
			accel = s.tun.AccelGround
			if prevOnSlip {
				accel *= s.tun.SlipAccelMult
			}
			maxSpeed = s.tun.MaxSpeedGround
		}
		s.body.VX = gamemath.Approach(s.body.VX, axis*maxSpeed, accel*s.dt)
	}

	// --- Jump (buffered press + ground or coyote contact) ---
	if s.jumpBufferUntil > s.now && (s.body.OnGround || s.now <= s.body.CoyoteUntil) {
		s.body.VY = -s.tun.JumpPower
		s.body.OnGround = false
		s.jumpBufferUntil = 0
		s.body.CoyoteUntil = 0
		s.events.Jumped = true
	}

	// --- Gravity ---
	s.body.VY += s.tun.Gravity * s.dt
	if s.body.VY > s.tun.MaxFallSpeed {
		s.body.VY = s.tun.MaxFallSpeed
	}

	// --- Integrate and resolve, horizontal first ---
	s.body.X += s.body.VX * s.dt
	s.resolveHorizontal()

	wasGrounded := s.body.OnGround
	s.body.Y += s.body.VY * s.dt
	s.resolveVertical()
	if s.body.OnGround && !wasGrounded {
		s.events.Landed = true
	}

	// --- Post-collision ground handling ---
	// The cap and steering are re-applied with the tick's real ground state so
	// a same-tick landing picks up slip handling immediately.
	if s.body.OnGround {
		speedCap := s.tun.MaxSpeedGround
		if s.body.OnSlip {
			speedCap *= s.tun.SlipMaxSpeedMult
		}
		s.body.VX = gamemath.ClampSpeed(s.body.VX, speedCap)

		if axis != 0 {
			accel := s.tun.AccelGround
			if s.body.OnSlip {
				accel *= s.tun.SlipAccelMult
			}
			s.body.VX = gamemath.Approach(s.body.VX, axis*s.tun.MaxSpeedGround, accel*s.dt)
			s.body.VX = gamemath.ClampSpeed(s.body.VX, speedCap)
		}

		// --- Friction (ground only, no input) ---
		if axis == 0 {
			friction := s.tun.FrictionGround
			if s.body.OnSlip {
				friction = s.tun.SlipFriction
			}
			s.body.VX = gamemath.ApplyFriction(s.body.VX, friction*s.dt)
		}
	}

	// --- Crumble sweep ---
	s.events.Broke += s.grid.SweepDecay(s.now)
}
