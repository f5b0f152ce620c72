package sim

import "time"

// Tuning holds every movement and timing knob. Units are pixels, seconds and
// px/s or px/s^2; durations are logical simulation time.
type Tuning struct {
	AccelGround    float64 // px/s^2 while grounded
	AccelAir       float64 // px/s^2 while airborne
	FrictionGround float64 // px/s^2 toward zero, grounded + no input
	SlipFriction   float64 // px/s^2 toward zero on ice, much lower

	SlipAccelMult    float64 // scales ground accel on ice
	SlipMaxSpeedMult float64 // scales ground speed cap on ice, <= 1

	MaxSpeedGround float64 // px/s
	MaxSpeedAir    float64 // px/s

	Gravity      float64 // px/s^2, +Y is down
	MaxFallSpeed float64 // px/s terminal velocity
	JumpPower    float64 // px/s initial upward speed
	JumpCutMult  float64 // scales upward vy on early jump release

	JumpBuffer time.Duration // press-before-landing grace
	CoyoteTime time.Duration // jump-after-ledge grace
	DecayDelay time.Duration // landing-to-crumble delay for cracked ice
}
