package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/automoto/icefall/sim"
)

// TuningFile is the on-disk YAML override for movement and timing values.
// Every field is a pointer so absent keys keep the compiled-in defaults.
type TuningFile struct {
	AccelGround    *float64 `yaml:"accel_ground"`
	AccelAir       *float64 `yaml:"accel_air"`
	MaxSpeedGround *float64 `yaml:"max_speed_ground"`
	MaxSpeedAir    *float64 `yaml:"max_speed_air"`
	FrictionGround *float64 `yaml:"friction_ground"`

	SlipFriction     *float64 `yaml:"slip_friction"`
	SlipAccelMult    *float64 `yaml:"slip_accel_mult"`
	SlipMaxSpeedMult *float64 `yaml:"slip_max_speed_mult"`

	Gravity      *float64 `yaml:"gravity"`
	MaxFallSpeed *float64 `yaml:"max_fall_speed"`
	JumpPower    *float64 `yaml:"jump_power"`
	JumpCutMult  *float64 `yaml:"jump_cut_mult"`

	JumpBufferMS *int `yaml:"jump_buffer_ms"`
	CoyoteMS     *int `yaml:"coyote_ms"`
	DecayMS      *int `yaml:"decay_ms"`
}

// ApplyTuning reads path and overlays its values onto the global Player and
// Time configs. Missing file or keys are not errors; malformed YAML is.
func ApplyTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("tuning %s: %w", path, err)
	}

	var f TuningFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}

	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&Player.AccelGround, f.AccelGround)
	setF(&Player.AccelAir, f.AccelAir)
	setF(&Player.MaxSpeedGround, f.MaxSpeedGround)
	setF(&Player.MaxSpeedAir, f.MaxSpeedAir)
	setF(&Player.FrictionGround, f.FrictionGround)
	setF(&Player.SlipFriction, f.SlipFriction)
	setF(&Player.SlipAccelMult, f.SlipAccelMult)
	setF(&Player.SlipMaxSpeedMult, f.SlipMaxSpeedMult)
	setF(&Player.Gravity, f.Gravity)
	setF(&Player.MaxFallSpeed, f.MaxFallSpeed)
	setF(&Player.JumpPower, f.JumpPower)
	setF(&Player.JumpCutMult, f.JumpCutMult)

	if f.JumpBufferMS != nil {
		Time.JumpBuffer = time.Duration(*f.JumpBufferMS) * time.Millisecond
	}
	if f.CoyoteMS != nil {
		Time.CoyoteTime = time.Duration(*f.CoyoteMS) * time.Millisecond
	}
	if f.DecayMS != nil {
		Time.DecayDelay = time.Duration(*f.DecayMS) * time.Millisecond
	}
	return nil
}

// SimTuning is the single mapping point from config to engine tuning.
func SimTuning() sim.Tuning {
	return sim.Tuning{
		AccelGround:    Player.AccelGround,
		AccelAir:       Player.AccelAir,
		FrictionGround: Player.FrictionGround,
		SlipFriction:   Player.SlipFriction,

		SlipAccelMult:    Player.SlipAccelMult,
		SlipMaxSpeedMult: Player.SlipMaxSpeedMult,

		MaxSpeedGround: Player.MaxSpeedGround,
		MaxSpeedAir:    Player.MaxSpeedAir,

		Gravity:      Player.Gravity,
		MaxFallSpeed: Player.MaxFallSpeed,
		JumpPower:    Player.JumpPower,
		JumpCutMult:  Player.JumpCutMult,

		JumpBuffer: Time.JumpBuffer,
		CoyoteTime: Time.CoyoteTime,
		DecayDelay: Time.DecayDelay,
	}
}
