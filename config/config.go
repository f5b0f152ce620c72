package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
	Scale  int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Body size (pixels)
	Width  float64
	Height float64

	// Movement (px/s and px/s^2)
	AccelGround    float64
	AccelAir       float64
	MaxSpeedGround float64
	MaxSpeedAir    float64
	FrictionGround float64

	// Ice handling
	SlipFriction     float64 // much lower than FrictionGround
	SlipAccelMult    float64 // scales ground accel on ice
	SlipMaxSpeedMult float64 // scales ground speed cap on ice, keep <= 1

	// Vertical
	Gravity      float64
	MaxFallSpeed float64
	JumpPower    float64
	JumpCutMult  float64 // applied to upward vy on early jump release
}

// TimeConfig contains simulation timing configuration
type TimeConfig struct {
	TickRate   int           // logical ticks per second
	MaxCatchUp time.Duration // accumulator clamp after a hitch
	JumpBuffer time.Duration // press-before-landing grace
	CoyoteTime time.Duration // jump-after-ledge grace
	DecayDelay time.Duration // landing-to-crumble delay for cracked ice
}

// Step returns the fixed simulation step duration.
func (t TimeConfig) Step() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
	ShakeIntensity          float64 // Respawn shake offset in pixels
	ShakeDuration           int     // Respawn shake length in frames
}

// EffectsConfig contains squash/stretch and respawn flash configuration
type EffectsConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	ScaleLerp  float64 // how fast scale returns to normal

	FlashDuration float32 // respawn flash fade, seconds
	FlashColor    color.RGBA
}

// TileColors is the draw palette, indexed by tile kind name.
type TileColors struct {
	Solid    color.RGBA
	Kill     color.RGBA
	Slip     color.RGBA
	Unstable color.RGBA
	Player   color.RGBA
	Sky      color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	StartLevel string // Level name to start on (with SkipMenu)
	Overlay    bool   // Start with the debug overlay visible
	TuningFile string // YAML tuning override path ("" = disabled)
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Time TimeConfig
var Camera CameraConfig
var Effects EffectsConfig
var Tiles TileColors
var Debug DebugConfig

func init() {
	C = &Config{
		Title:  "Icefall",
		Width:  640,
		Height: 360,
		Scale:  2,
	}

	// Player Config. Speeds are tuned so one tick at 60Hz moves well under a
	// 16px tile, which the two-point collision probe relies on.
	Player = PlayerConfig{
		Width:  12,
		Height: 14,

		AccelGround:    900.0,
		AccelAir:       480.0,
		MaxSpeedGround: 140.0,
		MaxSpeedAir:    130.0,
		FrictionGround: 1100.0,

		SlipFriction:     90.0,
		SlipAccelMult:    0.25,
		SlipMaxSpeedMult: 1.0,

		Gravity:      900.0,
		MaxFallSpeed: 280.0,
		JumpPower:    260.0,
		JumpCutMult:  0.45,
	}

	Time = TimeConfig{
		TickRate:   60,
		MaxCatchUp: 250 * time.Millisecond,
		JumpBuffer: 150 * time.Millisecond,
		CoyoteTime: 100 * time.Millisecond,
		DecayDelay: 500 * time.Millisecond,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.12,
		LookAheadDistanceX:      48.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 10.0,
		ShakeIntensity:          4.0,
		ShakeDuration:           18,
	}

	Effects = EffectsConfig{
		JumpScaleX: 0.75,
		JumpScaleY: 1.25,
		LandScaleX: 1.3,
		LandScaleY: 0.7,
		ScaleLerp:  0.2,

		FlashDuration: 0.35,
		FlashColor:    color.RGBA{220, 240, 255, 200},
	}

	Tiles = TileColors{
		Solid:    color.RGBA{90, 96, 110, 255},
		Kill:     color.RGBA{210, 70, 70, 255},
		Slip:     color.RGBA{150, 210, 240, 255},
		Unstable: color.RGBA{190, 220, 235, 255},
		Player:   color.RGBA{255, 170, 60, 255},
		Sky:      color.RGBA{18, 22, 34, 255},
	}
}
