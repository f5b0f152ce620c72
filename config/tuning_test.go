package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTuningOverlaysOnlyPresentKeys(t *testing.T) {
	origPlayer := Player
	origTime := Time
	t.Cleanup(func() {
		Player = origPlayer
		Time = origTime
	})

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"gravity: 1200\nslip_friction: 40\ncoyote_ms: 80\n"), 0o644))

	require.NoError(t, ApplyTuning(path))

	assert.Equal(t, 1200.0, Player.Gravity)
	assert.Equal(t, 40.0, Player.SlipFriction)
	assert.Equal(t, 80*time.Millisecond, Time.CoyoteTime)

	// Absent keys keep their defaults.
	assert.Equal(t, origPlayer.JumpPower, Player.JumpPower)
	assert.Equal(t, origTime.JumpBuffer, Time.JumpBuffer)
}

func TestApplyTuningMissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, ApplyTuning(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestApplyTuningRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity: [oops"), 0o644))
	assert.Error(t, ApplyTuning(path))
}

func TestSimTuningMirrorsConfig(t *testing.T) {
	tun := SimTuning()
	assert.Equal(t, Player.Gravity, tun.Gravity)
	assert.Equal(t, Player.SlipFriction, tun.SlipFriction)
	assert.Equal(t, Time.DecayDelay, tun.DecayDelay)
	assert.LessOrEqual(t, tun.SlipMaxSpeedMult, 1.0)
	assert.Less(t, tun.SlipFriction, tun.FrictionGround,
		"ice must stop the player slower than rock")
}
