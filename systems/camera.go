package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	"github.com/automoto/icefall/config"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	body := sd.Sim.Body()
	grid := sd.Sim.Grid()

	// Only update look-ahead when the player is moving - freeze offset when idle
	if math.Abs(body.VX) > config.Camera.LookAheadSpeedThreshold {
		dir := 1.0
		if body.VX < 0 {
			dir = -1.0
		}
		targetLookAhead := dir * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	// Target camera position: the body's center with look-ahead
	targetX := body.X + body.W/2 + camera.LookAheadX
	targetY := body.Y + body.H/2

	// Camera bounds: ensure the level always fills the screen
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := grid.PixelWidth()
	levelHeight := grid.PixelHeight()

	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	// A level narrower than the screen pins the camera to its center.
	if maxCameraX < minCameraX {
		minCameraX = levelWidth / 2
		maxCameraX = minCameraX
	}
	if maxCameraY < minCameraY {
		minCameraY = levelHeight / 2
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}

// cameraOffset converts world coordinates to screen coordinates.
func cameraOffset(camera *components.CameraData, screenW, screenH int) (float64, float64) {
	return float64(screenW)/2 - camera.Position.X, float64(screenH)/2 - camera.Position.Y
}
