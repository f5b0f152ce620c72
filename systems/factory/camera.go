package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"

	"github.com/automoto/icefall/archetypes"
	"github.com/automoto/icefall/components"
)

// CreateCamera spawns the camera centered on the spawn point so the first
// frame does not sweep across the level.
func CreateCamera(e *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
	return camera
}
