package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	cfg "github.com/automoto/icefall/config"
	"github.com/automoto/icefall/tags"
)

// DrawPlayer renders the body as a colored quad with squash/stretch applied
// about its bottom center, so scaling never sinks it into the floor.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	sprite := components.Sprite.Get(playerEntry)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	body := sd.Sim.Body()

	camX, camY := cameraOffset(camera, screen.Bounds().Dx(), screen.Bounds().Dy())

	w := body.W * sprite.ScaleX
	h := body.H * sprite.ScaleY
	x := body.X + body.W/2 - w/2 + camX
	y := body.Y + body.H - h + camY

	vector.DrawFilledRect(screen,
		float32(x), float32(y), float32(w), float32(h), cfg.Tiles.Player, false)

	// A brighter sliver on the facing edge sells the direction.
	eyeW := 2.0
	eyeX := x + 2
	if sprite.FacingRight {
		eyeX = x + w - 2 - eyeW
	}
	vector.DrawFilledRect(screen,
		float32(eyeX), float32(y+3), float32(eyeW), 3, cfg.Tiles.Sky, false)
}
