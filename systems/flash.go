package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	cfg "github.com/automoto/icefall/config"
	"github.com/automoto/icefall/tags"
)

// UpdateFlash starts the respawn flash and advances the fade tween.
func UpdateFlash(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(playerEntry)

	sd := GetSimulation(e)
	if sd == nil {
		return
	}

	if sd.Frame.Respawned {
		maxAlpha := float32(cfg.Effects.FlashColor.A)
		flash.Tween = gween.New(maxAlpha, 0, cfg.Effects.FlashDuration, ease.OutQuad)
	}

	if flash.Tween != nil {
		// gween advances in seconds; one frame at the ebiten tick rate.
		alpha, done := flash.Tween.Update(1.0 / float32(ebiten.TPS()))
		flash.Alpha = alpha
		if done {
			flash.Tween = nil
			flash.Alpha = 0
		}
	}
}

// DrawFlash renders the full-screen respawn overlay.
func DrawFlash(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(playerEntry)
	if flash.Alpha <= 0 {
		return
	}

	c := cfg.Effects.FlashColor
	overlay := color.RGBA{c.R, c.G, c.B, uint8(flash.Alpha)}
	vector.DrawFilledRect(screen, 0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), overlay, false)
}
