package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	cfg "github.com/automoto/icefall/config"
	"github.com/automoto/icefall/tags"
)

// UpdateSprite keeps the player's cosmetic state in step with the body:
// facing follows horizontal velocity, and jump/land squash-stretch scales
// lerp back toward normal each frame.
func UpdateSprite(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	sprite := components.Sprite.Get(playerEntry)

	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	body := sd.Sim.Body()

	if body.VX > 1 {
		sprite.FacingRight = true
	} else if body.VX < -1 {
		sprite.FacingRight = false
	}

	if sd.Frame.Jumped {
		sprite.ScaleX = cfg.Effects.JumpScaleX
		sprite.ScaleY = cfg.Effects.JumpScaleY
	}
	if sd.Frame.Landed {
		sprite.ScaleX = cfg.Effects.LandScaleX
		sprite.ScaleY = cfg.Effects.LandScaleY
	}

	sprite.ScaleX += (1 - sprite.ScaleX) * cfg.Effects.ScaleLerp
	sprite.ScaleY += (1 - sprite.ScaleY) * cfg.Effects.ScaleLerp
}
