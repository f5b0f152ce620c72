package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/archetypes"
	"github.com/automoto/icefall/components"
)

// CreatePlayer spawns the cosmetic player entity. The body itself lives in
// the simulation; this entity carries facing, squash/stretch and the respawn
// flash.
func CreatePlayer(e *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(e)
	components.Sprite.Set(player, &components.SpriteData{
		FacingRight: true,
		ScaleX:      1,
		ScaleY:      1,
	})
	components.Flash.Set(player, &components.FlashData{})
	return player
}
