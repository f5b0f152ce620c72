package components

import "github.com/yohamta/donburi"

// SpriteData is the player's visual state: facing and the squash/stretch
// scale used for jump and landing feel. Purely cosmetic; the body in the
// simulation is the collision truth.
type SpriteData struct {
	FacingRight bool

	ScaleX, ScaleY float64 // current scale, lerps back to 1
}

var Sprite = donburi.NewComponentType[SpriteData]()
