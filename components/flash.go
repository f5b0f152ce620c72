package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData is the full-screen respawn flash: a tween from full overlay
// alpha down to zero. Nil tween means no flash active.
type FlashData struct {
	Tween *gween.Tween
	Alpha float32
}

var Flash = donburi.NewComponentType[FlashData]()
