package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	"github.com/automoto/icefall/fonts"
)

const hudMargin = 8

// DrawHUD renders the level name and death counter in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sd := GetSimulation(e)
	if sd == nil {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(color.RGBA{235, 240, 250, 255})
	text.Draw(screen, levelData.CurrentLevel.Name, fonts.Normal(), op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin+16)
	op.ColorScale.ScaleWithColor(color.RGBA{180, 185, 200, 255})
	text.Draw(screen, fmt.Sprintf("deaths %d", sd.Deaths), fonts.Small(), op)
}
