package systems

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	cfg "github.com/automoto/icefall/config"
	"github.com/automoto/icefall/level"
)

// DrawLevel renders the tile grid as flat colored quads, culled to the
// viewport. Cracked ice that has been stood on fades toward the sky color as
// its decay deadline approaches.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Tiles.Sky)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	grid := sd.Sim.Grid()
	now := sd.Sim.Now()
	decayDelay := sd.Sim.Tuning().DecayDelay

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(camera, width, height)
	ts := grid.TileSize()

	// Visible cell range, one tile of padding.
	firstCol := int((camera.Position.X - float64(width)/2) / ts)
	lastCol := int((camera.Position.X+float64(width)/2)/ts) + 1
	firstRow := int((camera.Position.Y - float64(height)/2) / ts)
	lastRow := int((camera.Position.Y+float64(height)/2)/ts) + 1

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			kind := grid.TileAt(row, col)
			if kind == level.Empty {
				continue
			}

			c := tileColor(kind)
			if kind == level.Unstable {
				if deadline, armed := grid.DecayDeadline(row, col); armed {
					c = fadeToward(c, cfg.Tiles.Sky, decayProgress(deadline, now, decayDelay))
				}
			}

			vector.DrawFilledRect(screen,
				float32(float64(col)*ts+camX), float32(float64(row)*ts+camY),
				float32(ts), float32(ts), c, false)
		}
	}
}

func tileColor(kind level.Kind) color.RGBA {
	switch kind {
	case level.Solid:
		return cfg.Tiles.Solid
	case level.Kill:
		return cfg.Tiles.Kill
	case level.Slip:
		return cfg.Tiles.Slip
	case level.Unstable:
		return cfg.Tiles.Unstable
	default:
		return cfg.Tiles.Sky
	}
}

// decayProgress maps an armed deadline to [0,1]: 0 freshly armed, 1 about to
// crumble.
func decayProgress(deadline, now, delay time.Duration) float64 {
	if delay <= 0 {
		return 1
	}
	p := 1 - float64(deadline-now)/float64(delay)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func fadeToward(from, to color.RGBA, t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{lerp(from.R, to.R), lerp(from.G, to.G), lerp(from.B, to.B), 255}
}
