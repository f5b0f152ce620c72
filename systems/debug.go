package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	"github.com/automoto/icefall/fonts"
)

// DrawDebug renders the F1 overlay: grid lines, the body AABB, the collision
// probe points, and a tuning/state readout.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

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
	grid := sd.Sim.Grid()

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(camera, width, height)
	ts := grid.TileSize()

	// Grid lines over the viewport.
	gridColor := color.RGBA{255, 255, 255, 24}
	for col := 0; col <= grid.Cols(); col++ {
		x := float32(float64(col)*ts + camX)
		vector.StrokeLine(screen, x, float32(camY), x, float32(grid.PixelHeight()+camY), 1, gridColor, false)
	}
	for row := 0; row <= grid.Rows(); row++ {
		y := float32(float64(row)*ts + camY)
		vector.StrokeLine(screen, float32(camX), y, float32(grid.PixelWidth()+camX), y, 1, gridColor, false)
	}

	// Body AABB outline.
	bx, by := float32(body.X+camX), float32(body.Y+camY)
	bw, bh := float32(body.W), float32(body.H)
	boxColor := color.RGBA{0, 255, 255, 255}
	vector.StrokeRect(screen, bx, by, bw, bh, 1, boxColor, false)

	// Collision probe points: leading-edge samples for both axes.
	probeColor := color.RGBA{255, 80, 255, 255}
	xLead := body.X
	if body.VX >= 0 {
		xLead = body.X + body.W
	}
	yLead := body.Y
	if body.VY >= 0 {
		yLead = body.Y + body.H
	}
	for _, p := range [][2]float64{
		{xLead, body.Y + 1}, {xLead, body.Y + body.H - 1},
		{body.X + 1, yLead}, {body.X + body.W - 1, yLead},
	} {
		vector.DrawFilledCircle(screen, float32(p[0]+camX), float32(p[1]+camY), 1.5, probeColor, false)
	}

	// State readout.
	now := sd.Sim.Now()
	buffered := sd.Sim.JumpBufferedUntil() > now
	lines := []string{
		fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f", body.X, body.Y, body.VX, body.VY),
		fmt.Sprintf("ground %v slip %v", body.OnGround, body.OnSlip),
		fmt.Sprintf("coyote %v buffered %v", now <= body.CoyoteUntil, buffered),
		fmt.Sprintf("decays %d pending %v", grid.ActiveDecays(), sd.Clock.Pending()),
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(height-58+i*12))
		op.ColorScale.ScaleWithColor(color.RGBA{160, 255, 160, 255})
		text.Draw(screen, line, fonts.Small(), op)
	}
}
