package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/icefall/config"
	"github.com/automoto/icefall/scenes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g, config.Debug.StartLevel)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(interface{ ShouldQuit() bool }); ok && q.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelName := flag.String("level", "frostgate.txt", "start directly on this level, skipping the menu")
	tuningFile := flag.String("tuning", "", "YAML tuning override, watched for live reload")
	debugOverlay := flag.Bool("debug", false, "start with the debug overlay visible")
	skipMenu := flag.Bool("skip-menu", false, "skip the menu")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.StartLevel = *levelName
	config.Debug.Overlay = *debugOverlay
	config.Debug.TuningFile = *tuningFile

	if *tuningFile != "" {
		if err := config.ApplyTuning(*tuningFile); err != nil {
			log.Fatalf("apply tuning: %v", err)
		}
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
