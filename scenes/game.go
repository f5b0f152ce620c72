package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	cfg "github.com/automoto/icefall/config"
	"github.com/automoto/icefall/systems"
	"github.com/automoto/icefall/systems/factory"
	"github.com/automoto/icefall/tuning"
	"github.com/automoto/icefall/ui"
)

// GameScene runs one level: the fixed-step simulation inside an ECS shell,
// with a pause overlay and live tuning reload in dev mode.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	pauseUI      *ui.PauseUI
	watcher      *tuning.Watcher
	once         sync.Once
}

func NewGameScene(sc SceneChanger, levelName string) *GameScene {
	return &GameScene{sceneChanger: sc, levelName: levelName}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	gs.drainTuning()
	gs.ecs.Update()

	sd := systems.GetSimulation(gs.ecs)
	if sd == nil {
		return
	}

	input, ok := components.Input.First(gs.ecs.World)
	if ok {
		in := components.Input.Get(input)
		if in.JustPressed(cfg.ActionPause) {
			gs.togglePause(sd)
		}
		if in.JustPressed(cfg.ActionRestart) && !sd.Paused {
			gs.changeScene(NewGameScene(gs.sceneChanger, gs.levelName))
			return
		}
	}

	if sd.Paused {
		gs.pauseUI.UI.Update()
		return
	}

	// Walking past the right edge finishes the level.
	body := sd.Sim.Body()
	if body.X > sd.Sim.Grid().PixelWidth() {
		gs.advance()
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	sd := systems.GetSimulation(gs.ecs)
	if sd != nil && sd.Paused {
		gs.pauseUI.UI.Draw(screen)
	}
}

func (gs *GameScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateSimulation)
	e.AddSystem(systems.UpdateSprite)
	e.AddSystem(systems.UpdateFlash)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawFlash)

	simEntry := factory.CreateSimulation(e, gs.levelName)
	sd := components.Simulation.Get(simEntry)
	x, y := sd.Sim.Spawn()
	factory.CreateCamera(e, x, y)
	factory.CreatePlayer(e)

	gs.pauseUI = ui.NewPauseUI(
		func() { gs.togglePause(sd) },
		func() { gs.changeScene(NewGameScene(gs.sceneChanger, gs.levelName)) },
		func() { gs.changeScene(NewMenuScene(gs.sceneChanger)) },
	)

	if cfg.Debug.TuningFile != "" {
		w, err := tuning.NewWatcher(cfg.Debug.TuningFile)
		if err != nil {
			log.Printf("tuning watch disabled: %v", err)
		} else {
			gs.watcher = w
		}
	}

	gs.ecs = e
	systems.ResetFrameTimer()
}

func (gs *GameScene) togglePause(sd *components.SimulationData) {
	sd.Paused = !sd.Paused
	if !sd.Paused {
		// Time spent paused must not arrive as a catch-up burst.
		systems.ResetFrameTimer()
		sd.Clock.Reset()
	}
}

// drainTuning applies pending tuning-file changes to the running simulation.
func (gs *GameScene) drainTuning() {
	if gs.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-gs.watcher.Events:
			if !ok {
				gs.watcher = nil
				return
			}
			if err := cfg.ApplyTuning(path); err != nil {
				log.Printf("tuning reload: %v", err)
				continue
			}
			if sd := systems.GetSimulation(gs.ecs); sd != nil {
				sd.Sim.SetTuning(cfg.SimTuning())
				log.Printf("tuning reloaded from %s", path)
			}
		case err, ok := <-gs.watcher.Errors:
			if ok && err != nil {
				log.Printf("tuning watch: %v", err)
			}
		default:
			return
		}
	}
}

func (gs *GameScene) advance() {
	sd := systems.GetSimulation(gs.ecs)
	levelEntry, ok := components.Level.First(gs.ecs.World)
	if !ok || sd == nil {
		return
	}
	levelData := components.Level.Get(levelEntry)

	next := levelData.LevelIndex + 1
	if next >= len(levelData.Names) {
		gs.changeScene(NewMenuScene(gs.sceneChanger))
		return
	}
	gs.changeScene(NewGameScene(gs.sceneChanger, levelData.Names[next]))
}

func (gs *GameScene) changeScene(scene interface{}) {
	if gs.watcher != nil {
		_ = gs.watcher.Close()
		gs.watcher = nil
	}
	gs.sceneChanger.ChangeScene(scene)
}
