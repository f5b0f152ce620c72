package factory

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/archetypes"
	"github.com/automoto/icefall/components"
	cfg "github.com/automoto/icefall/config"
	"github.com/automoto/icefall/level"
	"github.com/automoto/icefall/levels"
	"github.com/automoto/icefall/sim"
)

// CreateSimulation loads the level, builds the engine around it and spawns
// the entity carrying both.
func CreateSimulation(e *ecs.ECS, levelName string) *donburi.Entry {
	lvl, err := levels.Load(levelName)
	if err != nil {
		log.Printf("load level %s failed, falling back to %s: %v",
			levelName, levels.Names()[0], err)
		lvl = levels.MustLoad(levels.Names()[0])
	}
	return createSimulationFor(e, lvl)
}

func createSimulationFor(e *ecs.ECS, lvl *level.Level) *donburi.Entry {
	entry := archetypes.Simulation.Spawn(e)

	step := cfg.Time.Step()
	s := sim.New(lvl.Grid, cfg.SimTuning(), step,
		lvl.SpawnX, lvl.SpawnY, cfg.Player.Width, cfg.Player.Height)

	clock := sim.NewClock(step)
	clock.SetMaxCatchUp(cfg.Time.MaxCatchUp)

	components.Simulation.Set(entry, &components.SimulationData{
		Sim:   s,
		Clock: clock,
	})
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: lvl,
		LevelIndex:   levelIndex(lvl.Name),
		Names:        levels.Names(),
	})

	log.Printf("Loaded level %s: %dx%d, spawn (%.0f,%.0f)",
		lvl.Name, lvl.Grid.Cols(), lvl.Grid.Rows(), lvl.SpawnX, lvl.SpawnY)
	return entry
}

func levelIndex(name string) int {
	for i, n := range levels.Names() {
		if trimExt(n) == name {
			return i
		}
	}
	return 0
}

func trimExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return name
}
