package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/components"
	cfg "github.com/automoto/icefall/config"
	"github.com/automoto/icefall/sim"
)

// lastFrame is the wall-clock time of the previous update, feeding real frame
// elapsed time into the fixed-step clock so simulation speed is independent
// of the display's frame cadence.
var lastFrame time.Time

// ResetFrameTimer drops accumulated wall time. Call on scene entry and on
// unpause so a long pause does not arrive as a catch-up burst.
func ResetFrameTimer() {
	lastFrame = time.Now()
}

// UpdateSimulation drains due fixed steps from the clock and runs the engine
// that many ticks with the current held-input snapshot. Events from all steps
// in the frame are aggregated so renderers never miss a landing or respawn
// that happened mid-burst.
func UpdateSimulation(e *ecs.ECS) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sd := components.Simulation.Get(entry)

	now := time.Now()
	if lastFrame.IsZero() {
		lastFrame = now
	}
	elapsed := now.Sub(lastFrame)
	lastFrame = now

	sd.Frame = sim.Events{}
	if sd.Paused {
		sd.Clock.Reset()
		return
	}

	input := getOrCreateInput(e)
	held := sim.Input{
		Left:  input.Held(cfg.ActionMoveLeft),
		Right: input.Held(cfg.ActionMoveRight),
		Jump:  input.Held(cfg.ActionJump),
	}

	steps := sd.Clock.Tick(elapsed)
	for i := 0; i < steps; i++ {
		sd.Sim.Step(held)
		ev := sd.Sim.Events()
		sd.Frame.Jumped = sd.Frame.Jumped || ev.Jumped
		sd.Frame.Landed = sd.Frame.Landed || ev.Landed
		sd.Frame.Respawned = sd.Frame.Respawned || ev.Respawned
		sd.Frame.Broke += ev.Broke
	}

	if sd.Frame.Respawned {
		sd.Deaths++
		TriggerScreenShake(e, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
	}
}

// GetSimulation returns the simulation data, or nil before the factory ran.
func GetSimulation(e *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}
