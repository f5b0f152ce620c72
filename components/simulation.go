package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/icefall/sim"
)

// SimulationData owns the engine: the fixed-step clock and the simulation it
// drives. The ECS shell feeds it held input each frame; everything physical
// happens inside sim.Step.
type SimulationData struct {
	Sim   *sim.Simulation
	Clock *sim.Clock

	Paused bool
	Deaths int

	// Events aggregated across all sim steps run this frame, so a catch-up
	// burst cannot drop a landing or respawn between renders.
	Frame sim.Events
}

var Simulation = donburi.NewComponentType[SimulationData]()
