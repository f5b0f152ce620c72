package components

import (
	cfg "github.com/automoto/icefall/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed is computed by comparing frames; the simulation only
// ever sees held state and derives its own edges per tick.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

// JustPressed reports a press edge for this frame.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

// Held reports whether the action is currently down.
func (d *InputData) Held(a cfg.ActionID) bool {
	return d.Current[a]
}

var Input = donburi.NewComponentType[InputData]()
