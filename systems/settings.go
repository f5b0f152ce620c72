package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/icefall/archetypes"
	"github.com/automoto/icefall/components"
	cfg "github.com/automoto/icefall/config"
)

// UpdateSettings handles the debug-overlay toggle.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if input.JustPressed(cfg.ActionToggleDebug) {
		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
	}
}

func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.Set(entry, &components.SettingsData{Debug: cfg.Debug.Overlay})
	}
	return components.Settings.Get(entry)
}
