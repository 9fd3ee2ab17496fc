package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the debug overlay and fullscreen toggles and saves
// them when they change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.Debug = !settings.Debug
		changed = true
	}
	if input.JustPressed(cfg.ActionToggleFullscreen) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the settings component, spawning it from the
// saved file on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	saved, _ := LoadSettings()
	entry := factory.CreateSettings(e, CurrentSettings(saved))
	return components.Settings.Get(entry)
}

// RememberLevel records index as the last level played.
func RememberLevel(e *ecs.ECS, index int) {
	settings := GetOrCreateSettings(e)
	if settings.LastLevel == index {
		return
	}
	settings.LastLevel = index
	SaveCurrentSettings(settings)
}
