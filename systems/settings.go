package systems

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/logger"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the settings hotkeys: profile switch and debug overlay.
// Must run AFTER UpdateInput.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionSwitchProfile).JustPressed {
		settings.Profile = cfg.NextProfile(settings.Profile)
		logger.L().Info("input profile changed", "profile", string(settings.Profile))
		SaveCurrentSettings(settings)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Profile:   cfg.Input.DefaultProfile,
			SFXVolume: cfg.Audio.DefaultSFXVol,
			Debug:     cfg.Debug.Overlay,
		})
	}
	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
