package systems

import (
	"encoding/json"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/logger"
	"github.com/pkg/errors"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Profile   string  `json:"profile"`
	SFXVolume float64 `json:"sfxVolume"`
	Muted     bool    `json:"muted"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return errors.Wrap(err, "open settings storage")
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	if len(data) == 0 {
		return nil, nil
	}
	return DecodeSettings(data)
}

// DecodeSettings parses stored settings, dropping values that are out of range.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrap(err, "parse saved settings")
	}
	if !cfg.Input.ValidProfile(cfg.InputProfile(settings.Profile)) {
		settings.Profile = string(cfg.Input.DefaultProfile)
	}
	settings.SFXVolume = clamp01(settings.SFXVolume)
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "serialize settings")
	}
	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		return errors.Wrap(err, "save settings")
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Profile:   string(s.Profile),
		SFXVolume: s.SFXVolume,
		Muted:     s.Muted,
	}
	if err := SaveSettings(saved); err != nil {
		logger.L().Warn("could not save settings", "err", err)
	}
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Profile = cfg.InputProfile(saved.Profile)
	settings.SFXVolume = saved.SFXVolume
	settings.Muted = saved.Muted

	SetSFXVolume(e, saved.SFXVolume)
	SetMuted(e, saved.Muted)
}
