package components

import (
	cfg "github.com/automoto/skyball/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores the player settings, persisted on change.
type SettingsData struct {
	Profile   cfg.InputProfile
	SFXVolume float64 // 0.0, 0.25, 0.50, 0.75, 1.0
	Muted     bool
	Debug     bool // overlay visible, not persisted
}

var Settings = donburi.NewComponentType[SettingsData]()
