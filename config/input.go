package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical flight action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPitchUp
	ActionPitchDown
	ActionYawLeft
	ActionYawRight
	ActionRoll
	ActionBooster
	ActionReverse
	ActionHyperspeed
	ActionBurst
	ActionReset
	ActionSwitchProfile
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputProfile selects a binding table
type InputProfile string

const (
	// ProfileClassic is the legacy action map: East fires hyperspeed.
	ProfileClassic InputProfile = "classic"
	// ProfileModern moves hyperspeed to North and roll to the right shoulder.
	ProfileModern InputProfile = "modern"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Profiles map[InputProfile]map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Analog trigger values below this read as released
	TriggerDeadzone float64
	DefaultProfile  InputProfile
}

// Input is the global input configuration
var Input InputConfig

// Bindings returns the binding table for p, falling back to the default profile.
func (c InputConfig) Bindings(p InputProfile) map[ActionID]InputBinding {
	if b, ok := c.Profiles[p]; ok {
		return b
	}
	return c.Profiles[c.DefaultProfile]
}

// ValidProfile reports whether p names a known binding table.
func (c InputConfig) ValidProfile(p InputProfile) bool {
	_, ok := c.Profiles[p]
	return ok
}

// NextProfile cycles classic -> modern -> classic.
func NextProfile(p InputProfile) InputProfile {
	if p == ProfileClassic {
		return ProfileModern
	}
	return ProfileClassic
}

func init() {
	shared := map[ActionID]InputBinding{
		ActionPitchUp: {
			Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
		},
		ActionPitchDown: {
			Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
		},
		ActionYawLeft: {
			Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		},
		ActionYawRight: {
			Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		},
		ActionBooster: {
			Keys: []ebiten.Key{ebiten.KeyShiftLeft},
			// Right trigger (analog handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontBottomRight,
			},
		},
		ActionReverse: {
			Keys: []ebiten.Key{ebiten.KeyControlLeft},
			// Left trigger (analog handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontBottomLeft,
			},
		},
		ActionBurst: {
			Keys: []ebiten.Key{ebiten.KeySpace},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		ActionReset: {
			Keys: []ebiten.Key{ebiten.KeyR},
			// Back / Share button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
		ActionSwitchProfile: {
			Keys: []ebiten.Key{ebiten.KeyF2},
		},
		ActionToggleDebug: {
			Keys: []ebiten.Key{ebiten.KeyF3},
		},
	}

	classic := withBindings(shared, map[ActionID]InputBinding{
		ActionRoll: {
			Keys: []ebiten.Key{ebiten.KeyQ},
			// Left shoulder
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontTopLeft,
			},
		},
		ActionHyperspeed: {
			Keys: []ebiten.Key{ebiten.KeyH},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightRight,
			},
		},
	})

	modern := withBindings(shared, map[ActionID]InputBinding{
		ActionRoll: {
			Keys: []ebiten.Key{ebiten.KeyE},
			// Right shoulder
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontTopRight,
			},
		},
		ActionHyperspeed: {
			Keys: []ebiten.Key{ebiten.KeyTab},
			// Y / Triangle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightTop,
			},
		},
	})

	Input = InputConfig{
		AnalogDeadzone:  0.25,
		TriggerDeadzone: 0.05,
		DefaultProfile:  ProfileClassic,
		Profiles: map[InputProfile]map[ActionID]InputBinding{
			ProfileClassic: classic,
			ProfileModern:  modern,
		},
	}
}

func withBindings(base, extra map[ActionID]InputBinding) map[ActionID]InputBinding {
	out := make(map[ActionID]InputBinding, len(base)+len(extra))
	for id, b := range base {
		out[id] = b
	}
	for id, b := range extra {
		out[id] = b
	}
	return out
}
