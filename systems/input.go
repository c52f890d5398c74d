package systems

import (
	"math"
	"strings"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input for the active binding profile and updates the
// Input component. Must run BEFORE UpdateShipInput in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings(settings.Profile) {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	stickX, stickY, booster, reverse, analogGpID, analogUsed := getAnalogState(gamepadIDs)
	if analogUsed {
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	// Keyboard steering is digital and overrides a centered stick
	input.StickX = digitalAxis(stickX, input.Current[cfg.ActionYawLeft], input.Current[cfg.ActionYawRight])
	input.StickY = digitalAxis(stickY, input.Current[cfg.ActionPitchUp], input.Current[cfg.ActionPitchDown])
	input.Booster = pressedOr(booster, keyboardPressed(settings.Profile, cfg.ActionBooster))
	input.Reverse = pressedOr(reverse, keyboardPressed(settings.Profile, cfg.ActionReverse))

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// digitalAxis returns -1 or 1 for a held key, otherwise the analog value.
func digitalAxis(analog float64, negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	}
	return analog
}

func pressedOr(analog float64, pressed bool) float64 {
	if pressed {
		return 1
	}
	return analog
}

// keyboardPressed reports whether any keyboard key bound to id is held. Trigger
// buttons are read as analog values instead.
func keyboardPressed(profile cfg.InputProfile, id cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings(profile)[id].Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogState reads the left stick and both triggers from the first
// gamepad that reports input outside the deadzones.
func getAnalogState(gamepads []ebiten.GamepadID) (x, y, booster, reverse float64, activeGpID ebiten.GamepadID, used bool) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		gx := stickAxis(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal))
		gy := stickAxis(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical))
		gb := triggerValue(ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomRight))
		gr := triggerValue(ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomLeft))

		if gx != 0 || gy != 0 || gb != 0 || gr != 0 {
			return gx, gy, gb, gr, gpID, true
		}
	}
	return 0, 0, 0, 0, 0, false
}

// stickAxis zeroes values inside the deadzone and rescales the rest to [-1,1].
func stickAxis(v float64) float64 {
	dz := cfg.Input.AnalogDeadzone
	a := math.Abs(v)
	if a < dz {
		return 0
	}
	return math.Copysign(math.Min(1, (a-dz)/(1-dz)), v)
}

// triggerValue zeroes a resting trigger and saturates a fully pulled one, so
// strafing can be reached on hardware that never reports exactly 1.
func triggerValue(v float64) float64 {
	dz := cfg.Input.TriggerDeadzone
	switch {
	case v < dz:
		return 0
	case v > 1-dz:
		return 1
	}
	return v
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
