package components

import (
	cfg "github.com/automoto/skyball/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the merged analog values of the frame.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	StickX, StickY float64 // yaw/roll and pitch axes, -1.0 - 1.0
	Booster        float64 // 0.0 - 1.0
	Reverse        float64 // 0.0 - 1.0
}

var Input = donburi.NewComponentType[InputData]()
