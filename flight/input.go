package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ControlInput is one tick of player control values.
type ControlInput struct {
	PitchYaw  mgl64.Vec2 // X = yaw/roll axis, Y = pitch axis, each in [-1,1]
	IsRolling bool
	Booster   float64 // [0,1]
	Reverse   float64 // [0,1]

	// True only for the tick the discrete action fired.
	HyperspeedTriggered bool
	BurstTriggered      bool
}

// InputSource is the input collaborator the controller reads every tick.
// A source that returns nil triggers is polled through the Triggered flags instead.
type InputSource interface {
	Snapshot() ControlInput
	HyperspeedPerformed() *Trigger
	BurstPerformed() *Trigger
}

// Clamped returns the input with axes clamped to [-1,1], booster and
// reverse clamped to [0,1] and NaN read as zero.
func (in ControlInput) Clamped() ControlInput {
	in.PitchYaw = mgl64.Vec2{clamp(in.PitchYaw[0], -1, 1), clamp(in.PitchYaw[1], -1, 1)}
	in.Booster = clamp(in.Booster, 0, 1)
	in.Reverse = clamp(in.Reverse, 0, 1)
	return in
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return mgl64.Clamp(v, lo, hi)
}

// InputState is a latching InputSource. Glue code writes the analog values each
// frame, presses discrete actions as they happen and calls EndTick once the
// frame has been consumed.
type InputState struct {
	current    ControlInput
	hyperspeed Trigger
	burst      Trigger
}

func NewInputState() *InputState {
	return &InputState{}
}

// Set replaces the analog values. Triggered latches of the current tick are kept.
func (s *InputState) Set(in ControlInput) {
	in.HyperspeedTriggered = s.current.HyperspeedTriggered
	in.BurstTriggered = s.current.BurstTriggered
	s.current = in
}

// PressHyperspeed latches the hyperspeed action and notifies subscribers.
func (s *InputState) PressHyperspeed() {
	s.current.HyperspeedTriggered = true
	Fire(&s.hyperspeed)
}

// PressBurst latches the burst action and notifies subscribers.
func (s *InputState) PressBurst() {
	s.current.BurstTriggered = true
	Fire(&s.burst)
}

// EndTick clears the edge-triggered latches.
func (s *InputState) EndTick() {
	s.current.HyperspeedTriggered = false
	s.current.BurstTriggered = false
}

// Valid reports whether s is usable. A nil *InputState is not.
func (s *InputState) Valid() bool {
	return s != nil
}

func (s *InputState) Snapshot() ControlInput {
	return s.current
}

func (s *InputState) HyperspeedPerformed() *Trigger {
	return &s.hyperspeed
}

func (s *InputState) BurstPerformed() *Trigger {
	return &s.burst
}
