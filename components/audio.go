package components

import (
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// LoopPlayback is the live state of one thruster loop.
type LoopPlayback struct {
	Player  *audio.Player
	Fade    synth.Fader
	Playing bool    // requested state
	Level   float64 // requested intensity
	Broken  bool    // player creation failed, stays silent
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []flight.Cue
	Loops      [flight.LoopCount]LoopPlayback
}

var Audio = donburi.NewComponentType[AudioData]()
