package config

import (
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/synth"
)

// LoopConfig describes one thruster loop and how its intensity maps to volume.
type LoopConfig struct {
	Drone     synth.Drone
	Volume    float64
	MinVolume float64 // volume at intensity 0 while playing
	FadeIn    float64 // seconds
	FadeOut   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Cues          map[flight.Cue]synth.Sweep
	Loops         [flight.LoopCount]LoopConfig
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.75,
		Cues: map[flight.Cue]synth.Sweep{
			flight.CueChargeDown:          {StartHz: 660, EndHz: 110, Seconds: 0.6, Volume: 0.5, Attack: 0.01, Release: 0.3},
			flight.CueBurstThruster:       {StartHz: 180, EndHz: 60, Seconds: 0.25, Volume: 0.7, Attack: 0.005, Release: 0.15},
			flight.CueHyperspeedPreparing: {StartHz: 220, EndHz: 880, Seconds: 1.0, Volume: 0.5, Attack: 0.05, Release: 0.1},
		},
		Loops: [flight.LoopCount]LoopConfig{
			flight.LoopBooster:    {Drone: synth.Drone{Hz: 90, Harmonic: 180}, Volume: 0.35, MinVolume: 0.1, FadeIn: 0.1, FadeOut: 0.25},
			flight.LoopChargeUp:   {Drone: synth.Drone{Hz: 330, Harmonic: 495}, Volume: 0.25, MinVolume: 0.05, FadeIn: 0.05, FadeOut: 0.2},
			flight.LoopHyperspeed: {Drone: synth.Drone{Hz: 55, Harmonic: 110}, Volume: 0.5, MinVolume: 0.5, FadeIn: 0.4, FadeOut: 0.6},
		},
	}
}
