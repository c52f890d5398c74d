package systems

import (
	"bytes"
	"sync"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/flight"
	"github.com/automoto/skyball/logger"
	"github.com/automoto/skyball/synth"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalCuePCM       map[flight.Cue][]byte
	globalLoopPCM      [flight.LoopCount][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders every sound (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalCuePCM = make(map[flight.Cue][]byte, len(cfg.Audio.Cues))
		for cue, sweep := range cfg.Audio.Cues {
			globalCuePCM[cue] = sweep.PCM(cfg.Audio.SampleRate)
		}
		for loop, lc := range cfg.Audio.Loops {
			globalLoopPCM[loop] = lc.Drone.PCM(cfg.Audio.SampleRate)
		}
	})
}

// audioSink queues controller sound requests on the ECS audio singleton.
type audioSink struct {
	ecs *ecs.ECS
}

// NewAudioSink returns the flight.AudioSink that plays through UpdateAudio.
func NewAudioSink(e *ecs.ECS) flight.AudioSink {
	return audioSink{ecs: e}
}

func (s audioSink) PlayOneShot(cue flight.Cue) {
	PlaySFX(s.ecs, cue)
}

func (s audioSink) SetLoop(loop flight.Loop, playing bool, intensity float64) {
	if loop < 0 || loop >= flight.LoopCount {
		return
	}
	l := &GetOrCreateAudio(s.ecs).Loops[loop]
	l.Playing = playing
	l.Level = intensity
}

// UpdateAudio plays pending cues and fades the thruster loops.
// Runs first so requests queued last frame play this frame.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	audioData := GetOrCreateAudio(e)

	master := audioData.SFXVolume
	if audioData.Muted {
		master = 0
	}

	for _, cue := range audioData.PendingSFX {
		playCue(cue, master)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	dt := 1 / float64(ebiten.TPS())
	for i := range audioData.Loops {
		updateLoop(flight.Loop(i), &audioData.Loops[i], master, dt)
	}
}

func playCue(cue flight.Cue, volume float64) {
	if volume <= 0 {
		return
	}
	pcm, ok := globalCuePCM[cue]
	if !ok || len(pcm) == 0 {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}

func updateLoop(loop flight.Loop, l *components.LoopPlayback, master, dt float64) {
	lc := cfg.Audio.Loops[loop]
	fade := lc.FadeOut
	if l.Playing {
		fade = lc.FadeIn
	}
	l.Fade.Set(l.Playing, fade)
	gain := l.Fade.Update(dt)

	if l.Fade.Silent() || l.Broken {
		if l.Player != nil && l.Player.IsPlaying() {
			l.Player.Pause()
		}
		return
	}

	if l.Player == nil {
		p, err := newLoopPlayer(loop)
		if err != nil {
			logger.L().Warn("audio loop unavailable", "loop", loop.String(), "err", err)
			l.Broken = true
			return
		}
		l.Player = p
	}
	l.Player.SetVolume(synth.LoopVolume(l.Level, lc.MinVolume, lc.Volume, gain, master))
	if !l.Player.IsPlaying() {
		l.Player.Play()
	}
}

func newLoopPlayer(loop flight.Loop) (*audio.Player, error) {
	pcm := globalLoopPCM[loop]
	stream := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return globalAudioContext.NewPlayer(stream)
}

// PlaySFX queues a one-shot cue for the next UpdateAudio.
func PlaySFX(e *ecs.ECS, cue flight.Cue) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, cue)
}

// SetSFXVolume changes the master volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	GetOrCreateAudio(e).SFXVolume = clamp01(volume)
}

// SetMuted silences all audio without losing the volume setting
func SetMuted(e *ecs.ECS, muted bool) {
	GetOrCreateAudio(e).Muted = muted
}

// StopAllLoops closes the loop players, used when the scene goes away.
func StopAllLoops(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	for i := range audioData.Loops {
		if p := audioData.Loops[i].Player; p != nil {
			_ = p.Close()
		}
		audioData.Loops[i] = components.LoopPlayback{}
	}
}

// GetOrCreateAudio returns the singleton Audio component, creating if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(ent, components.AudioData{
			SFXVolume: cfg.Audio.DefaultSFXVol,
		})
	}
	ent, _ := components.Audio.First(e.World)
	return components.Audio.Get(ent)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
