// Package synth renders the game's sound effects as 16-bit stereo PCM and
// fades thruster loops in and out.
package synth

import (
	"encoding/binary"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const bytesPerFrame = 4 // 16-bit little endian, two channels

// Sweep is a one-shot sine sweep with a linear attack/release envelope.
type Sweep struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Volume  float64
	Attack  float64 // seconds
	Release float64
}

// PCM renders the sweep at sampleRate.
func (s Sweep) PCM(sampleRate int) []byte {
	n := int(s.Seconds * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	out := make([]byte, n*bytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		hz := s.StartHz + (s.EndHz-s.StartHz)*t/s.Seconds
		phase += 2 * math.Pi * hz / float64(sampleRate)
		v := math.Sin(phase) * s.Volume * s.envelope(t)
		putFrame(out[i*bytesPerFrame:], v)
	}
	return out
}

func (s Sweep) envelope(t float64) float64 {
	env := 1.0
	if s.Attack > 0 && t < s.Attack {
		env = t / s.Attack
	}
	if left := s.Seconds - t; s.Release > 0 && left < s.Release {
		env = math.Min(env, left/s.Release)
	}
	return env
}

// Drone is a steady tone with an optional second partial. Whole-number
// frequencies render one second that loops without a click.
type Drone struct {
	Hz       float64
	Harmonic float64 // 0 disables
}

// PCM renders one second of the drone at sampleRate.
func (d Drone) PCM(sampleRate int) []byte {
	if sampleRate <= 0 {
		return nil
	}
	out := make([]byte, sampleRate*bytesPerFrame)
	for i := 0; i < sampleRate; i++ {
		t := float64(i) / float64(sampleRate)
		v := math.Sin(2 * math.Pi * d.Hz * t)
		if d.Harmonic > 0 {
			v = 0.7*v + 0.3*math.Sin(2*math.Pi*d.Harmonic*t)
		}
		putFrame(out[i*bytesPerFrame:], v)
	}
	return out
}

func putFrame(b []byte, v float64) {
	s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
	binary.LittleEndian.PutUint16(b[0:], uint16(s))
	binary.LittleEndian.PutUint16(b[2:], uint16(s))
}

// Fader eases a loop gain toward fully on or fully off.
type Fader struct {
	gain  float64
	on    bool
	tween *gween.Tween
}

// Set aims the fader at on or off over seconds. Repeating the current target
// keeps the fade in progress.
func (f *Fader) Set(on bool, seconds float64) {
	if on == f.on {
		return
	}
	f.on = on
	target := 0.0
	easing := ease.InQuad
	if on {
		target = 1
		easing = ease.OutQuad
	}
	if seconds <= 0 {
		f.gain = target
		f.tween = nil
		return
	}
	f.tween = gween.New(float32(f.gain), float32(target), float32(seconds), easing)
}

// Update advances the fade by dt seconds and returns the gain.
func (f *Fader) Update(dt float64) float64 {
	if f.tween == nil {
		return f.gain
	}
	v, done := f.tween.Update(float32(dt))
	f.gain = float64(v)
	if done {
		f.tween = nil
		if f.on {
			f.gain = 1
		} else {
			f.gain = 0
		}
	}
	return f.gain
}

func (f *Fader) Gain() float64 {
	return f.gain
}

// Silent reports whether the fader is off and fully faded out.
func (f *Fader) Silent() bool {
	return !f.on && f.tween == nil && f.gain == 0
}

// LoopVolume maps a loop's intensity to a player volume: minVol at zero
// intensity, maxVol at full, scaled by the fade gain and master volume.
func LoopVolume(intensity, minVol, maxVol, gain, master float64) float64 {
	intensity = math.Max(0, math.Min(1, intensity))
	return (minVol + (maxVol-minVol)*intensity) * gain * master
}
