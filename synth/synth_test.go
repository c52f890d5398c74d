package synth

import (
	"encoding/binary"
	"math"
	"testing"
)

func sample(pcm []byte, frame int) (left, right int16) {
	b := pcm[frame*bytesPerFrame:]
	return int16(binary.LittleEndian.Uint16(b[0:])), int16(binary.LittleEndian.Uint16(b[2:]))
}

func TestSweepPCM(t *testing.T) {
	s := Sweep{StartHz: 440, EndHz: 220, Seconds: 0.5, Volume: 1, Attack: 0.01, Release: 0.1}
	pcm := s.PCM(8000)
	if got, want := len(pcm), 4000*bytesPerFrame; got != want {
		t.Fatalf("len(PCM) = %d, want %d", got, want)
	}

	peak := 0
	for i := 0; i < 4000; i++ {
		l, r := sample(pcm, i)
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i, l, r)
		}
		if a := int(math.Abs(float64(l))); a > peak {
			peak = a
		}
	}
	if peak < math.MaxInt16/2 {
		t.Errorf("peak = %d, want a loud signal", peak)
	}
	if l, _ := sample(pcm, 0); l != 0 {
		t.Errorf("first frame = %d, want silence under the attack", l)
	}
}

func TestSweepEmpty(t *testing.T) {
	if pcm := (Sweep{Seconds: 0}).PCM(44100); pcm != nil {
		t.Errorf("PCM() of an empty sweep = %d bytes, want nil", len(pcm))
	}
}

func TestDroneLoopsCleanly(t *testing.T) {
	pcm := Drone{Hz: 100, Harmonic: 200}.PCM(8000)
	if got := len(pcm); got != 8000*bytesPerFrame {
		t.Fatalf("len(PCM) = %d", got)
	}
	first, _ := sample(pcm, 0)
	last, _ := sample(pcm, 7999)
	// Wrapping around must be no larger than an ordinary step between samples.
	if d := math.Abs(float64(first) - float64(last)); d > math.MaxInt16*0.15 {
		t.Errorf("loop seam jumps by %v", d)
	}
}

func TestFader(t *testing.T) {
	var f Fader
	if !f.Silent() {
		t.Fatal("zero Fader not silent")
	}

	f.Set(true, 1)
	mid := f.Update(0.5)
	if mid <= 0 || mid >= 1 {
		t.Errorf("gain halfway through fade-in = %v, want between 0 and 1", mid)
	}
	f.Set(true, 1)
	if got := f.Update(0.6); got != 1 {
		t.Errorf("gain after fade-in = %v, want 1", got)
	}

	f.Set(false, 0.5)
	f.Update(0.25)
	if f.Silent() {
		t.Error("Silent() during fade-out")
	}
	f.Update(0.5)
	if !f.Silent() {
		t.Errorf("not silent after fade-out, gain %v", f.Gain())
	}

	f.Set(true, 0)
	if f.Gain() != 1 {
		t.Errorf("instant fade gain = %v, want 1", f.Gain())
	}
}

func TestLoopVolume(t *testing.T) {
	tests := []struct {
		intensity, gain, master float64
		want                    float64
	}{
		{0, 1, 1, 0.1},
		{1, 1, 1, 0.5},
		{0.5, 1, 1, 0.3},
		{2, 1, 1, 0.5},
		{1, 0.5, 0.5, 0.125},
		{1, 0, 1, 0},
	}
	for _, tt := range tests {
		got := LoopVolume(tt.intensity, 0.1, 0.5, tt.gain, tt.master)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LoopVolume(%v, gain %v, master %v) = %v, want %v", tt.intensity, tt.gain, tt.master, got, tt.want)
		}
	}
}
