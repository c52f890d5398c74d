package flight

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type bodyCommand struct {
	torque bool
	v      mgl64.Vec3
	mode   ForceMode
}

type fakeBody struct {
	basis    Basis
	commands []bodyCommand
}

func newFakeBody() *fakeBody {
	return &fakeBody{basis: IdentityBasis()}
}

func (b *fakeBody) Valid() bool { return b != nil }
func (b *fakeBody) Basis() Basis { return b.basis }

func (b *fakeBody) AddForce(f mgl64.Vec3, mode ForceMode) {
	b.commands = append(b.commands, bodyCommand{v: f, mode: mode})
}

func (b *fakeBody) AddTorque(t mgl64.Vec3, mode ForceMode) {
	b.commands = append(b.commands, bodyCommand{torque: true, v: t, mode: mode})
}

func (b *fakeBody) reset() { b.commands = nil }

func (b *fakeBody) filter(torque bool, mode ForceMode) []mgl64.Vec3 {
	var out []mgl64.Vec3
	for _, c := range b.commands {
		if c.torque == torque && c.mode == mode {
			out = append(out, c.v)
		}
	}
	return out
}

func (b *fakeBody) forces() []mgl64.Vec3 { return b.filter(false, ForceContinuous) }
func (b *fakeBody) torques() []mgl64.Vec3 { return b.filter(true, ForceContinuous) }
func (b *fakeBody) impulseForces() []mgl64.Vec3 { return b.filter(false, ForceImpulse) }
func (b *fakeBody) impulseTorques() []mgl64.Vec3 { return b.filter(true, ForceImpulse) }

type fakeAudio struct {
	cues  []Cue
	loops SoundState
}

func (a *fakeAudio) PlayOneShot(cue Cue) { a.cues = append(a.cues, cue) }

func (a *fakeAudio) SetLoop(loop Loop, playing bool, intensity float64) {
	a.loops[loop] = LoopState{Playing: playing, Intensity: intensity}
}

func (a *fakeAudio) count(cue Cue) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type harness struct {
	c           *Controller
	in          *InputState
	body        *fakeBody
	audio       *fakeAudio
	transitions []Transition
	bursts      []float64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		in:    NewInputState(),
		body:  newFakeBody(),
		audio: &fakeAudio{},
	}
	c, err := New(h.in, h.body, DefaultTuning(), h.audio)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.HyperspeedChanged().Subscribe(func(tr Transition) { h.transitions = append(h.transitions, tr) })
	c.DirectionalBurst().Subscribe(func(cd float64) { h.bursts = append(h.bursts, cd) })
	h.c = c
	t.Cleanup(c.Close)
	return h
}

func (h *harness) set(in ControlInput) { h.in.Set(in) }

// frames runs n frame ticks of dt each.
func (h *harness) frames(n int, dt float64) {
	for i := 0; i < n; i++ {
		h.c.Update(dt)
		h.in.EndTick()
	}
}

// chargeFully holds the booster at maximum until the intensity reaches 1.
func (h *harness) chargeFully(t *testing.T) {
	t.Helper()
	h.set(ControlInput{Booster: 1})
	h.frames(50, 0.1)
	if got := h.c.ChargeUp(); got != 1 {
		t.Fatalf("ChargeUp() after 50 ticks = %v, want 1", got)
	}
}

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}
