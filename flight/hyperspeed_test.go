package flight

import (
	"reflect"
	"testing"
)

func TestHyperspeedRequiresFullCharge(t *testing.T) {
	h := newHarness(t)
	h.set(ControlInput{Booster: 1})
	h.frames(49, 0.1)

	h.in.PressHyperspeed()
	if h.c.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v at charge %v, want idle", h.c.Phase(), h.c.ChargeUp())
	}
	if len(h.transitions) != 0 {
		t.Errorf("transitions = %v, want none", h.transitions)
	}
}

func TestHyperspeedRequiresMaxBooster(t *testing.T) {
	h := newHarness(t)
	h.chargeFully(t)

	// Dropping the booster resets the charge on the next frame, but the press
	// arrives first and must already see the non-maximum booster.
	h.set(ControlInput{Booster: 0.9})
	h.in.PressHyperspeed()
	if h.c.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, want idle", h.c.Phase())
	}
}

func TestHyperspeedPrepareOnce(t *testing.T) {
	h := newHarness(t)
	h.chargeFully(t)

	h.in.PressHyperspeed()
	if h.c.Phase() != PhasePreparing {
		t.Fatalf("Phase() = %v, want preparing", h.c.Phase())
	}
	if got, ok := h.c.TimerRemaining(TimerHyperspeedPrepare); !ok || got != 1 {
		t.Fatalf("prepare timer = %v, %v; want 1, true", got, ok)
	}

	h.c.Update(0.25)
	h.in.PressHyperspeed()

	want := []Transition{DefaultToPreparing}
	if !reflect.DeepEqual(h.transitions, want) {
		t.Errorf("transitions = %v, want %v", h.transitions, want)
	}
	if got, _ := h.c.TimerRemaining(TimerHyperspeedPrepare); got != 0.75 {
		t.Errorf("second press restarted the countdown: remaining = %v, want 0.75", got)
	}
	if n := h.audio.count(CueHyperspeedPreparing); n != 1 {
		t.Errorf("preparing cue played %d times, want 1", n)
	}
}

func TestHyperspeedGoesWhenBoosterReleased(t *testing.T) {
	h := newHarness(t)
	h.chargeFully(t)
	h.in.PressHyperspeed()

	h.set(ControlInput{})
	h.frames(1, 0.5)
	if h.c.Phase() != PhasePreparing {
		t.Fatalf("Phase() = %v after 0.5s, want preparing", h.c.Phase())
	}
	if h.c.ChargeUp() != 0 {
		t.Errorf("ChargeUp() = %v after booster release, want 0", h.c.ChargeUp())
	}
	if n := h.audio.count(CueChargeDown); n != 0 {
		t.Errorf("charge-down played %d times while preparing, want 0", n)
	}

	h.frames(1, 0.5)
	if h.c.Phase() != PhaseActive {
		t.Fatalf("Phase() = %v after countdown, want active", h.c.Phase())
	}
	want := []Transition{DefaultToPreparing, PreparingToGoing}
	if !reflect.DeepEqual(h.transitions, want) {
		t.Errorf("transitions = %v, want %v", h.transitions, want)
	}
}

func TestHyperspeedFailsWhenBoosterHeld(t *testing.T) {
	h := newHarness(t)
	h.chargeFully(t)
	h.in.PressHyperspeed()

	h.set(ControlInput{Booster: 0.3})
	h.frames(2, 0.5)

	if h.c.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v, want idle", h.c.Phase())
	}
	want := []Transition{DefaultToPreparing, PreparingToFailing}
	if !reflect.DeepEqual(h.transitions, want) {
		t.Errorf("transitions = %v, want %v", h.transitions, want)
	}
	if _, ok := h.c.TimerRemaining(TimerHyperspeedPrepare); ok {
		t.Error("prepare timer still running after expiry")
	}
}

func TestHyperspeedStop(t *testing.T) {
	h := newHarness(t)
	h.chargeFully(t)
	h.in.PressHyperspeed()
	h.set(ControlInput{})
	h.frames(1, 1)
	if h.c.Phase() != PhaseActive {
		t.Fatalf("Phase() = %v, want active", h.c.Phase())
	}
	before := h.audio.count(CueChargeDown)

	h.in.PressHyperspeed()

	if h.c.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v after stop, want idle", h.c.Phase())
	}
	if got := h.transitions[len(h.transitions)-1]; got != GoingToStopping {
		t.Errorf("last transition = %v, want %v", got, GoingToStopping)
	}
	if n := h.audio.count(CueChargeDown) - before; n != 1 {
		t.Errorf("stop played %d charge-down cues, want 1", n)
	}
}

func TestHyperspeedLoopSync(t *testing.T) {
	h := newHarness(t)
	h.chargeFully(t)
	h.in.PressHyperspeed()

	h.set(ControlInput{})
	h.frames(1, 1)
	h.frames(1, 0.1)

	if !h.audio.loops[LoopHyperspeed].Playing {
		t.Error("hyperspeed loop not playing while active")
	}
	if h.audio.loops[LoopBooster].Playing {
		t.Error("booster loop playing with booster released")
	}
}

func TestTransitionString(t *testing.T) {
	tests := map[Transition]string{
		DefaultToPreparing: "DEFAULT_TO_PREPARING",
		PreparingToGoing:   "PREPARING_TO_GOING",
		PreparingToFailing: "PREPARING_TO_FAILING",
		GoingToStopping:    "GOING_TO_STOPPING",
		Transition(42):     "UNKNOWN",
	}
	for tr, want := range tests {
		if got := tr.String(); got != want {
			t.Errorf("Transition(%d).String() = %q, want %q", int(tr), got, want)
		}
	}
}
