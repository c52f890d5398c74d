// Package flight turns player control input into forces and torques on a ship
// body, running the strafe, magnet, burst and hyperspeed modes.
package flight

import (
	"log/slog"
	"math"

	"github.com/automoto/skyball/logger"
	"github.com/pkg/errors"
)

// MagnetTriggerName is the trigger zone that switches magnet flight on.
const MagnetTriggerName = "MagnetTrigger"

// Controller owns the flight state of one ship. It is driven from a single
// goroutine: Update once per frame, FixedUpdate once per physics step.
type Controller struct {
	input  InputSource
	body   Body
	tuning Tuning
	audio  AudioSink
	log    *slog.Logger

	state    FlightState
	charging bool // charge-up ramp started and not yet reset
	timers   scheduler

	hyperspeedChanged Signal[Transition]
	directionalBurst  Signal[float64]

	hyperspeedSub ListenerID
	burstSub      ListenerID
	pollTriggers  bool
	closed        bool
}

// New builds a controller and subscribes it to the input triggers.
// A nil audio sink plays nothing.
func New(input InputSource, body Body, tuning Tuning, audio AudioSink) (*Controller, error) {
	if input == nil || !valid(input) {
		return nil, ErrNoInput
	}
	if body == nil || !valid(body) {
		return nil, ErrNoBody
	}
	if err := tuning.Validate(); err != nil {
		return nil, errors.Wrap(err, "new flight controller")
	}
	if audio == nil {
		audio = nopAudio{}
	}

	c := &Controller{
		input:  input,
		body:   body,
		tuning: tuning,
		audio:  audio,
		log:    logger.L().With("component", "flight"),
	}

	hs, burst := input.HyperspeedPerformed(), input.BurstPerformed()
	if hs == nil || burst == nil {
		c.pollTriggers = true
	} else {
		c.hyperspeedSub = hs.Subscribe(func(struct{}) { c.onHyperspeed() })
		c.burstSub = burst.Subscribe(func(struct{}) { c.onBurst() })
	}
	return c, nil
}

// validator is implemented by pointer collaborators that can detect a nil receiver.
type validator interface {
	Valid() bool
}

func valid(v any) bool {
	x, ok := v.(validator)
	return !ok || x.Valid()
}

// Close unsubscribes from the input and stops all timers.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if !c.pollTriggers {
		c.input.HyperspeedPerformed().Unsubscribe(c.hyperspeedSub)
		c.input.BurstPerformed().Unsubscribe(c.burstSub)
	}
	c.timers.clear()
	c.charging = false
}

// Update is the frame tick: sound sync, timers and the charge-up monitor.
func (c *Controller) Update(dt float64) {
	if c.closed {
		return
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	in := c.read()
	if c.pollTriggers {
		if in.HyperspeedTriggered {
			c.onHyperspeed()
		}
		if in.BurstTriggered {
			c.onBurst()
		}
	}

	c.syncSound(in)
	c.refreshStrafing(in)
	c.timers.advance(dt)
	c.updateChargeUp(c.read())
}

// FixedUpdate is the physics tick: mode forces then the burst impulse.
func (c *Controller) FixedUpdate() {
	if c.closed {
		return
	}
	in := c.read()
	c.refreshStrafing(in)
	c.applyForces(in)
	c.applyBurst(in)
}

func (c *Controller) read() ControlInput {
	return c.input.Snapshot().Clamped()
}

func (c *Controller) refreshStrafing(in ControlInput) {
	c.state.Strafing = c.state.Phase == PhaseIdle && IsStrafeInput(in)
}

func (c *Controller) onBurst() {
	c.state.BurstActive = true
}

// SetMagnetActive is called by the trigger-zone collaborator. Repeated calls
// with the same value are no-ops.
func (c *Controller) SetMagnetActive(active bool) {
	if c.state.MagnetActive == active {
		return
	}
	c.state.MagnetActive = active
	c.log.Debug("magnet changed", "active", active)
}

// TriggerEnter handles the ship entering the named trigger zone.
func (c *Controller) TriggerEnter(name string) {
	if name == MagnetTriggerName {
		c.SetMagnetActive(true)
	}
}

// TriggerExit handles the ship leaving the named trigger zone.
func (c *Controller) TriggerExit(name string) {
	if name == MagnetTriggerName {
		c.SetMagnetActive(false)
	}
}

// State returns a copy of the mode state.
func (c *Controller) State() FlightState {
	return c.state
}

// Phase returns the hyperspeed phase.
func (c *Controller) Phase() HyperspeedPhase {
	return c.state.Phase
}

// ChargeUp returns the charge-up intensity in [0,1].
func (c *Controller) ChargeUp() float64 {
	return c.state.ChargeUp
}

// Modes derives the flight predicates for the current input.
func (c *Controller) Modes() Modes {
	return DeriveModes(c.read(), c.state)
}

// Tuning returns the constants the controller was built with.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// TimerRemaining reports the time left on a running timer.
func (c *Controller) TimerRemaining(kind TimerKind) (float64, bool) {
	return c.timers.remaining(kind)
}

// HyperspeedChanged publishes every hyperspeed phase transition.
func (c *Controller) HyperspeedChanged() *Signal[Transition] {
	return &c.hyperspeedChanged
}

// DirectionalBurst publishes the cooldown duration of each directional burst.
func (c *Controller) DirectionalBurst() *Signal[float64] {
	return &c.directionalBurst
}

// Sound returns the loop state the current tick asks for.
func (c *Controller) Sound() SoundState {
	return soundFor(c.read(), c.state)
}

func soundFor(in ControlInput, s FlightState) SoundState {
	quiet := s.Phase == PhasePreparing || s.Strafing
	var out SoundState
	out[LoopBooster] = LoopState{Playing: in.Booster > 0 && !quiet, Intensity: in.Booster}
	out[LoopChargeUp] = LoopState{Playing: s.ChargeUp > 0 && !quiet, Intensity: s.ChargeUp}
	out[LoopHyperspeed] = LoopState{Playing: s.Phase == PhaseActive, Intensity: 1}
	return out
}

func (c *Controller) syncSound(in ControlInput) {
	for loop, st := range soundFor(in, c.state) {
		c.audio.SetLoop(Loop(loop), st.Playing, st.Intensity)
	}
}
