package flight

// onHyperspeed handles the hyperspeed action: it arms preparation from Idle
// when fully charged with the booster held, and stops an active run.
func (c *Controller) onHyperspeed() {
	switch c.state.Phase {
	case PhaseIdle:
		if c.state.ChargeUp >= 1 && c.read().Booster == 1 {
			c.beginPreparation()
		}
	case PhaseActive:
		c.state.Phase = PhaseIdle
		c.emitTransition(GoingToStopping)
		c.audio.PlayOneShot(CueChargeDown)
	}
}

func (c *Controller) beginPreparation() {
	c.state.Phase = PhasePreparing
	c.state.Strafing = false
	c.emitTransition(DefaultToPreparing)

	c.timers.start(TimerHyperspeedPrepare, c.tuning.HyperspeedPrepareSeconds, 0, c.finishPreparation)
	c.audio.PlayOneShot(CueHyperspeedPreparing)
}

// finishPreparation runs when the countdown elapses. The booster must have
// been released by then for the jump to go.
func (c *Controller) finishPreparation() {
	if c.read().Booster == 0 {
		c.state.Phase = PhaseActive
		c.emitTransition(PreparingToGoing)
		return
	}
	c.state.Phase = PhaseIdle
	c.emitTransition(PreparingToFailing)
}

func (c *Controller) emitTransition(t Transition) {
	c.log.Debug("hyperspeed transition", "transition", t.String(), "phase", c.state.Phase.String())
	c.hyperspeedChanged.Emit(t)
}
