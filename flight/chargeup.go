package flight

// Intensity this close to full snaps to exactly 1.
const chargeEpsilon = 1e-9

// updateChargeUp ramps the intensity while the booster is held at maximum
// outside strafing and resets it the moment that stops being true.
func (c *Controller) updateChargeUp(in ControlInput) {
	if in.Booster == 1 && !c.state.Strafing {
		if c.state.ChargeUp == 0 {
			c.startChargeUp()
		}
		return
	}

	if c.charging {
		c.timers.cancel(TimerChargeUp)
		c.charging = false
		if c.state.ChargeUp >= 1 && c.state.Phase != PhasePreparing {
			c.audio.PlayOneShot(CueChargeDown)
		}
	}
	c.state.ChargeUp = 0
}

func (c *Controller) startChargeUp() {
	c.timers.cancel(TimerChargeUp)
	c.charging = true
	c.stepChargeUp()
	if c.state.ChargeUp < 1 {
		interval := c.tuning.ChargeUpInterval
		c.timers.start(TimerChargeUp, interval, interval, c.stepChargeUp)
	}
}

func (c *Controller) stepChargeUp() {
	v := c.state.ChargeUp + c.tuning.ChargeUpStep
	if v >= 1-chargeEpsilon {
		v = 1
	}
	c.state.ChargeUp = v
	if v >= 1 {
		c.timers.cancel(TimerChargeUp)
	}
}
