package flight

import "github.com/go-gl/mathgl/mgl64"

// Literal feel constants kept from the tuned game.
const (
	hyperspeedTorqueDivisor = 4.0
	burstTorqueAngle        = 90.0
	burstTorqueFactor       = 2.0
	magnetJumpScale         = 1.0
)

func (c *Controller) applyForces(in ControlInput) {
	switch c.state.Phase {
	case PhaseIdle:
		c.applyFlightForces(in)
	case PhaseActive:
		c.applyHyperspeedForces(in)
	}
}

func (c *Controller) thrusterForce() float64 {
	if c.state.MagnetActive {
		return c.tuning.MagnetThrusterForce
	}
	return c.tuning.ThrusterForce
}

func (c *Controller) applyFlightForces(in ControlInput) {
	basis := c.body.Basis()
	x, y := in.PitchYaw[0], in.PitchYaw[1]
	magnet := c.state.MagnetActive
	thruster := c.thrusterForce()

	if c.state.Strafing {
		lift := y * thruster
		if magnet {
			lift = 0
		}
		c.body.AddForce(basis.TransformDirection(mgl64.Vec3{x * thruster, lift, 0}), ForceContinuous)
	} else {
		var pitch, yaw, roll float64
		if !magnet {
			pitch = y * c.tuning.ThrusterForce
		}
		if in.IsRolling {
			if !magnet {
				roll = -x * c.tuning.ThrusterForce
			}
		} else {
			yaw = x * thruster
		}
		c.body.AddTorque(basis.TransformDirection(mgl64.Vec3{pitch, yaw, roll}), ForceContinuous)

		c.body.AddForce(basis.Forward.Mul(in.Booster*c.tuning.BoosterForce), ForceContinuous)
		c.body.AddForce(basis.Forward.Mul(-in.Reverse*c.tuning.ThrusterForce), ForceContinuous)
	}

	if magnet {
		c.body.AddForce(basis.Up.Mul(-c.tuning.MagnetForce), ForceContinuous)
	}
}

// applyHyperspeedForces steers at quarter scale and pushes forward at a fixed
// multiple of the booster force regardless of live booster or reverse input.
func (c *Controller) applyHyperspeedForces(in ControlInput) {
	basis := c.body.Basis()
	x, y := in.PitchYaw[0], in.PitchYaw[1]
	scaled := c.tuning.ThrusterForce / hyperspeedTorqueDivisor

	var yaw, roll float64
	if in.IsRolling {
		roll = -x * scaled
	} else {
		yaw = x * scaled
	}
	c.body.AddTorque(basis.TransformDirection(mgl64.Vec3{y * scaled, yaw, roll}), ForceContinuous)
	c.body.AddForce(basis.Forward.Mul(c.tuning.HyperspeedBoostMultiplier*c.tuning.BoosterForce), ForceContinuous)
}

// applyBurst evaluates a latched burst once and always clears the latch.
func (c *Controller) applyBurst(in ControlInput) {
	defer func() { c.state.BurstActive = false }()

	if !DeriveModes(in, c.state).Bursting {
		return
	}
	basis := c.body.Basis()
	x, y := in.PitchYaw[0], in.PitchYaw[1]

	if c.state.MagnetActive {
		c.audio.PlayOneShot(CueBurstThruster)
		c.body.AddForce(basis.Up.Mul(c.tuning.MagnetForce*magnetJumpScale), ForceImpulse)
		c.log.Debug("magnet jump")
		return
	}
	if x == 0 && y == 0 {
		return
	}

	c.audio.PlayOneShot(CueBurstThruster)
	c.state.BurstCoolingDown = true
	c.timers.start(TimerBurstCooldown, c.tuning.BurstCooldown, 0, func() {
		c.state.BurstCoolingDown = false
	})
	c.directionalBurst.Emit(c.tuning.BurstCooldown)

	direction := normalize(basis.TransformDirection(mgl64.Vec3{x, 0, y}))
	axis := normalize(basis.Up.Cross(direction))
	torque := axis.Mul(burstTorqueAngle * burstTorqueFactor * c.tuning.BurstForce)

	c.body.AddForce(direction.Mul(c.tuning.BurstForce), ForceImpulse)
	c.body.AddTorque(torque, ForceImpulse)
	c.log.Debug("directional burst", "x", x, "y", y, "cooldown", c.tuning.BurstCooldown)
}

func normalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}
