package flight

// Modes are the named flight predicates for one tick.
type Modes struct {
	PitchingUp   bool
	PitchingDown bool
	YawingLeft   bool
	YawingRight  bool
	RollingLeft  bool
	RollingRight bool
	Reversing    bool

	Strafing      bool
	StrafingUp    bool
	StrafingDown  bool
	StrafingLeft  bool
	StrafingRight bool

	Bursting bool
	Jumping  bool
}

// IsStrafeInput reports whether booster and reverse are both saturated.
func IsStrafeInput(in ControlInput) bool {
	return in.Booster == 1 && in.Reverse == 1
}

// DeriveModes computes the predicates from input and state without side effects.
// Hyperspeed preparation suppresses steering, strafing redefines the stick as
// translation, and the magnet removes the vertical axis and roll.
func DeriveModes(in ControlInput, s FlightState) Modes {
	x, y := in.PitchYaw[0], in.PitchYaw[1]
	preparing := s.Phase == PhasePreparing
	active := s.Phase == PhaseActive
	steering := !preparing && !s.Strafing

	return Modes{
		PitchingUp:   y < 0 && steering && !s.MagnetActive,
		PitchingDown: y > 0 && steering && !s.MagnetActive,
		YawingRight:  x > 0 && !in.IsRolling && steering,
		YawingLeft:   x < 0 && !in.IsRolling && steering,
		RollingRight: x > 0 && in.IsRolling && steering && !s.MagnetActive,
		RollingLeft:  x < 0 && in.IsRolling && steering && !s.MagnetActive,
		Reversing:    in.Reverse > 0 && !preparing && !active && !s.Strafing,

		Strafing:      s.Strafing,
		StrafingUp:    s.Strafing && y > 0 && !s.MagnetActive,
		StrafingDown:  s.Strafing && y < 0 && !s.MagnetActive,
		StrafingRight: s.Strafing && x > 0,
		StrafingLeft:  s.Strafing && x < 0,

		Bursting: s.BurstActive && !s.BurstCoolingDown && !active,
		Jumping:  s.BurstActive && !active && s.MagnetActive && x == 0 && y == 0,
	}
}
