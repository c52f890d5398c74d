package flight

// HyperspeedPhase is the position of the hyperspeed sequence.
type HyperspeedPhase int

const (
	PhaseIdle HyperspeedPhase = iota
	PhasePreparing
	PhaseActive
)

func (p HyperspeedPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePreparing:
		return "preparing"
	case PhaseActive:
		return "active"
	}
	return "unknown"
}

// Transition is a hyperspeed phase change published to subscribers.
type Transition int

const (
	DefaultToPreparing Transition = iota
	PreparingToGoing
	PreparingToFailing
	GoingToStopping
)

func (t Transition) String() string {
	switch t {
	case DefaultToPreparing:
		return "DEFAULT_TO_PREPARING"
	case PreparingToGoing:
		return "PREPARING_TO_GOING"
	case PreparingToFailing:
		return "PREPARING_TO_FAILING"
	case GoingToStopping:
		return "GOING_TO_STOPPING"
	}
	return "UNKNOWN"
}

// FlightState is the controller-owned mode state.
type FlightState struct {
	Strafing         bool
	MagnetActive     bool
	BurstActive      bool // latched by a burst trigger, cleared by the next physics step
	BurstCoolingDown bool
	ChargeUp         float64 // [0,1]
	Phase            HyperspeedPhase
}

func (s FlightState) Hyperspeeding() bool {
	return s.Phase == PhasePreparing || s.Phase == PhaseActive
}
