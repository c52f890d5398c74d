package flight

// Cue is a one-shot sound.
type Cue int

const (
	CueNone Cue = iota
	CueChargeDown
	CueBurstThruster
	CueHyperspeedPreparing
)

func (c Cue) String() string {
	switch c {
	case CueChargeDown:
		return "charge_down"
	case CueBurstThruster:
		return "burst_thruster"
	case CueHyperspeedPreparing:
		return "hyperspeed_preparing"
	}
	return "none"
}

// Loop is a continuously playing sound whose state is synced every frame.
type Loop int

const (
	LoopBooster Loop = iota
	LoopChargeUp
	LoopHyperspeed
	LoopCount
)

func (l Loop) String() string {
	switch l {
	case LoopBooster:
		return "booster"
	case LoopChargeUp:
		return "charge_up"
	case LoopHyperspeed:
		return "hyperspeed"
	}
	return "unknown"
}

// AudioSink receives the controller's sound requests.
type AudioSink interface {
	PlayOneShot(cue Cue)
	SetLoop(loop Loop, playing bool, intensity float64)
}

// LoopState is the desired state of one loop.
type LoopState struct {
	Playing   bool
	Intensity float64
}

// SoundState is the desired state of every loop for the current tick.
type SoundState [LoopCount]LoopState

type nopAudio struct{}

func (nopAudio) PlayOneShot(Cue) {}
func (nopAudio) SetLoop(Loop, bool, float64) {}
