package flight

// TimerKind names one of the controller's countdowns. At most one timer of
// each kind runs at a time.
type TimerKind int

const (
	TimerChargeUp TimerKind = iota
	TimerBurstCooldown
	TimerHyperspeedPrepare
	timerKindCount
)

func (k TimerKind) String() string {
	switch k {
	case TimerChargeUp:
		return "charge_up"
	case TimerBurstCooldown:
		return "burst_cooldown"
	case TimerHyperspeedPrepare:
		return "hyperspeed_prepare"
	}
	return "unknown"
}

// Countdown residue below this counts as elapsed.
const timerEpsilon = 1e-9

type timer struct {
	remaining float64
	period    float64 // >0 re-arms after each fire
	fire      func()
}

// scheduler runs cooperative timers advanced by the frame tick.
type scheduler struct {
	slots [timerKindCount]*timer
}

// start arms kind, replacing any running timer of that kind.
func (s *scheduler) start(kind TimerKind, delay, period float64, fire func()) {
	s.slots[kind] = &timer{remaining: delay, period: period, fire: fire}
}

func (s *scheduler) cancel(kind TimerKind) bool {
	running := s.slots[kind] != nil
	s.slots[kind] = nil
	return running
}

func (s *scheduler) active(kind TimerKind) bool {
	return s.slots[kind] != nil
}

func (s *scheduler) remaining(kind TimerKind) (float64, bool) {
	t := s.slots[kind]
	if t == nil {
		return 0, false
	}
	return t.remaining, true
}

func (s *scheduler) clear() {
	s.slots = [timerKindCount]*timer{}
}

// advance moves every timer armed before the call forward by dt.
// Timers armed by a fire callback start counting on the next advance.
func (s *scheduler) advance(dt float64) {
	armed := s.slots
	for k, t := range armed {
		if t == nil || s.slots[k] != t {
			continue
		}
		t.remaining -= dt
		for t.remaining <= timerEpsilon {
			if t.period <= 0 {
				s.slots[k] = nil
				t.fire()
				break
			}
			t.remaining += t.period
			t.fire()
			if s.slots[k] != t {
				break
			}
		}
	}
}
