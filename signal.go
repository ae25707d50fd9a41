package junction

// SignalState is the colour of one phase's signal head
type SignalState string

const (
	// SignalRed forbids discharge
	SignalRed SignalState = "red"
	// SignalYellow is the mandatory clearance interval before red
	SignalYellow SignalState = "yellow"
	// SignalGreen allows discharge
	SignalGreen SignalState = "green"
)

// Signal is the state machine for one phase. Legal cycle:
//
//	red -> green -> yellow -> red -> ...
//
// There is no direct green -> red transition. Leaving green before the
// minimum green floor is refused, and yellow always lasts its full
// clearance interval; both floors hold for every caller, including
// priority preemption. All timing is in ticks.
type Signal struct {
	phase          string
	state          SignalState
	stateEnteredAt int
	minGreen       int
	yellowTicks    int
}

func newSignal(phase string, minGreen, yellowTicks int) *Signal {
	return &Signal{
		phase:          phase,
		state:          SignalRed,
		stateEnteredAt: 0,
		minGreen:       minGreen,
		yellowTicks:    yellowTicks,
	}
}

// Phase returns the name of the phase this signal controls
func (s *Signal) Phase() string {
	return s.phase
}

// State returns the current signal state
func (s *Signal) State() SignalState {
	return s.state
}

// StateEnteredAt returns the tick at which the current state was entered
func (s *Signal) StateEnteredAt() int {
	return s.stateEnteredAt
}

// Elapsed returns the number of ticks spent in the current state as of now
func (s *Signal) Elapsed(now int) int {
	return now - s.stateEnteredAt
}

// MinGreenMet reports whether the minimum green floor has elapsed. It is
// true whenever the signal is not green, since the floor only constrains
// leaving green.
func (s *Signal) MinGreenMet(now int) bool {
	if s.state != SignalGreen {
		return true
	}
	return s.Elapsed(now) >= s.minGreen
}

// YellowDone reports whether the clearance interval has fully elapsed
func (s *Signal) YellowDone(now int) bool {
	if s.state != SignalYellow {
		return false
	}
	return s.Elapsed(now) >= s.yellowTicks
}

// turnGreen moves the signal from red to green. The intersection only calls
// this once every other signal is red.
func (s *Signal) turnGreen(now int) {
	s.state = SignalGreen
	s.stateEnteredAt = now
}

// beginYellow starts the clearance interval. The request is refused, with no
// state change, while the minimum green floor has not elapsed; callers are
// expected to re-request on a later tick.
func (s *Signal) beginYellow(now int) bool {
	if s.state != SignalGreen {
		return false
	}
	if s.Elapsed(now) < s.minGreen {
		return false
	}
	s.state = SignalYellow
	s.stateEnteredAt = now
	return true
}

// turnRed ends the clearance interval. The intersection only calls this once
// YellowDone reports true.
func (s *Signal) turnRed(now int) {
	s.state = SignalRed
	s.stateEnteredAt = now
}
