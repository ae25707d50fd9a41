package junction

// Intersection owns the lanes, the per-phase signals, and the single tick
// counter of one junction. At most one phase holds green at any time, and a
// phase change always passes through the full yellow clearance of the phase
// giving up green.
//
// An Intersection is not safe for concurrent use. Drive each instance from
// one goroutine, normally through a Simulation.
type Intersection struct {
	layout       *Layout
	lanes        map[string]*Lane
	signals      map[string]*Signal
	activePhase  string
	pendingPhase string
	clearing     bool
	currentTick  int
	ids          *idGenerator
	observers    *ObserverManager
}

// NewIntersection creates an intersection for the given layout with every
// signal red and every lane empty. The configuration is validated and a
// malformed one is rejected before any state is built.
func NewIntersection(layout *Layout, cfg Config) (*Intersection, error) {
	if layout == nil {
		return nil, NewConfigurationError("layout", "layout must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lanes := make(map[string]*Lane, len(layout.LaneKeys()))
	for _, key := range layout.LaneKeys() {
		lanes[key] = newLane(key)
	}

	signals := make(map[string]*Signal, layout.NumPhases())
	for _, name := range layout.PhaseNames() {
		signals[name] = newSignal(name, cfg.MinGreen, cfg.Yellow)
	}

	return &Intersection{
		layout:    layout,
		lanes:     lanes,
		signals:   signals,
		ids:       newIDGenerator(),
		observers: NewObserverManager(),
	}, nil
}

// AddObserver registers an observer for this intersection's notifications
func (i *Intersection) AddObserver(observer Observer) {
	i.observers.AddObserver(observer)
}

// RemoveObserver unregisters a previously added observer
func (i *Intersection) RemoveObserver(observer Observer) {
	i.observers.RemoveObserver(observer)
}

// RequestPhase asks for green on the named phase. Requesting the phase that
// already holds green is a no-op. If another phase holds green and has served
// its minimum green time, its yellow clearance begins and the request is
// recorded as pending; if the minimum has not elapsed the request is silently
// refused. While a clearance is in progress all requests are refused. An
// unknown phase name is rejected with an error and leaves state untouched.
func (i *Intersection) RequestPhase(name string, now int) error {
	if !i.layout.Contains(name) {
		return NewUnknownPhaseError(name)
	}
	if i.clearing {
		return nil
	}
	if i.activePhase == name {
		return nil
	}
	if i.activePhase != "" {
		if !i.signals[i.activePhase].beginYellow(now) {
			return nil
		}
		i.pendingPhase = name
		i.clearing = true
		i.observers.NotifyClearanceStarted(i.activePhase, name, now)
		return nil
	}
	i.grant("", name, now)
	return nil
}

// TickClearance advances an in-progress clearance. Once the yellow interval
// has fully elapsed the clearing phase turns red and the pending phase is
// granted green. It reports whether a grant happened during this call.
func (i *Intersection) TickClearance(now int) bool {
	if !i.clearing {
		return false
	}
	sig := i.signals[i.activePhase]
	if !sig.YellowDone(now) {
		return false
	}

	from := i.activePhase
	pending := i.pendingPhase
	sig.turnRed(now)
	i.activePhase = ""
	i.pendingPhase = ""
	i.clearing = false
	i.grant(from, pending, now)
	return true
}

// grant moves every signal to red and then gives the named phase green.
func (i *Intersection) grant(from, name string, now int) {
	for _, sig := range i.signals {
		if sig.State() != SignalRed {
			sig.turnRed(now)
		}
	}
	i.signals[name].turnGreen(now)
	i.activePhase = name
	i.observers.NotifyPhaseChanged(from, name, now)
}

// Admit mints a vehicle arriving now and appends it to the tail of the named
// lane. The vehicle is returned as recorded.
func (i *Intersection) Admit(laneKey string, class VehicleClass, intent TurnIntent, now int) (Vehicle, error) {
	lane, ok := i.lanes[laneKey]
	if !ok {
		return Vehicle{}, NewUnknownLaneError(laneKey)
	}
	if !class.Valid() {
		return Vehicle{}, NewVehicleError(ErrCodeInvalidVehicleClass, class,
			"unknown vehicle class")
	}

	vehicle := Vehicle{
		ID:          i.ids.Next(),
		Class:       class,
		ArrivalTime: now,
		Intent:      intent,
	}
	lane.Enqueue(vehicle)
	i.observers.NotifyVehicleSpawned(vehicle, laneKey)
	return vehicle, nil
}

// InjectPriorityVehicle mints an emergency vehicle arriving now and places it
// at the head of the named lane, ahead of every waiting vehicle. Only the
// priority classes are accepted. The relative order of the vehicles already
// queued is preserved.
func (i *Intersection) InjectPriorityVehicle(laneKey string, class VehicleClass, now int) (Vehicle, error) {
	lane, ok := i.lanes[laneKey]
	if !ok {
		return Vehicle{}, NewUnknownLaneError(laneKey)
	}
	if !class.Valid() || class == ClassCar {
		return Vehicle{}, NewInvalidClassError(class)
	}

	vehicle := Vehicle{
		ID:          i.ids.Next(),
		Class:       class,
		ArrivalTime: now,
		Intent:      TurnStraight,
	}
	lane.promote(vehicle)
	i.observers.NotifyPriorityInjected(vehicle, laneKey, now)
	return vehicle, nil
}

// ActivePhase returns the phase currently holding green, or the phase in
// yellow clearance, or the empty string when every signal is red.
func (i *Intersection) ActivePhase() string {
	return i.activePhase
}

// PendingPhase returns the phase waiting for an in-progress clearance to
// finish, or the empty string when none is pending.
func (i *Intersection) PendingPhase() string {
	return i.pendingPhase
}

// Clearing reports whether a yellow clearance is in progress
func (i *Intersection) Clearing() bool {
	return i.clearing
}

// CurrentTick returns the intersection's tick counter
func (i *Intersection) CurrentTick() int {
	return i.currentTick
}

// advanceTick moves the tick counter forward by one.
func (i *Intersection) advanceTick() int {
	i.currentTick++
	return i.currentTick
}

// Layout returns the validated phase table this intersection was built from
func (i *Intersection) Layout() *Layout {
	return i.layout
}

// SignalState returns the current state of the named phase's signal
func (i *Intersection) SignalState(phase string) (SignalState, bool) {
	sig, ok := i.signals[phase]
	if !ok {
		return SignalRed, false
	}
	return sig.State(), true
}

// SignalStates returns the state of every signal keyed by phase name
func (i *Intersection) SignalStates() map[string]SignalState {
	states := make(map[string]SignalState, len(i.signals))
	for name, sig := range i.signals {
		states[name] = sig.State()
	}
	return states
}

// MinGreenMet reports whether the named phase has served its minimum green
// time. A phase that is not green has no floor to serve and reports true.
func (i *Intersection) MinGreenMet(phase string, now int) bool {
	sig, ok := i.signals[phase]
	if !ok {
		return false
	}
	return sig.MinGreenMet(now)
}

// GreenElapsed returns how many ticks the named phase has held green, or 0
// when it is not green.
func (i *Intersection) GreenElapsed(phase string, now int) int {
	sig, ok := i.signals[phase]
	if !ok || sig.State() != SignalGreen {
		return 0
	}
	return sig.Elapsed(now)
}

// LaneCount returns how many vehicles are queued in the named lane
func (i *Intersection) LaneCount(laneKey string) int {
	lane, ok := i.lanes[laneKey]
	if !ok {
		return 0
	}
	return lane.Count()
}

// HeadWait returns how long the named lane's head vehicle has been waiting
func (i *Intersection) HeadWait(laneKey string, now int) int {
	lane, ok := i.lanes[laneKey]
	if !ok {
		return 0
	}
	return lane.HeadWait(now)
}

// LaneHead returns the head vehicle of the named lane without removing it
func (i *Intersection) LaneHead(laneKey string) (Vehicle, bool) {
	lane, ok := i.lanes[laneKey]
	if !ok {
		return Vehicle{}, false
	}
	return lane.Head()
}

// LaneVehicles returns a copy of the named lane's queue in order
func (i *Intersection) LaneVehicles(laneKey string) []Vehicle {
	lane, ok := i.lanes[laneKey]
	if !ok {
		return nil
	}
	return lane.Vehicles()
}

// VehiclesEntered returns how many vehicles this intersection has minted,
// counting both tail arrivals and priority injections
func (i *Intersection) VehiclesEntered() int {
	return i.ids.Issued()
}

// QueuedVehicles returns the total number of vehicles waiting across lanes
func (i *Intersection) QueuedVehicles() int {
	total := 0
	for _, lane := range i.lanes {
		total += lane.Count()
	}
	return total
}

// QueuedByLane returns the queue length of every lane keyed by lane key
func (i *Intersection) QueuedByLane() map[string]int {
	counts := make(map[string]int, len(i.lanes))
	for key, lane := range i.lanes {
		counts[key] = lane.Count()
	}
	return counts
}
