package junction

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Simulation drives one intersection tick by tick. Each step makes the same
// ordered pass: an in-progress clearance is advanced first and, while it
// lasts, nothing else happens; then arrivals are drawn lane by lane; then the
// strategy is consulted and its choice submitted; then the lanes of a phase
// holding green release vehicles up to the discharge rate; finally the tick
// counter advances.
//
// All randomness flows from a single seeded source, so two simulations built
// with the same layout, configuration, and seed produce identical runs.
type Simulation struct {
	runID        string
	cfg          Config
	intersection *Intersection
	strategy     Strategy
	rng          *rand.Rand
	log          *EventLog
}

// NewSimulation creates a simulation over a fresh intersection. The
// configuration is validated, every lane named in the spawn rates must
// belong to the layout, and a nil strategy is rejected.
func NewSimulation(layout *Layout, cfg Config, strategy Strategy) (*Simulation, error) {
	if strategy == nil {
		return nil, NewConfigurationError("strategy", "strategy must not be nil")
	}

	intersection, err := NewIntersection(layout, cfg)
	if err != nil {
		return nil, err
	}
	for lane := range cfg.SpawnRates {
		if _, ok := layout.PhaseOf(lane); !ok {
			return nil, NewUnknownLaneError(lane)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Simulation{
		runID:        uuid.New().String(),
		cfg:          cfg,
		intersection: intersection,
		strategy:     strategy,
		rng:          rand.New(rand.NewSource(seed)),
		log:          newEventLog(),
	}, nil
}

// Step executes one tick of the simulation.
func (s *Simulation) Step() {
	now := s.intersection.CurrentTick()

	if s.intersection.Clearing() {
		if !s.intersection.TickClearance(now) {
			s.finishTick()
			return
		}
	}

	s.spawn(now)

	if target := s.strategy.Decide(s.intersection, now); target != "" {
		if err := s.intersection.RequestPhase(target, now); err != nil {
			s.intersection.observers.NotifyError(err)
		}
	}

	s.discharge(now)
	s.finishTick()
}

// Run executes the given number of steps. A non-positive count is a no-op.
func (s *Simulation) Run(ticks int) {
	for n := 0; n < ticks; n++ {
		s.Step()
	}
}

// spawn draws one Bernoulli trial per configured lane, in the layout's lane
// declaration order so that a fixed seed replays the same arrivals.
func (s *Simulation) spawn(now int) {
	for _, key := range s.intersection.Layout().LaneKeys() {
		rate, ok := s.cfg.SpawnRates[key]
		if !ok || rate <= 0 {
			continue
		}
		if s.rng.Float64() >= rate {
			continue
		}

		class := ClassCar
		if s.rng.Float64() < s.cfg.EmergencyRate {
			class = PriorityClasses[s.rng.Intn(len(PriorityClasses))]
		}
		intent := TurnStraight
		if s.rng.Float64() < s.cfg.LeftTurnRate {
			intent = TurnLeft
		}

		if _, err := s.intersection.Admit(key, class, intent, now); err != nil {
			s.intersection.observers.NotifyError(err)
		}
	}
}

// discharge releases vehicles from the lanes of the phase holding green, up
// to the discharge rate per lane, recording one event per vehicle. Nothing
// discharges during a clearance.
func (s *Simulation) discharge(now int) {
	active := s.intersection.ActivePhase()
	if active == "" || s.intersection.Clearing() {
		return
	}
	phase, ok := s.intersection.Layout().Phase(active)
	if !ok {
		return
	}

	for _, key := range phase.LaneKeys {
		lane := s.intersection.lanes[key]
		for n := 0; n < s.cfg.DischargeRate; n++ {
			vehicle, ok := lane.Dequeue()
			if !ok {
				break
			}
			event := DischargeEvent{
				Tick:      now,
				VehicleID: vehicle.ID,
				LaneKey:   key,
				WaitTime:  vehicle.Wait(now),
			}
			s.log.append(event)
			s.intersection.observers.NotifyVehicleDischarged(event)
		}
	}
}

// finishTick advances the tick counter and reports the completed tick.
func (s *Simulation) finishTick() {
	completed := s.intersection.CurrentTick()
	s.intersection.advanceTick()
	s.intersection.observers.NotifyTick(completed)
}

// InjectPriorityVehicle places an emergency vehicle at the head of the named
// lane at the current tick.
func (s *Simulation) InjectPriorityVehicle(laneKey string, class VehicleClass) (Vehicle, error) {
	return s.intersection.InjectPriorityVehicle(laneKey, class, s.intersection.CurrentTick())
}

// AddObserver registers an observer for this simulation's notifications
func (s *Simulation) AddObserver(observer Observer) {
	s.intersection.AddObserver(observer)
}

// RemoveObserver unregisters a previously added observer
func (s *Simulation) RemoveObserver(observer Observer) {
	s.intersection.RemoveObserver(observer)
}

// RunID returns the unique identifier assigned to this simulation
func (s *Simulation) RunID() string {
	return s.runID
}

// Config returns the configuration the simulation was built with
func (s *Simulation) Config() Config {
	return s.cfg
}

// Strategy returns the strategy driving phase selection
func (s *Simulation) Strategy() Strategy {
	return s.strategy
}

// Intersection returns the intersection the simulation drives
func (s *Simulation) Intersection() *Intersection {
	return s.intersection
}

// CurrentTick returns the tick about to be executed
func (s *Simulation) CurrentTick() int {
	return s.intersection.CurrentTick()
}

// Events returns a copy of the discharge log in order
func (s *Simulation) Events() []DischargeEvent {
	return s.log.Events()
}

// EventLog returns the simulation's discharge log
func (s *Simulation) EventLog() *EventLog {
	return s.log
}

// TotalSpawned returns how many vehicles have entered the intersection,
// whether by arrival or priority injection
func (s *Simulation) TotalSpawned() int {
	return s.intersection.VehiclesEntered()
}

// TotalDischarged returns how many vehicles have been released
func (s *Simulation) TotalDischarged() int {
	return s.log.Len()
}

// AverageWait returns the mean wait across all discharged vehicles so far
func (s *Simulation) AverageWait() float64 {
	return s.log.AverageWait()
}

// Summary aggregates the run so far
func (s *Simulation) Summary() Summary {
	return Summary{
		RunID:           s.runID,
		Strategy:        s.strategy.Name(),
		Ticks:           s.intersection.CurrentTick(),
		TotalSpawned:    s.intersection.VehiclesEntered(),
		TotalDischarged: s.log.Len(),
		QueuedVehicles:  s.intersection.QueuedVehicles(),
		AverageWait:     s.log.AverageWait(),
		MaxWait:         s.log.MaxWait(),
		QueuedByLane:    s.intersection.QueuedByLane(),
	}
}

// Snapshot captures the simulation's externally visible state
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:            s.intersection.CurrentTick(),
		ActivePhase:     s.intersection.ActivePhase(),
		PendingPhase:    s.intersection.PendingPhase(),
		Clearing:        s.intersection.Clearing(),
		Signals:         s.intersection.SignalStates(),
		LaneCounts:      s.intersection.QueuedByLane(),
		TotalSpawned:    s.intersection.VehiclesEntered(),
		TotalDischarged: s.log.Len(),
		AverageWait:     s.log.AverageWait(),
	}
}
