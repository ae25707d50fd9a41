package junction

import "testing"

// TestObserver captures every notification so tests can inspect what the
// simulation reported and in what order.
type TestObserver struct {
	PhaseChanges []PhaseChangeRecord
	Discharges   []DischargeEvent
	Spawns       []SpawnRecord
	Injections   []InjectionRecord
	Clearances   []ClearanceRecord
	Ticks        []int
	Errors       []error
}

type PhaseChangeRecord struct {
	From string
	To   string
	Tick int
}

type SpawnRecord struct {
	Vehicle Vehicle
	LaneKey string
}

type InjectionRecord struct {
	Vehicle Vehicle
	LaneKey string
	Tick    int
}

type ClearanceRecord struct {
	From    string
	Pending string
	Tick    int
}

// NewTestObserver creates an empty test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		PhaseChanges: make([]PhaseChangeRecord, 0),
		Discharges:   make([]DischargeEvent, 0),
		Spawns:       make([]SpawnRecord, 0),
		Injections:   make([]InjectionRecord, 0),
		Clearances:   make([]ClearanceRecord, 0),
		Ticks:        make([]int, 0),
		Errors:       make([]error, 0),
	}
}

func (o *TestObserver) OnPhaseChanged(from, to string, tick int) {
	o.PhaseChanges = append(o.PhaseChanges, PhaseChangeRecord{From: from, To: to, Tick: tick})
}

func (o *TestObserver) OnVehicleDischarged(event DischargeEvent) {
	o.Discharges = append(o.Discharges, event)
}

func (o *TestObserver) OnVehicleSpawned(vehicle Vehicle, laneKey string) {
	o.Spawns = append(o.Spawns, SpawnRecord{Vehicle: vehicle, LaneKey: laneKey})
}

func (o *TestObserver) OnPriorityInjected(vehicle Vehicle, laneKey string, tick int) {
	o.Injections = append(o.Injections, InjectionRecord{Vehicle: vehicle, LaneKey: laneKey, Tick: tick})
}

func (o *TestObserver) OnClearanceStarted(from, pending string, tick int) {
	o.Clearances = append(o.Clearances, ClearanceRecord{From: from, Pending: pending, Tick: tick})
}

func (o *TestObserver) OnTick(tick int) {
	o.Ticks = append(o.Ticks, tick)
}

func (o *TestObserver) OnError(err error) {
	o.Errors = append(o.Errors, err)
}

// Helper methods for test assertions

func (o *TestObserver) Reset() {
	o.PhaseChanges = nil
	o.Discharges = nil
	o.Spawns = nil
	o.Injections = nil
	o.Clearances = nil
	o.Ticks = nil
	o.Errors = nil
}

func (o *TestObserver) PhaseChangeCount() int {
	return len(o.PhaseChanges)
}

func (o *TestObserver) DischargeCount() int {
	return len(o.Discharges)
}

func (o *TestObserver) LastPhaseChange() *PhaseChangeRecord {
	if len(o.PhaseChanges) == 0 {
		return nil
	}
	return &o.PhaseChanges[len(o.PhaseChanges)-1]
}

func (o *TestObserver) LastDischarge() *DischargeEvent {
	if len(o.Discharges) == 0 {
		return nil
	}
	return &o.Discharges[len(o.Discharges)-1]
}

// Test fixtures - common layouts and configurations for testing

// CreateTestLayout returns a two phase layout with two lanes per phase
func CreateTestLayout() *Layout {
	layout, err := NewLayoutBuilder().
		Phase("ns", "north", "south").
		Phase("ew", "east", "west").
		Build()
	if err != nil {
		panic(err)
	}
	return layout
}

// CreateTestConfig returns a small deterministic configuration with no
// arrivals configured
func CreateTestConfig() Config {
	return Config{
		MinGreen:            3,
		Yellow:              2,
		DischargeRate:       1,
		StarvationThreshold: 10,
		Weights:             Weights{Count: 1.0, Wait: 0.5},
		Dwell:               5,
		EmergencyRate:       0,
		LeftTurnRate:        0,
		Seed:                1,
	}
}

// CreateTestIntersection creates an intersection over the test layout
func CreateTestIntersection(t *testing.T) *Intersection {
	t.Helper()
	intersection, err := NewIntersection(CreateTestLayout(), CreateTestConfig())
	if err != nil {
		t.Fatalf("Expected intersection to build, got error: %v", err)
	}
	return intersection
}

// CreateTestSimulation creates a simulation over the test layout with the
// given strategy
func CreateTestSimulation(t *testing.T, cfg Config, strategy Strategy) *Simulation {
	t.Helper()
	sim, err := NewSimulation(CreateTestLayout(), cfg, strategy)
	if err != nil {
		t.Fatalf("Expected simulation to build, got error: %v", err)
	}
	return sim
}

// Test assertions and utilities

// AssertActivePhase checks which phase currently holds the intersection
func AssertActivePhase(t *testing.T, intersection *Intersection, expected string) {
	t.Helper()
	if active := intersection.ActivePhase(); active != expected {
		t.Errorf("Expected active phase '%s', got '%s'", expected, active)
	}
}

// AssertSignalState checks the signal state of one phase
func AssertSignalState(t *testing.T, intersection *Intersection, phase string, expected SignalState) {
	t.Helper()
	state, ok := intersection.SignalState(phase)
	if !ok {
		t.Errorf("Expected signal for phase '%s' to exist", phase)
		return
	}
	if state != expected {
		t.Errorf("Expected phase '%s' signal to be %s, got %s", phase, expected, state)
	}
}

// AssertLaneCount checks the queue length of one lane
func AssertLaneCount(t *testing.T, intersection *Intersection, laneKey string, expected int) {
	t.Helper()
	if count := intersection.LaneCount(laneKey); count != expected {
		t.Errorf("Expected lane '%s' to hold %d vehicles, got %d", laneKey, expected, count)
	}
}

// AssertQueueOrder checks the exact vehicle order of one lane
func AssertQueueOrder(t *testing.T, intersection *Intersection, laneKey string, ids []VehicleID) {
	t.Helper()
	vehicles := intersection.LaneVehicles(laneKey)
	if len(vehicles) != len(ids) {
		t.Errorf("Expected lane '%s' to hold %d vehicles, got %d", laneKey, len(ids), len(vehicles))
		return
	}
	for n, vehicle := range vehicles {
		if vehicle.ID != ids[n] {
			t.Errorf("Expected vehicle %d at position %d of lane '%s', got %d",
				ids[n], n, laneKey, vehicle.ID)
		}
	}
}

// AssertConservation checks that every vehicle that entered is either
// discharged or still queued
func AssertConservation(t *testing.T, sim *Simulation) {
	t.Helper()
	entered := sim.TotalSpawned()
	accounted := sim.TotalDischarged() + sim.Intersection().QueuedVehicles()
	if entered != accounted {
		t.Errorf("Expected %d vehicles accounted for, got %d discharged+queued",
			entered, accounted)
	}
}

// AssertMutualExclusion checks that at most one signal is green and that a
// green signal always belongs to the active phase outside a clearance
func AssertMutualExclusion(t *testing.T, intersection *Intersection) {
	t.Helper()
	greens := make([]string, 0)
	for phase, state := range intersection.SignalStates() {
		if state == SignalGreen {
			greens = append(greens, phase)
		}
	}
	if len(greens) > 1 {
		t.Errorf("Expected at most one green signal, got %d: %v", len(greens), greens)
	}
	if len(greens) == 1 {
		if intersection.Clearing() {
			t.Errorf("Expected no green signal during clearance, got '%s'", greens[0])
		}
		if greens[0] != intersection.ActivePhase() {
			t.Errorf("Expected green signal to match active phase '%s', got '%s'",
				intersection.ActivePhase(), greens[0])
		}
	}
}
