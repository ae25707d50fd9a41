package junction

import "testing"

func TestTestHelpers_Functions(t *testing.T) {
	t.Run("TestObserver Basic Functionality", func(t *testing.T) {
		observer := NewTestObserver()

		// Test initial state
		if observer.PhaseChangeCount() != 0 {
			t.Errorf("Expected 0 phase changes initially, got %d", observer.PhaseChangeCount())
		}

		if observer.DischargeCount() != 0 {
			t.Errorf("Expected 0 discharges initially, got %d", observer.DischargeCount())
		}

		if observer.LastPhaseChange() != nil {
			t.Error("Expected no last phase change initially")
		}

		if observer.LastDischarge() != nil {
			t.Error("Expected no last discharge initially")
		}

		// Test notification recording
		observer.OnPhaseChanged("ns", "ew", 3)
		observer.OnVehicleDischarged(DischargeEvent{Tick: 4, VehicleID: 1, LaneKey: "east", WaitTime: 2})
		observer.OnVehicleSpawned(Vehicle{ID: 2, Class: ClassCar}, "north")
		observer.OnPriorityInjected(Vehicle{ID: 3, Class: ClassAmbulance}, "south", 5)
		observer.OnClearanceStarted("ew", "ns", 6)
		observer.OnTick(6)
		observer.OnError(NewUnknownPhaseError("diagonal"))

		if observer.PhaseChangeCount() != 1 {
			t.Errorf("Expected 1 phase change, got %d", observer.PhaseChangeCount())
		}

		if observer.DischargeCount() != 1 {
			t.Errorf("Expected 1 discharge, got %d", observer.DischargeCount())
		}

		if len(observer.Spawns) != 1 {
			t.Errorf("Expected 1 spawn, got %d", len(observer.Spawns))
		}

		if len(observer.Injections) != 1 {
			t.Errorf("Expected 1 injection, got %d", len(observer.Injections))
		}

		if len(observer.Clearances) != 1 {
			t.Errorf("Expected 1 clearance, got %d", len(observer.Clearances))
		}

		if len(observer.Ticks) != 1 {
			t.Errorf("Expected 1 tick, got %d", len(observer.Ticks))
		}

		if len(observer.Errors) != 1 {
			t.Errorf("Expected 1 error, got %d", len(observer.Errors))
		}
	})

	t.Run("TestObserver Record Access", func(t *testing.T) {
		observer := NewTestObserver()

		observer.OnPhaseChanged("ns", "ew", 3)
		observer.OnVehicleDischarged(DischargeEvent{Tick: 4, VehicleID: 7, LaneKey: "east", WaitTime: 2})
		observer.OnClearanceStarted("ew", "ns", 6)

		// Verify recorded data
		change := observer.LastPhaseChange()
		if change.From != "ns" || change.To != "ew" || change.Tick != 3 {
			t.Error("Phase change data mismatch")
		}

		discharge := observer.LastDischarge()
		if discharge.VehicleID != 7 || discharge.LaneKey != "east" {
			t.Error("Discharge data mismatch")
		}

		if observer.Clearances[0].From != "ew" || observer.Clearances[0].Pending != "ns" {
			t.Error("Clearance data mismatch")
		}
	})

	t.Run("TestObserver Reset", func(t *testing.T) {
		observer := NewTestObserver()

		observer.OnPhaseChanged("ns", "ew", 3)
		observer.OnTick(3)

		if observer.PhaseChangeCount() != 1 {
			t.Error("Expected 1 phase change before reset")
		}

		observer.Reset()

		if observer.PhaseChangeCount() != 0 {
			t.Error("Expected 0 phase changes after reset")
		}

		if len(observer.Ticks) != 0 {
			t.Error("Expected 0 ticks after reset")
		}
	})

	t.Run("Test Fixtures", func(t *testing.T) {
		layout := CreateTestLayout()
		if layout.NumPhases() != 2 {
			t.Errorf("Expected test layout to declare 2 phases, got %d", layout.NumPhases())
		}
		if len(layout.LaneKeys()) != 4 {
			t.Errorf("Expected test layout to declare 4 lanes, got %d", len(layout.LaneKeys()))
		}

		cfg := CreateTestConfig()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected test configuration to validate, got error: %v", err)
		}
		if cfg.Seed == 0 {
			t.Error("Expected test configuration to pin a seed")
		}

		intersection := CreateTestIntersection(t)
		if intersection.CurrentTick() != 0 {
			t.Error("Expected a fresh test intersection")
		}

		sim := CreateTestSimulation(t, cfg, NewFixedTimerStrategy(cfg.Dwell))
		if sim.CurrentTick() != 0 {
			t.Error("Expected a fresh test simulation")
		}
	})
}
