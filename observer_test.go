package junction

import "testing"

var (
	_ Observer         = (*BaseObserver)(nil)
	_ ExtendedObserver = (*BaseObserver)(nil)
	_ ExtendedObserver = (*TestObserver)(nil)
)

// coreOnlyObserver implements Observer but not ExtendedObserver
type coreOnlyObserver struct {
	phaseChanges int
	discharges   int
}

func (o *coreOnlyObserver) OnPhaseChanged(from, to string, tick int) {
	o.phaseChanges++
}

func (o *coreOnlyObserver) OnVehicleDischarged(event DischargeEvent) {
	o.discharges++
}

// panickyObserver panics on every phase change
type panickyObserver struct {
	BaseObserver
}

func (o *panickyObserver) OnPhaseChanged(from, to string, tick int) {
	panic("observer failure")
}

func TestObserverManager_AddRemove(t *testing.T) {
	manager := NewObserverManager()
	observer := NewTestObserver()

	manager.AddObserver(observer)
	if manager.Count() != 1 {
		t.Errorf("Expected 1 observer, got %d", manager.Count())
	}

	manager.RemoveObserver(observer)
	if manager.Count() != 0 {
		t.Errorf("Expected 0 observers after removal, got %d", manager.Count())
	}
}

func TestObserverManager_NilObserverIgnored(t *testing.T) {
	manager := NewObserverManager()
	manager.AddObserver(nil)

	if manager.Count() != 0 {
		t.Errorf("Expected nil observer to be ignored, got %d", manager.Count())
	}
}

func TestObserverManager_RemoveUnknownObserver(t *testing.T) {
	manager := NewObserverManager()
	manager.AddObserver(NewTestObserver())

	manager.RemoveObserver(NewTestObserver())
	if manager.Count() != 1 {
		t.Errorf("Expected removal of an unregistered observer to change nothing, got %d", manager.Count())
	}
}

func TestObserverManager_NotifiesAllObservers(t *testing.T) {
	manager := NewObserverManager()
	first := NewTestObserver()
	second := NewTestObserver()
	manager.AddObserver(first)
	manager.AddObserver(second)

	manager.NotifyPhaseChanged("ns", "ew", 7)

	for n, observer := range []*TestObserver{first, second} {
		if observer.PhaseChangeCount() != 1 {
			t.Errorf("Expected observer %d to see 1 phase change, got %d", n, observer.PhaseChangeCount())
		}
	}
}

func TestObserverManager_CoreObserverSkipsExtendedNotifications(t *testing.T) {
	manager := NewObserverManager()
	core := &coreOnlyObserver{}
	extended := NewTestObserver()
	manager.AddObserver(core)
	manager.AddObserver(extended)

	manager.NotifyTick(3)
	manager.NotifyVehicleSpawned(Vehicle{ID: 1, Class: ClassCar}, "north")
	manager.NotifyClearanceStarted("ns", "ew", 3)
	manager.NotifyPriorityInjected(Vehicle{ID: 2, Class: ClassAmbulance}, "east", 3)
	manager.NotifyError(NewUnknownPhaseError("diagonal"))

	if len(extended.Ticks) != 1 || len(extended.Spawns) != 1 ||
		len(extended.Clearances) != 1 || len(extended.Injections) != 1 ||
		len(extended.Errors) != 1 {
		t.Error("Expected extended observer to receive every notification")
	}

	manager.NotifyPhaseChanged("ns", "ew", 4)
	manager.NotifyVehicleDischarged(DischargeEvent{Tick: 4, VehicleID: 1, LaneKey: "north", WaitTime: 1})

	if core.phaseChanges != 1 || core.discharges != 1 {
		t.Error("Expected core observer to receive the core notifications")
	}
}

func TestObserverManager_PanickingObserverIsIsolated(t *testing.T) {
	manager := NewObserverManager()
	healthy := NewTestObserver()
	manager.AddObserver(&panickyObserver{})
	manager.AddObserver(healthy)

	manager.NotifyPhaseChanged("ns", "ew", 1)

	if healthy.PhaseChangeCount() != 1 {
		t.Error("Expected healthy observer to be notified despite the panic")
	}
}

func TestObserverManager_NilErrorNotReported(t *testing.T) {
	manager := NewObserverManager()
	observer := NewTestObserver()
	manager.AddObserver(observer)

	manager.NotifyError(nil)

	if len(observer.Errors) != 0 {
		t.Errorf("Expected nil error to be dropped, got %d reports", len(observer.Errors))
	}
}

// selfRemovingObserver removes itself from the manager when notified
type selfRemovingObserver struct {
	BaseObserver
	manager  *ObserverManager
	notified int
}

func (o *selfRemovingObserver) OnPhaseChanged(from, to string, tick int) {
	o.notified++
	o.manager.RemoveObserver(o)
}

func TestObserverManager_RemovalDuringNotification(t *testing.T) {
	manager := NewObserverManager()
	remover := &selfRemovingObserver{manager: manager}
	trailing := NewTestObserver()
	manager.AddObserver(remover)
	manager.AddObserver(trailing)

	manager.NotifyPhaseChanged("ns", "ew", 1)

	if remover.notified != 1 {
		t.Errorf("Expected remover to be notified once, got %d", remover.notified)
	}
	if trailing.PhaseChangeCount() != 1 {
		t.Error("Expected trailing observer to still be notified")
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 observer left, got %d", manager.Count())
	}

	manager.NotifyPhaseChanged("ew", "ns", 2)
	if remover.notified != 1 {
		t.Error("Expected removed observer to receive no further notifications")
	}
}

func TestBaseObserver_NoOps(t *testing.T) {
	observer := &BaseObserver{}

	// None of these may panic or have any effect.
	observer.OnPhaseChanged("ns", "ew", 0)
	observer.OnVehicleDischarged(DischargeEvent{})
	observer.OnVehicleSpawned(Vehicle{}, "north")
	observer.OnPriorityInjected(Vehicle{}, "north", 0)
	observer.OnClearanceStarted("ns", "ew", 0)
	observer.OnTick(0)
	observer.OnError(nil)
}
