package junction

// Observer receives notifications about the externally significant events of
// a simulation: phase changes and vehicle discharges. Implementations must
// not retain references into simulation internals.
type Observer interface {
	// OnPhaseChanged is called after a phase gains green, with the phase
	// that previously held it (empty on the first activation)
	OnPhaseChanged(from, to string, tick int)

	// OnVehicleDischarged is called once per vehicle as it leaves, with
	// the event exactly as recorded in the log
	OnVehicleDischarged(event DischargeEvent)
}

// ExtendedObserver receives the finer-grained lifecycle notifications in
// addition to the core ones. Observers that only implement Observer are
// silently skipped for these.
type ExtendedObserver interface {
	Observer

	// OnVehicleSpawned is called when an arrival joins a lane tail
	OnVehicleSpawned(vehicle Vehicle, laneKey string)

	// OnPriorityInjected is called when an emergency vehicle is placed at
	// a lane head
	OnPriorityInjected(vehicle Vehicle, laneKey string, tick int)

	// OnClearanceStarted is called when a green begins its yellow interval
	// ahead of a pending phase
	OnClearanceStarted(from, pending string, tick int)

	// OnTick is called at the end of every simulation step
	OnTick(tick int)

	// OnError is called when a non-fatal error is reported, such as a
	// request for an unknown phase
	OnError(err error)
}

// BaseObserver provides no-op implementations of the full observer surface
// so that implementations can override only the notifications they need.
type BaseObserver struct{}

// OnPhaseChanged does nothing by default
func (o *BaseObserver) OnPhaseChanged(from, to string, tick int) {}

// OnVehicleDischarged does nothing by default
func (o *BaseObserver) OnVehicleDischarged(event DischargeEvent) {}

// OnVehicleSpawned does nothing by default
func (o *BaseObserver) OnVehicleSpawned(vehicle Vehicle, laneKey string) {}

// OnPriorityInjected does nothing by default
func (o *BaseObserver) OnPriorityInjected(vehicle Vehicle, laneKey string, tick int) {}

// OnClearanceStarted does nothing by default
func (o *BaseObserver) OnClearanceStarted(from, pending string, tick int) {}

// OnTick does nothing by default
func (o *BaseObserver) OnTick(tick int) {}

// OnError does nothing by default
func (o *BaseObserver) OnError(err error) {}

// ObserverManager fans notifications out to registered observers. A panicking
// observer is recovered so it cannot disturb the simulation or the remaining
// observers.
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates an empty observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver registers an observer for all subsequent notifications
func (m *ObserverManager) AddObserver(observer Observer) {
	if observer == nil {
		return
	}
	m.observers = append(m.observers, observer)
}

// RemoveObserver unregisters a previously added observer
func (m *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range m.observers {
		if obs == observer {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// Count returns the number of registered observers
func (m *ObserverManager) Count() int {
	return len(m.observers)
}

// notify calls fn for each observer, isolating panics per observer. The
// slice is copied first so observers may add or remove observers from
// within a callback.
func (m *ObserverManager) notify(fn func(Observer)) {
	observers := make([]Observer, len(m.observers))
	copy(observers, m.observers)

	for _, observer := range observers {
		func(obs Observer) {
			defer func() {
				_ = recover()
			}()
			fn(obs)
		}(observer)
	}
}

// notifyExtended is like notify but only reaches observers implementing
// ExtendedObserver.
func (m *ObserverManager) notifyExtended(fn func(ExtendedObserver)) {
	m.notify(func(obs Observer) {
		if ext, ok := obs.(ExtendedObserver); ok {
			fn(ext)
		}
	})
}

// NotifyPhaseChanged notifies observers that a phase gained green
func (m *ObserverManager) NotifyPhaseChanged(from, to string, tick int) {
	m.notify(func(obs Observer) {
		obs.OnPhaseChanged(from, to, tick)
	})
}

// NotifyVehicleDischarged notifies observers of a recorded discharge
func (m *ObserverManager) NotifyVehicleDischarged(event DischargeEvent) {
	m.notify(func(obs Observer) {
		obs.OnVehicleDischarged(event)
	})
}

// NotifyVehicleSpawned notifies extended observers of a new arrival
func (m *ObserverManager) NotifyVehicleSpawned(vehicle Vehicle, laneKey string) {
	m.notifyExtended(func(obs ExtendedObserver) {
		obs.OnVehicleSpawned(vehicle, laneKey)
	})
}

// NotifyPriorityInjected notifies extended observers of a head injection
func (m *ObserverManager) NotifyPriorityInjected(vehicle Vehicle, laneKey string, tick int) {
	m.notifyExtended(func(obs ExtendedObserver) {
		obs.OnPriorityInjected(vehicle, laneKey, tick)
	})
}

// NotifyClearanceStarted notifies extended observers that a yellow began
func (m *ObserverManager) NotifyClearanceStarted(from, pending string, tick int) {
	m.notifyExtended(func(obs ExtendedObserver) {
		obs.OnClearanceStarted(from, pending, tick)
	})
}

// NotifyTick notifies extended observers that a step completed
func (m *ObserverManager) NotifyTick(tick int) {
	m.notifyExtended(func(obs ExtendedObserver) {
		obs.OnTick(tick)
	})
}

// NotifyError reports a non-fatal error to extended observers
func (m *ObserverManager) NotifyError(err error) {
	if err == nil {
		return
	}
	m.notifyExtended(func(obs ExtendedObserver) {
		obs.OnError(err)
	})
}
