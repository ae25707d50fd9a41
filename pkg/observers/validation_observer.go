package observers

import (
	"fmt"
	"sync"

	"github.com/anggasct/junction"
)

// ValidationObserver validates signal plan behavior against declared
// expectations and collects any violations it sees
type ValidationObserver struct {
	junction.BaseObserver

	expectedPhases map[string]bool
	visitedPhases  map[string]bool
	allowedChanges map[string]map[string]bool
	violations     []string
	mutex          sync.RWMutex
}

// NewValidationObserver creates a new validation observer
func NewValidationObserver() *ValidationObserver {
	return &ValidationObserver{
		expectedPhases: make(map[string]bool),
		visitedPhases:  make(map[string]bool),
		allowedChanges: make(map[string]map[string]bool),
		violations:     make([]string, 0),
	}
}

// AddExpectedPhase declares a phase that must gain green at least once
func (o *ValidationObserver) AddExpectedPhase(phase string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.expectedPhases[phase] = true
}

// AddAllowedChange declares an allowed phase change. The empty string stands
// for the idle signal before the first activation. Changes from a phase with
// no declared allowances are not checked.
func (o *ValidationObserver) AddAllowedChange(from, to string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if _, exists := o.allowedChanges[from]; !exists {
		o.allowedChanges[from] = make(map[string]bool)
	}

	o.allowedChanges[from][to] = true
}

// addViolation adds a violation
func (o *ValidationObserver) addViolation(message string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.violations = append(o.violations, message)
}

// OnPhaseChanged validates phase changes
func (o *ValidationObserver) OnPhaseChanged(from, to string, tick int) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.visitedPhases[to] = true

	if allowed, exists := o.allowedChanges[from]; exists {
		if !allowed[to] {
			o.violations = append(o.violations, fmt.Sprintf(
				"Invalid phase change from '%s' to '%s' at tick %d",
				from, to, tick))
		}
	}
}

// OnVehicleDischarged validates discharge events
func (o *ValidationObserver) OnVehicleDischarged(event junction.DischargeEvent) {
	if event.WaitTime < 0 {
		o.addViolation(fmt.Sprintf(
			"Vehicle %d discharged from lane '%s' with negative wait %d",
			event.VehicleID, event.LaneKey, event.WaitTime))
	}
}

// OnError records reported errors as violations
func (o *ValidationObserver) OnError(err error) {
	o.addViolation(fmt.Sprintf("Error occurred: %v", err))
}

// GetViolations returns all validation violations
func (o *ValidationObserver) GetViolations() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make([]string, len(o.violations))
	copy(result, o.violations)
	return result
}

// GetUnvisitedPhases returns phases that were expected but never gained green
func (o *ValidationObserver) GetUnvisitedPhases() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	unvisited := make([]string, 0)
	for phase := range o.expectedPhases {
		if !o.visitedPhases[phase] {
			unvisited = append(unvisited, phase)
		}
	}

	return unvisited
}

// HasViolations returns whether any violations occurred
func (o *ValidationObserver) HasViolations() bool {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.violations) > 0
}

// Reset resets the validation state
func (o *ValidationObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.visitedPhases = make(map[string]bool)
	o.violations = make([]string, 0)
}
