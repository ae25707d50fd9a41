package observers

import (
	"sync"

	"github.com/anggasct/junction"
)

// MetricsObserver collects aggregate metrics about a running simulation
type MetricsObserver struct {
	phaseActivations map[string]int
	dischargesByLane map[string]int
	spawnsByLane     map[string]int
	waitTotal        int
	waitMax          int
	dischargeCount   int
	priorityCount    int
	clearanceCount   int
	errorCount       int
	tickCount        int
	mutex            sync.RWMutex
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{
		phaseActivations: make(map[string]int),
		dischargesByLane: make(map[string]int),
		spawnsByLane:     make(map[string]int),
	}
}

// OnPhaseChanged records phase activation metrics
func (o *MetricsObserver) OnPhaseChanged(from, to string, tick int) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.phaseActivations[to]++
}

// OnVehicleDischarged records discharge metrics
func (o *MetricsObserver) OnVehicleDischarged(event junction.DischargeEvent) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.dischargesByLane[event.LaneKey]++
	o.dischargeCount++
	o.waitTotal += event.WaitTime
	if event.WaitTime > o.waitMax {
		o.waitMax = event.WaitTime
	}
}

// OnVehicleSpawned records arrival metrics
func (o *MetricsObserver) OnVehicleSpawned(vehicle junction.Vehicle, laneKey string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.spawnsByLane[laneKey]++
}

// OnPriorityInjected records emergency arrival metrics
func (o *MetricsObserver) OnPriorityInjected(vehicle junction.Vehicle, laneKey string, tick int) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.spawnsByLane[laneKey]++
	o.priorityCount++
}

// OnClearanceStarted records clearance metrics
func (o *MetricsObserver) OnClearanceStarted(from, pending string, tick int) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.clearanceCount++
}

// OnTick records tick metrics
func (o *MetricsObserver) OnTick(tick int) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.tickCount++
}

// OnError records error metrics
func (o *MetricsObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.errorCount++
}

// GetPhaseActivations returns the number of times each phase gained green
func (o *MetricsObserver) GetPhaseActivations() map[string]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[string]int)
	for phase, count := range o.phaseActivations {
		result[phase] = count
	}
	return result
}

// GetDischargeCounts returns the number of vehicles discharged per lane
func (o *MetricsObserver) GetDischargeCounts() map[string]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[string]int)
	for lane, count := range o.dischargesByLane {
		result[lane] = count
	}
	return result
}

// GetSpawnCounts returns the number of vehicles that entered per lane
func (o *MetricsObserver) GetSpawnCounts() map[string]int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make(map[string]int)
	for lane, count := range o.spawnsByLane {
		result[lane] = count
	}
	return result
}

// GetAverageWait returns the mean discharge wait, or zero before any discharge
func (o *MetricsObserver) GetAverageWait() float64 {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	if o.dischargeCount == 0 {
		return 0
	}
	return float64(o.waitTotal) / float64(o.dischargeCount)
}

// GetMaxWait returns the longest discharge wait seen so far
func (o *MetricsObserver) GetMaxWait() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.waitMax
}

// GetPriorityCount returns the number of priority vehicles injected
func (o *MetricsObserver) GetPriorityCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.priorityCount
}

// GetClearanceCount returns the number of yellow intervals begun
func (o *MetricsObserver) GetClearanceCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.clearanceCount
}

// GetErrorCount returns the number of errors
func (o *MetricsObserver) GetErrorCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.errorCount
}

// GetTickCount returns the number of completed ticks
func (o *MetricsObserver) GetTickCount() int {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	return o.tickCount
}

// Reset resets all metrics
func (o *MetricsObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.phaseActivations = make(map[string]int)
	o.dischargesByLane = make(map[string]int)
	o.spawnsByLane = make(map[string]int)
	o.waitTotal = 0
	o.waitMax = 0
	o.dischargeCount = 0
	o.priorityCount = 0
	o.clearanceCount = 0
	o.errorCount = 0
	o.tickCount = 0
}
