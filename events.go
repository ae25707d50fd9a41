package junction

import (
	"encoding/json"

	"github.com/samber/lo"
)

// DischargeEvent records one vehicle leaving the intersection. The field set
// and JSON column names are the stable export shape consumed by comparison
// tooling; do not extend or rename them.
type DischargeEvent struct {
	Tick      int       `json:"tick"`
	VehicleID VehicleID `json:"vehicle_id"`
	LaneKey   string    `json:"lane_key"`
	WaitTime  int       `json:"wait_time"`
}

// EventLog is the append-only, ordered record of every discharge in a run.
// It is owned by the simulation and written only at discharge time.
type EventLog struct {
	events []DischargeEvent
}

func newEventLog() *EventLog {
	return &EventLog{
		events: make([]DischargeEvent, 0),
	}
}

func (l *EventLog) append(e DischargeEvent) {
	l.events = append(l.events, e)
}

// Len returns the number of recorded discharges
func (l *EventLog) Len() int {
	return len(l.events)
}

// Events returns a copy of the log in discharge order
func (l *EventLog) Events() []DischargeEvent {
	out := make([]DischargeEvent, len(l.events))
	copy(out, l.events)
	return out
}

// TotalWait returns the sum of all recorded wait times
func (l *EventLog) TotalWait() int {
	return lo.SumBy(l.events, func(e DischargeEvent) int {
		return e.WaitTime
	})
}

// AverageWait returns the mean wait across discharged vehicles, or 0 when
// nothing has discharged yet
func (l *EventLog) AverageWait() float64 {
	if len(l.events) == 0 {
		return 0
	}
	return float64(l.TotalWait()) / float64(len(l.events))
}

// MaxWait returns the largest recorded wait time
func (l *EventLog) MaxWait() int {
	if len(l.events) == 0 {
		return 0
	}
	longest := lo.MaxBy(l.events, func(a, b DischargeEvent) bool {
		return a.WaitTime > b.WaitTime
	})
	return longest.WaitTime
}

// DischargesByLane returns how many vehicles each lane has discharged
func (l *EventLog) DischargesByLane() map[string]int {
	counts := make(map[string]int)
	for _, e := range l.events {
		counts[e.LaneKey]++
	}
	return counts
}

// MarshalJSON renders the log as the ordered event table
func (l *EventLog) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.events)
}

// Summary aggregates one finished run for reporting and strategy comparison.
type Summary struct {
	RunID           string         `json:"run_id"`
	Strategy        string         `json:"strategy"`
	Ticks           int            `json:"ticks"`
	TotalSpawned    int            `json:"total_spawned"`
	TotalDischarged int            `json:"total_discharged"`
	QueuedVehicles  int            `json:"queued_vehicles"`
	AverageWait     float64        `json:"average_wait"`
	MaxWait         int            `json:"max_wait"`
	QueuedByLane    map[string]int `json:"queued_by_lane"`
}

// Snapshot captures the externally visible state of a simulation at one tick.
type Snapshot struct {
	Tick            int                    `json:"tick"`
	ActivePhase     string                 `json:"active_phase"`
	PendingPhase    string                 `json:"pending_phase"`
	Clearing        bool                   `json:"clearing"`
	Signals         map[string]SignalState `json:"signals"`
	LaneCounts      map[string]int         `json:"lane_counts"`
	TotalSpawned    int                    `json:"total_spawned"`
	TotalDischarged int                    `json:"total_discharged"`
	AverageWait     float64                `json:"average_wait"`
}
