// Package observers provides ready-made observers for monitoring simulations
package observers

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/anggasct/junction"
)

// LogLevel represents the logging level
type LogLevel int

const (
	// LogError logs only errors
	LogError LogLevel = iota
	// LogWarning logs errors and warnings
	LogWarning
	// LogInfo logs errors, warnings, and info
	LogInfo
	// LogDebug logs errors, warnings, info, and debug
	LogDebug
)

// LoggingObserver logs simulation events
type LoggingObserver struct {
	level     LogLevel
	prefix    string
	mutex     sync.RWMutex
	formatter LogFormatter
	out       io.Writer
}

// LogFormatter formats log messages
type LogFormatter func(level LogLevel, format string, args ...interface{}) string

// DefaultLogFormatter provides default log formatting
func DefaultLogFormatter(level LogLevel, format string, args ...interface{}) string {
	levelStr := "INFO"
	switch level {
	case LogError:
		levelStr = "ERROR"
	case LogWarning:
		levelStr = "WARN"
	case LogInfo:
		levelStr = "INFO"
	case LogDebug:
		levelStr = "DEBUG"
	}

	return fmt.Sprintf("[%s] %s", levelStr, fmt.Sprintf(format, args...))
}

// NewLoggingObserver creates a new logging observer writing to stdout
func NewLoggingObserver(level LogLevel, prefix string) *LoggingObserver {
	return &LoggingObserver{
		level:     level,
		prefix:    prefix,
		formatter: DefaultLogFormatter,
		out:       os.Stdout,
	}
}

// SetFormatter sets the log formatter
func (o *LoggingObserver) SetFormatter(formatter LogFormatter) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.formatter = formatter
}

// SetOutput redirects log output to the given writer
func (o *LoggingObserver) SetOutput(out io.Writer) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.out = out
}

// log logs a message at the specified level
func (o *LoggingObserver) log(level LogLevel, format string, args ...interface{}) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	if level <= o.level {
		prefix := ""
		if o.prefix != "" {
			prefix = fmt.Sprintf("[%s] ", o.prefix)
		}

		message := ""
		if o.formatter != nil {
			message = o.formatter(level, format, args...)
		} else {
			message = fmt.Sprintf(format, args...)
		}

		fmt.Fprintf(o.out, "%s%s\n", prefix, message)
	}
}

// OnPhaseChanged logs phase activations
func (o *LoggingObserver) OnPhaseChanged(from, to string, tick int) {
	if from == "" {
		from = "idle"
	}

	o.log(LogInfo, "Phase change: %s -> %s at tick %d", from, to, tick)
}

// OnVehicleDischarged logs discharges
func (o *LoggingObserver) OnVehicleDischarged(event junction.DischargeEvent) {
	o.log(LogDebug, "Vehicle %d discharged from lane '%s' at tick %d after waiting %d",
		event.VehicleID, event.LaneKey, event.Tick, event.WaitTime)
}

// OnVehicleSpawned logs arrivals
func (o *LoggingObserver) OnVehicleSpawned(vehicle junction.Vehicle, laneKey string) {
	o.log(LogDebug, "Vehicle %d (%s) joined lane '%s' at tick %d",
		vehicle.ID, vehicle.Class, laneKey, vehicle.ArrivalTime)
}

// OnPriorityInjected logs emergency arrivals
func (o *LoggingObserver) OnPriorityInjected(vehicle junction.Vehicle, laneKey string, tick int) {
	o.log(LogWarning, "Priority vehicle %d (%s) took the head of lane '%s' at tick %d",
		vehicle.ID, vehicle.Class, laneKey, tick)
}

// OnClearanceStarted logs yellow intervals
func (o *LoggingObserver) OnClearanceStarted(from, pending string, tick int) {
	o.log(LogInfo, "Clearance: %s yielding to %s at tick %d", from, pending, tick)
}

// OnTick logs ticks
func (o *LoggingObserver) OnTick(tick int) {
	o.log(LogDebug, "Tick %d complete", tick)
}

// OnError logs errors
func (o *LoggingObserver) OnError(err error) {
	o.log(LogError, "Error: %v", err)
}
