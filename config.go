package junction

import "fmt"

// Config carries the tunable parameters of an intersection and its
// simulation. All durations are in ticks. The zero value is not valid;
// start from DefaultConfig and override what you need.
type Config struct {
	// MinGreen is the minimum number of ticks a phase holds green before
	// any switch away from it is honored
	MinGreen int `json:"min_green"`

	// Yellow is the exact length of the clearance interval between a green
	// ending and the next green beginning
	Yellow int `json:"yellow"`

	// DischargeRate is the maximum number of vehicles each lane of the
	// active phase releases per tick
	DischargeRate int `json:"discharge_rate"`

	// StarvationThreshold is the head wait, in ticks, beyond which a lane
	// overrides every other consideration of the weighted strategy
	StarvationThreshold int `json:"starvation_threshold"`

	// Weights scales queue length against head wait in the weighted score
	Weights Weights `json:"weights"`

	// Dwell is the green duration the fixed-timer strategy grants each
	// phase before rotating
	Dwell int `json:"dwell"`

	// SpawnRates maps lane keys to per-tick arrival probabilities. Lanes
	// absent from the map receive no arrivals.
	SpawnRates map[string]float64 `json:"spawn_rates"`

	// EmergencyRate is the probability that a spawned vehicle is an
	// emergency vehicle instead of a car
	EmergencyRate float64 `json:"emergency_rate"`

	// LeftTurnRate is the probability that a spawned vehicle intends to
	// turn left instead of going straight
	LeftTurnRate float64 `json:"left_turn_rate"`

	// Seed drives the simulation's random source. Zero selects a
	// time-based seed, making runs non-reproducible.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the standard tuning: a 10 tick minimum green, a
// 3 tick yellow, one discharge per lane per tick, and queue length weighted
// twice as heavily as head wait.
func DefaultConfig() Config {
	return Config{
		MinGreen:            10,
		Yellow:              3,
		DischargeRate:       1,
		StarvationThreshold: 60,
		Weights:             Weights{Count: 1.0, Wait: 0.5},
		Dwell:               20,
		EmergencyRate:       0.02,
		LeftTurnRate:        0.3,
	}
}

// Validate checks every field and returns a ConfigurationError describing
// the first problem found, or nil when the configuration is usable.
func (c Config) Validate() error {
	if c.MinGreen < 1 {
		return NewConfigurationErrorWithCode(ErrCodeInvalidDuration,
			"min_green", "must be at least 1 tick")
	}
	if c.Yellow < 1 {
		return NewConfigurationErrorWithCode(ErrCodeInvalidDuration,
			"yellow", "must be at least 1 tick")
	}
	if c.Dwell < 1 {
		return NewConfigurationErrorWithCode(ErrCodeInvalidDuration,
			"dwell", "must be at least 1 tick")
	}
	if c.StarvationThreshold < 1 {
		return NewConfigurationErrorWithCode(ErrCodeInvalidDuration,
			"starvation_threshold", "must be at least 1 tick")
	}
	if c.DischargeRate < 1 {
		return NewConfigurationErrorWithCode(ErrCodeInvalidRate,
			"discharge_rate", "must release at least 1 vehicle per tick")
	}
	if c.Weights.Count < 0 || c.Weights.Wait < 0 {
		return NewConfigurationErrorWithCode(ErrCodeInvalidConfiguration,
			"weights", "must not be negative")
	}
	for lane, rate := range c.SpawnRates {
		if rate < 0 || rate > 1 {
			return NewConfigurationErrorWithCode(ErrCodeInvalidProbability,
				"spawn_rates",
				fmt.Sprintf("rate %v for lane '%s' is outside [0, 1]", rate, lane))
		}
	}
	if c.EmergencyRate < 0 || c.EmergencyRate > 1 {
		return NewConfigurationErrorWithCode(ErrCodeInvalidProbability,
			"emergency_rate", "must be within [0, 1]")
	}
	if c.LeftTurnRate < 0 || c.LeftTurnRate > 1 {
		return NewConfigurationErrorWithCode(ErrCodeInvalidProbability,
			"left_turn_rate", "must be within [0, 1]")
	}
	return nil
}
