// Package config loads simulation configuration from the environment
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/anggasct/junction"
)

// Environment variable names recognized by FromEnv
const (
	EnvMinGreen            = "JUNCTION_MIN_GREEN"
	EnvYellow              = "JUNCTION_YELLOW"
	EnvDischargeRate       = "JUNCTION_DISCHARGE_RATE"
	EnvStarvationThreshold = "JUNCTION_STARVATION_THRESHOLD"
	EnvWeightCount         = "JUNCTION_WEIGHT_COUNT"
	EnvWeightWait          = "JUNCTION_WEIGHT_WAIT"
	EnvDwell               = "JUNCTION_DWELL"
	EnvSpawnRates          = "JUNCTION_SPAWN_RATES"
	EnvEmergencyRate       = "JUNCTION_EMERGENCY_RATE"
	EnvLeftTurnRate        = "JUNCTION_LEFT_TURN_RATE"
	EnvSeed                = "JUNCTION_SEED"
)

// FromEnv builds a configuration from JUNCTION_* environment variables laid
// over the defaults, loading a .env file first when one exists. Spawn rates
// use the form "north=0.3,south=0.25". The result is validated before it is
// returned.
func FromEnv() (junction.Config, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := junction.DefaultConfig()

	var err error
	if cfg.MinGreen, err = getEnvInt(EnvMinGreen, cfg.MinGreen); err != nil {
		return junction.Config{}, err
	}
	if cfg.Yellow, err = getEnvInt(EnvYellow, cfg.Yellow); err != nil {
		return junction.Config{}, err
	}
	if cfg.DischargeRate, err = getEnvInt(EnvDischargeRate, cfg.DischargeRate); err != nil {
		return junction.Config{}, err
	}
	if cfg.StarvationThreshold, err = getEnvInt(EnvStarvationThreshold, cfg.StarvationThreshold); err != nil {
		return junction.Config{}, err
	}
	if cfg.Weights.Count, err = getEnvFloat(EnvWeightCount, cfg.Weights.Count); err != nil {
		return junction.Config{}, err
	}
	if cfg.Weights.Wait, err = getEnvFloat(EnvWeightWait, cfg.Weights.Wait); err != nil {
		return junction.Config{}, err
	}
	if cfg.Dwell, err = getEnvInt(EnvDwell, cfg.Dwell); err != nil {
		return junction.Config{}, err
	}
	if cfg.EmergencyRate, err = getEnvFloat(EnvEmergencyRate, cfg.EmergencyRate); err != nil {
		return junction.Config{}, err
	}
	if cfg.LeftTurnRate, err = getEnvFloat(EnvLeftTurnRate, cfg.LeftTurnRate); err != nil {
		return junction.Config{}, err
	}
	if cfg.Seed, err = getEnvInt64(EnvSeed, cfg.Seed); err != nil {
		return junction.Config{}, err
	}
	if value := os.Getenv(EnvSpawnRates); value != "" {
		if cfg.SpawnRates, err = parseSpawnRates(value); err != nil {
			return junction.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return junction.Config{}, err
	}
	return cfg, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, junction.NewConfigurationError(key, "must be an integer")
	}
	return parsed, nil
}

func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, junction.NewConfigurationError(key, "must be an integer")
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, junction.NewConfigurationError(key, "must be a number")
	}
	return parsed, nil
}

func parseSpawnRates(value string) (map[string]float64, error) {
	rates := make(map[string]float64)
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		lane, rate, found := strings.Cut(entry, "=")
		if !found {
			return nil, junction.NewConfigurationError(EnvSpawnRates,
				fmt.Sprintf("entry '%s' is not of the form lane=rate", entry))
		}

		parsed, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
		if err != nil {
			return nil, junction.NewConfigurationError(EnvSpawnRates,
				fmt.Sprintf("rate for lane '%s' is not a number", strings.TrimSpace(lane)))
		}
		rates[strings.TrimSpace(lane)] = parsed
	}
	return rates, nil
}
