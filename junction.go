// Package junction simulates a single signalized road intersection in
// discrete ticks.
//
// An Intersection owns a set of FIFO lanes, one signal per phase, and a tick
// counter. A phase is a named group of lanes that may safely hold green
// together; the phase table is validated at construction and at most one
// phase holds green at any time. Every change of green passes through the
// leaving phase's full yellow clearance, and a phase cannot be forced off
// before serving its minimum green time.
//
// A Simulation wraps an intersection with a Strategy, a seeded random
// source for arrivals, and an append-only log of discharges. Two strategies
// ship with the package: WeightedStrategy reacts to queue pressure, head
// waits, starvation, and emergency vehicles, while FixedTimerStrategy
// rotates phases on a fixed dwell regardless of traffic.
//
// Basic usage:
//
//	layout := junction.CrossLayout()
//	cfg := junction.DefaultConfig()
//	cfg.SpawnRates = junction.UniformSpawn(layout, 0.35)
//	cfg.Seed = 42
//
//	strategy := junction.NewWeightedStrategy(cfg.Weights, cfg.StarvationThreshold)
//	sim, err := junction.NewSimulation(layout, cfg, strategy)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sim.Run(500)
//	summary := sim.Summary()
package junction

// CrossLayout returns the standard four-way layout: one approach lane per
// compass direction, each served by its own phase, cycling north, east,
// south, west.
func CrossLayout() *Layout {
	layout, err := NewLayoutBuilder().
		Phase("north", "north").
		Phase("east", "east").
		Phase("south", "south").
		Phase("west", "west").
		Build()
	if err != nil {
		panic(err)
	}
	return layout
}

// UniformSpawn returns a spawn rate table giving every lane of the layout
// the same per-tick arrival probability.
func UniformSpawn(layout *Layout, rate float64) map[string]float64 {
	rates := make(map[string]float64, len(layout.LaneKeys()))
	for _, key := range layout.LaneKeys() {
		rates[key] = rate
	}
	return rates
}
