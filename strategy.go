package junction

import (
	"math"

	"github.com/samber/lo"
)

// IntersectionView is the read-only surface a strategy consults when choosing
// a phase. Intersection implements it.
type IntersectionView interface {
	Layout() *Layout
	ActivePhase() string
	Clearing() bool
	LaneCount(laneKey string) int
	HeadWait(laneKey string, now int) int
	LaneHead(laneKey string) (Vehicle, bool)
	MinGreenMet(phase string, now int) bool
	GreenElapsed(phase string, now int) int
}

// Strategy selects which phase should hold green next. Decide is a pure
// query: it inspects the view and names a phase, and must never mutate
// state. Whether the named phase actually gains green is decided by the
// intersection, which still enforces minimum green and yellow clearance.
type Strategy interface {
	// Name identifies the strategy in summaries and logs
	Name() string

	// Decide returns the phase that should hold green at the given tick
	Decide(view IntersectionView, now int) string
}

// Weights scales the two inputs of the weighted phase score.
type Weights struct {
	Count float64 `json:"count"`
	Wait  float64 `json:"wait"`
}

type phaseScore struct {
	name  string
	score float64
}

// WeightedStrategy picks phases by queue pressure. Its rules apply in strict
// order: a lane whose head has waited beyond the starvation threshold wins
// outright; otherwise a lane headed by an emergency vehicle wins; otherwise
// an active phase that has not served its minimum green is kept; otherwise
// the phase with the highest weighted score of queue length and head wait
// wins, with ties broken by declaration order.
type WeightedStrategy struct {
	weights             Weights
	starvationThreshold int
}

// NewWeightedStrategy creates a weighted strategy with the given score
// weights and starvation threshold.
func NewWeightedStrategy(weights Weights, starvationThreshold int) *WeightedStrategy {
	return &WeightedStrategy{
		weights:             weights,
		starvationThreshold: starvationThreshold,
	}
}

// Name returns "weighted"
func (s *WeightedStrategy) Name() string {
	return "weighted"
}

// Decide applies the four selection rules in order and returns the winning
// phase name.
func (s *WeightedStrategy) Decide(view IntersectionView, now int) string {
	layout := view.Layout()

	// Rule 1: relieve the longest-starved lane first. Lanes are scanned in
	// declaration order, so an equal wait keeps the earlier lane.
	starvedWait := 0
	starvedPhase := ""
	for _, key := range layout.LaneKeys() {
		wait := view.HeadWait(key, now)
		if wait > s.starvationThreshold && wait > starvedWait {
			if phase, ok := layout.PhaseOf(key); ok {
				starvedWait = wait
				starvedPhase = phase
			}
		}
	}
	if starvedPhase != "" {
		return starvedPhase
	}

	// Rule 2: an emergency vehicle at any lane head preempts.
	for _, key := range layout.LaneKeys() {
		if head, ok := view.LaneHead(key); ok && head.IsPriority() {
			if phase, ok := layout.PhaseOf(key); ok {
				return phase
			}
		}
	}

	// Rule 3: keep an active phase that has not served its minimum green.
	if active := view.ActivePhase(); active != "" && !view.MinGreenMet(active, now) {
		return active
	}

	// Rule 4: highest weighted score wins, first declared phase on ties.
	scores := lo.Map(layout.Phases(), func(p Phase, _ int) phaseScore {
		total := 0.0
		for _, key := range p.LaneKeys {
			total += float64(view.LaneCount(key))*s.weights.Count +
				float64(view.HeadWait(key, now))*s.weights.Wait
		}
		return phaseScore{name: p.Name, score: roundScore(total)}
	})

	best := scores[0]
	for _, candidate := range scores[1:] {
		if candidate.score > best.score {
			best = candidate
		}
	}
	return best.name
}

// roundScore rounds a phase score to two decimal places so that near-equal
// pressures compare as ties instead of flapping on float noise.
func roundScore(x float64) float64 {
	return math.Round(x*100) / 100
}

// FixedTimerStrategy cycles through the phases in declaration order, holding
// each green for a fixed dwell before moving on. It ignores queue state
// entirely.
type FixedTimerStrategy struct {
	dwell int
}

// NewFixedTimerStrategy creates a fixed-timer strategy with the given dwell
// in ticks.
func NewFixedTimerStrategy(dwell int) *FixedTimerStrategy {
	return &FixedTimerStrategy{dwell: dwell}
}

// Name returns "fixed_timer"
func (s *FixedTimerStrategy) Name() string {
	return "fixed_timer"
}

// Decide keeps the active phase until it has dwelt long enough, then names
// the next phase in declaration order, wrapping at the end.
func (s *FixedTimerStrategy) Decide(view IntersectionView, now int) string {
	layout := view.Layout()
	active := view.ActivePhase()
	if active == "" {
		return layout.PhaseNames()[0]
	}
	if view.GreenElapsed(active, now) >= s.dwell {
		return layout.Next(active)
	}
	return active
}
