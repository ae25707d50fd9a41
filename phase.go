package junction

import "fmt"

// Phase names a set of lane keys that may legally discharge at the same time.
// The lanes of one phase are conflict-free movements by construction.
type Phase struct {
	Name     string   `json:"name"`
	LaneKeys []string `json:"lane_keys"`
}

// Layout is the validated, immutable phase table of an intersection. Phase
// and lane declaration order is preserved; it is the deterministic tie-break
// order used by the decision strategies. A Layout is configuration, not
// runtime state, and is checked once at construction.
type Layout struct {
	phases      []Phase
	phaseIndex  map[string]int
	laneToPhase map[string]string
	laneKeys    []string
}

// NewLayout validates the phase table and returns the layout. It fails when
// the table is empty, a phase has no lanes, a name or lane key is blank or
// repeated, or a lane key appears in more than one phase.
func NewLayout(phases []Phase) (*Layout, error) {
	if len(phases) == 0 {
		return nil, NewConfigurationErrorWithCode(ErrCodeEmptyPhaseTable, "phases", "at least one phase is required")
	}

	l := &Layout{
		phases:      make([]Phase, 0, len(phases)),
		phaseIndex:  make(map[string]int, len(phases)),
		laneToPhase: make(map[string]string),
		laneKeys:    make([]string, 0),
	}

	for i, p := range phases {
		if p.Name == "" {
			return nil, NewConfigurationError("phases", fmt.Sprintf("phase at index %d has no name", i))
		}
		if _, dup := l.phaseIndex[p.Name]; dup {
			return nil, NewConfigurationError("phases", fmt.Sprintf("phase '%s' declared twice", p.Name))
		}
		if len(p.LaneKeys) == 0 {
			return nil, NewConfigurationError("phases", fmt.Sprintf("phase '%s' has no lanes", p.Name))
		}
		keys := make([]string, len(p.LaneKeys))
		copy(keys, p.LaneKeys)
		for _, key := range keys {
			if key == "" {
				return nil, NewConfigurationError("phases", fmt.Sprintf("phase '%s' has a blank lane key", p.Name))
			}
			if owner, claimed := l.laneToPhase[key]; claimed {
				return nil, NewConfigurationErrorWithCode(ErrCodeConflictingLane, "phases",
					fmt.Sprintf("lane '%s' belongs to both '%s' and '%s'", key, owner, p.Name))
			}
			l.laneToPhase[key] = p.Name
			l.laneKeys = append(l.laneKeys, key)
		}
		l.phaseIndex[p.Name] = len(l.phases)
		l.phases = append(l.phases, Phase{Name: p.Name, LaneKeys: keys})
	}

	return l, nil
}

// Phases returns the phase table in declaration order
func (l *Layout) Phases() []Phase {
	out := make([]Phase, len(l.phases))
	copy(out, l.phases)
	return out
}

// PhaseNames returns the phase names in declaration order
func (l *Layout) PhaseNames() []string {
	names := make([]string, len(l.phases))
	for i, p := range l.phases {
		names[i] = p.Name
	}
	return names
}

// NumPhases returns the number of declared phases
func (l *Layout) NumPhases() int {
	return len(l.phases)
}

// Phase looks up a phase by name
func (l *Layout) Phase(name string) (Phase, bool) {
	i, ok := l.phaseIndex[name]
	if !ok {
		return Phase{}, false
	}
	return l.phases[i], true
}

// Contains reports whether a phase with the given name is declared
func (l *Layout) Contains(name string) bool {
	_, ok := l.phaseIndex[name]
	return ok
}

// LaneKeys returns every lane key in declaration order across all phases
func (l *Layout) LaneKeys() []string {
	out := make([]string, len(l.laneKeys))
	copy(out, l.laneKeys)
	return out
}

// PhaseOf returns the name of the phase that owns the given lane key
func (l *Layout) PhaseOf(laneKey string) (string, bool) {
	name, ok := l.laneToPhase[laneKey]
	return name, ok
}

// Next returns the phase declared after the given one, wrapping around. An
// unknown or empty name yields the first declared phase, which makes Next a
// convenient starting rule for round-robin strategies.
func (l *Layout) Next(name string) string {
	i, ok := l.phaseIndex[name]
	if !ok {
		return l.phases[0].Name
	}
	return l.phases[(i+1)%len(l.phases)].Name
}
