package junction

// LayoutBuilder provides a fluent interface for declaring a phase table.
//
//	layout, err := junction.NewLayoutBuilder().
//		Phase("north_south", "north", "south").
//		Phase("east_west", "east", "west").
//		Build()
//
// Declaration order is preserved and becomes the strategies' tie-break and
// round-robin order. Build validates the whole table at once and returns a
// ConfigurationError for an empty table, duplicate names, or a lane key
// claimed by more than one phase.
type LayoutBuilder struct {
	phases []Phase
}

// NewLayoutBuilder creates a new layout builder
func NewLayoutBuilder() *LayoutBuilder {
	return &LayoutBuilder{
		phases: make([]Phase, 0),
	}
}

// Phase declares a phase and the lane keys that discharge together under it
func (b *LayoutBuilder) Phase(name string, laneKeys ...string) *LayoutBuilder {
	keys := make([]string, len(laneKeys))
	copy(keys, laneKeys)
	b.phases = append(b.phases, Phase{Name: name, LaneKeys: keys})
	return b
}

// Build validates the declared table and constructs the layout
func (b *LayoutBuilder) Build() (*Layout, error) {
	return NewLayout(b.phases)
}
