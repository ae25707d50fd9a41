package junction

import "testing"

func TestLayoutBuilder_Build(t *testing.T) {
	layout, err := NewLayoutBuilder().
		Phase("ns", "north", "south").
		Phase("ew", "east", "west").
		Build()
	if err != nil {
		t.Fatalf("Expected builder to produce a layout, got error: %v", err)
	}

	if layout.NumPhases() != 2 {
		t.Errorf("Expected 2 phases, got %d", layout.NumPhases())
	}

	phase, ok := layout.Phase("ns")
	if !ok {
		t.Fatal("Expected phase 'ns' to exist")
	}
	if len(phase.LaneKeys) != 2 {
		t.Errorf("Expected 2 lanes, got %d", len(phase.LaneKeys))
	}
}

func TestLayoutBuilder_PreservesDeclarationOrder(t *testing.T) {
	layout, err := NewLayoutBuilder().
		Phase("c", "lane_c").
		Phase("a", "lane_a").
		Phase("b", "lane_b").
		Build()
	if err != nil {
		t.Fatalf("Expected builder to produce a layout, got error: %v", err)
	}

	names := layout.PhaseNames()
	expected := []string{"c", "a", "b"}
	for n, name := range expected {
		if names[n] != name {
			t.Errorf("Expected phase '%s' at position %d, got '%s'", name, n, names[n])
		}
	}
}

func TestLayoutBuilder_EmptyBuildRejected(t *testing.T) {
	_, err := NewLayoutBuilder().Build()
	if err == nil {
		t.Fatal("Expected building without phases to fail")
	}

	if GetErrorCode(err) != ErrCodeEmptyPhaseTable {
		t.Errorf("Expected ErrCodeEmptyPhaseTable, got %v", GetErrorCode(err))
	}
}

func TestLayoutBuilder_ConflictRejected(t *testing.T) {
	_, err := NewLayoutBuilder().
		Phase("ns", "north", "shared").
		Phase("ew", "shared").
		Build()
	if err == nil {
		t.Fatal("Expected conflicting lane to fail the build")
	}

	if GetErrorCode(err) != ErrCodeConflictingLane {
		t.Errorf("Expected ErrCodeConflictingLane, got %v", GetErrorCode(err))
	}
}

func TestLayoutBuilder_Chaining(t *testing.T) {
	builder := NewLayoutBuilder()

	if builder.Phase("ns", "north") != builder {
		t.Error("Expected Phase to return the builder for chaining")
	}
}
