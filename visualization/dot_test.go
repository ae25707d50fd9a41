package visualization_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anggasct/junction"
	"github.com/anggasct/junction/visualization"
)

func TestDOTGeneration(t *testing.T) {
	generator := visualization.NewDOTGenerator(junction.CrossLayout())

	dotContent, err := generator.Generate()
	if err != nil {
		t.Fatalf("Failed to generate DOT: %v", err)
	}

	if !strings.Contains(dotContent, "digraph Junction") {
		t.Error("DOT content should contain graph declaration")
	}

	for _, phase := range []string{"north", "east", "south", "west"} {
		if !strings.Contains(dotContent, "\""+phase+"\"") {
			t.Errorf("DOT content should contain phase %s", phase)
		}
	}

	if !strings.Contains(dotContent, "\"north\" -> \"east\"") {
		t.Error("DOT content should contain rotation edge from north to east")
	}

	if !strings.Contains(dotContent, "\"west\" -> \"north\"") {
		t.Error("DOT content should close the rotation ring")
	}

	t.Logf("Generated DOT content:\n%s", dotContent)
}

func TestDOTGenerationWithOptions(t *testing.T) {
	options := visualization.DefaultDOTOptions()
	options.ShowLanes = false
	options.ShowRotation = false
	options.RankDirection = "TB"
	options.NodeShape = "ellipse"

	generator := visualization.NewDOTGenerator(junction.CrossLayout(), options)

	dotContent, err := generator.Generate()
	if err != nil {
		t.Fatalf("Failed to generate DOT: %v", err)
	}

	if !strings.Contains(dotContent, "rankdir=TB") {
		t.Error("DOT content should honor the rank direction")
	}

	if !strings.Contains(dotContent, "shape=ellipse") {
		t.Error("DOT content should honor the node shape")
	}

	if strings.Contains(dotContent, "->") {
		t.Error("DOT content should omit rotation edges when disabled")
	}

	if strings.Contains(dotContent, "(") {
		t.Error("DOT content should omit lane lists when disabled")
	}
}

func TestDOTGenerationSnapshot(t *testing.T) {
	layout, err := junction.NewLayoutBuilder().
		Phase("ns", "north", "south").
		Phase("ew", "east", "west").
		Build()
	if err != nil {
		t.Fatalf("Failed to build layout: %v", err)
	}

	snapshot := junction.Snapshot{
		Tick:        42,
		ActivePhase: "ns",
		Signals: map[string]junction.SignalState{
			"ns": junction.SignalGreen,
			"ew": junction.SignalRed,
		},
		LaneCounts: map[string]int{"north": 2, "south": 0, "east": 3, "west": 1},
	}

	generator := visualization.NewDOTGenerator(layout)

	dotContent, err := generator.GenerateSnapshot(snapshot)
	if err != nil {
		t.Fatalf("Failed to generate DOT: %v", err)
	}

	if !strings.Contains(dotContent, "label=\"tick 42\"") {
		t.Error("DOT content should carry the snapshot tick")
	}

	if !strings.Contains(dotContent, "lightgreen") {
		t.Error("DOT content should color the green phase")
	}

	if !strings.Contains(dotContent, "lightcoral") {
		t.Error("DOT content should color the red phase")
	}

	if !strings.Contains(dotContent, "east: 3") {
		t.Error("DOT content should show queue lengths")
	}

	t.Logf("Generated DOT content:\n%s", dotContent)
}

func TestDOTGenerationWithoutLayout(t *testing.T) {
	generator := visualization.NewDOTGenerator(nil)

	if _, err := generator.Generate(); err == nil {
		t.Error("Expected an error for a nil layout")
	}
}

func TestDOTGenerator_GenerateToFile(t *testing.T) {
	generator := visualization.NewDOTGenerator(junction.CrossLayout())

	filename := filepath.Join(t.TempDir(), "junction.dot")
	if err := generator.GenerateToFile(filename); err != nil {
		t.Fatalf("Failed to generate DOT file: %v", err)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}

	if !strings.Contains(string(content), "digraph Junction") {
		t.Error("Generated file should contain the DOT graph")
	}
}

func TestSVGGenerator(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("Graphviz is not installed")
	}

	generator := visualization.NewSVGGenerator(junction.CrossLayout())

	svgContent, err := generator.Generate()
	if err != nil {
		t.Fatalf("Failed to generate SVG: %v", err)
	}

	if len(svgContent) == 0 {
		t.Error("SVG content should not be empty")
	}

	if !strings.Contains(svgContent, "<svg") {
		t.Error("Content should be valid SVG")
	}
}
