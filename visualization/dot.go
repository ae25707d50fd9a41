// Package visualization renders junction layouts as Graphviz DOT
package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/anggasct/junction"
)

// DOTGenerator generates Graphviz DOT format representations of a junction's
// phase table
type DOTGenerator struct {
	layout  *junction.Layout
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowLanes     bool
	ShowRotation  bool
	RankDirection string // "TB", "LR", "BT", "RL"
	NodeShape     string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowLanes:     true,
		ShowRotation:  true,
		RankDirection: "LR",
		NodeShape:     "box",
	}
}

// NewDOTGenerator creates a new DOT generator for the given layout
func NewDOTGenerator(layout *junction.Layout, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		layout:  layout,
		options: opts,
	}
}

// Generate creates a DOT representation of the phase table
func (g *DOTGenerator) Generate() (string, error) {
	if g.layout == nil {
		return "", fmt.Errorf("no layout to render")
	}

	var dot strings.Builder

	g.writeHeader(&dot)
	g.generatePhases(&dot, nil)
	if g.options.ShowRotation {
		g.generateRotation(&dot)
	}
	dot.WriteString("}\n")

	return dot.String(), nil
}

// GenerateSnapshot creates a DOT representation with signal colors and queue
// lengths drawn from a live snapshot
func (g *DOTGenerator) GenerateSnapshot(snapshot junction.Snapshot) (string, error) {
	if g.layout == nil {
		return "", fmt.Errorf("no layout to render")
	}

	var dot strings.Builder

	g.writeHeader(&dot)
	dot.WriteString(fmt.Sprintf("  labelloc=\"t\";\n  label=\"tick %d\";\n\n", snapshot.Tick))
	g.generatePhases(&dot, &snapshot)
	if g.options.ShowRotation {
		g.generateRotation(&dot)
	}
	dot.WriteString("}\n")

	return dot.String(), nil
}

func (g *DOTGenerator) writeHeader(dot *strings.Builder) {
	dot.WriteString("digraph Junction {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")
}

// generatePhases generates DOT nodes for all phases
func (g *DOTGenerator) generatePhases(dot *strings.Builder, snapshot *junction.Snapshot) {
	dot.WriteString("  // Phases\n")

	for _, phase := range g.layout.Phases() {
		label := phase.Name
		if g.options.ShowLanes {
			lanes := phase.LaneKeys
			if snapshot != nil {
				counted := make([]string, len(lanes))
				for n, lane := range lanes {
					counted[n] = fmt.Sprintf("%s: %d", lane, snapshot.LaneCounts[lane])
				}
				lanes = counted
			}
			label += "\\n(" + strings.Join(lanes, ", ") + ")"
		}

		fillColor := "lightblue"
		if snapshot != nil {
			switch snapshot.Signals[phase.Name] {
			case junction.SignalGreen:
				fillColor = "lightgreen"
			case junction.SignalYellow:
				fillColor = "lightyellow"
			case junction.SignalRed:
				fillColor = "lightcoral"
			}
		}

		dot.WriteString(fmt.Sprintf("  \"%s\" [shape=%s style=\"filled\" fillcolor=%s label=\"%s\"];\n",
			phase.Name, g.options.NodeShape, fillColor, label))
	}
}

// generateRotation generates DOT edges following the phase rotation order
func (g *DOTGenerator) generateRotation(dot *strings.Builder) {
	names := g.layout.PhaseNames()
	if len(names) < 2 {
		return
	}

	dot.WriteString("\n  // Rotation order\n")
	for _, name := range names {
		dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", name, g.layout.Next(name)))
	}
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// GenerateSVG creates an SVG representation of the phase table
// This is a convenience method on DOTGenerator for compatibility
func (g *DOTGenerator) GenerateSVG() (string, error) {
	svgGen := &SVGGenerator{dotGenerator: g}
	return svgGen.Generate()
}

// SVGGenerator generates SVG representations by calling Graphviz
type SVGGenerator struct {
	dotGenerator *DOTGenerator
}

// NewSVGGenerator creates a new SVG generator
func NewSVGGenerator(layout *junction.Layout, options ...DOTOptions) *SVGGenerator {
	return &SVGGenerator{
		dotGenerator: NewDOTGenerator(layout, options...),
	}
}

// Generate creates an SVG representation of the phase table
func (g *SVGGenerator) Generate() (string, error) {
	dotContent, err := g.dotGenerator.Generate()
	if err != nil {
		return "", err
	}

	// Use Graphviz dot command to convert DOT to SVG
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(dotContent)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}
