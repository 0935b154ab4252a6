package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/anggasct/trafficsim"
)

// DOTGenerator generates Graphviz DOT format representations of a traffic light
type DOTGenerator struct {
	light   *trafficsim.TrafficLight
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowSubscribers   bool
	ShowUnreachable   bool
	ShowCurrentStatus bool
	RankDirection     string // "TB", "LR", "BT", "RL"
	NodeShape         string
	SubscriberShape   string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowSubscribers:   false,
		ShowUnreachable:   true,
		ShowCurrentStatus: true,
		RankDirection:     "LR",
		NodeShape:         "circle",
		SubscriberShape:   "box",
	}
}

// NewDOTGenerator creates a new DOT generator for the given traffic light
func NewDOTGenerator(light *trafficsim.TrafficLight, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		light:   light,
		options: opts,
	}
}

// Generate creates a DOT representation of the traffic light
func (g *DOTGenerator) Generate() (string, error) {
	if g.light == nil {
		return "", fmt.Errorf("no traffic light to render")
	}

	var dot strings.Builder

	dot.WriteString("digraph TrafficLight {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	g.generateStates(&dot)
	g.generateTransitions(&dot)
	if g.options.ShowSubscribers {
		g.generateSubscribers(&dot)
	}

	dot.WriteString("}\n")

	return dot.String(), nil
}

// generateStates generates DOT nodes for all light statuses
func (g *DOTGenerator) generateStates(dot *strings.Builder) {
	reachable := make(map[trafficsim.LightStatus]bool)
	for _, t := range g.light.Transitions() {
		reachable[t.From] = true
		reachable[t.To] = true
	}
	current := g.light.Status()

	dot.WriteString("  // States\n")
	for _, status := range g.light.States() {
		if !reachable[status] && !g.options.ShowUnreachable {
			continue
		}

		label := strings.ToUpper(string(status))
		style := "filled"
		if status == trafficsim.Red {
			label += "\\n(initial)"
		}
		if !reachable[status] {
			style = "dashed"
			label += "\\n(unreachable)"
		}
		penwidth := 1
		if g.options.ShowCurrentStatus && status == current {
			penwidth = 3
		}

		dot.WriteString(fmt.Sprintf("  \"%s\" [style=\"%s\" fillcolor=%s penwidth=%d label=\"%s\"];\n",
			status, style, statusColor(status), penwidth, label))
	}
	dot.WriteString("\n")
}

// generateTransitions generates DOT edges labelled with the published event
func (g *DOTGenerator) generateTransitions(dot *strings.Builder) {
	dot.WriteString("  // Transitions\n")
	for _, t := range g.light.Transitions() {
		dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [label=\"%s\"];\n", t.From, t.To, t.Event))
	}
}

// generateSubscribers generates one node per listener and an edge per subscription
func (g *DOTGenerator) generateSubscribers(dot *strings.Builder) {
	manager := g.light.EventManager()

	dot.WriteString("\n  // Subscribers\n")
	declared := make(map[string]bool)
	for _, t := range g.light.Transitions() {
		for i, listener := range manager.Listeners(t.Event) {
			name := trafficsim.ListenerName(listener)
			node := "listener:" + name
			if !declared[node] {
				dot.WriteString(fmt.Sprintf("  \"%s\" [shape=%s label=\"%s\"];\n", node, g.options.SubscriberShape, name))
				declared[node] = true
			}
			dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [style=dotted label=\"%s #%d\"];\n",
				t.To, node, t.Event, i+1))
		}
	}
}

func statusColor(status trafficsim.LightStatus) string {
	switch status {
	case trafficsim.Red:
		return "lightcoral"
	case trafficsim.Yellow:
		return "lightyellow"
	case trafficsim.Green:
		return "lightgreen"
	default:
		return "white"
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

// SVGGenerator generates SVG representations by calling Graphviz
type SVGGenerator struct {
	dotGenerator *DOTGenerator
}

// NewSVGGenerator creates a new SVG generator
func NewSVGGenerator(light *trafficsim.TrafficLight, options ...DOTOptions) *SVGGenerator {
	return &SVGGenerator{
		dotGenerator: NewDOTGenerator(light, options...),
	}
}

// Generate creates an SVG representation of the traffic light
func (g *SVGGenerator) Generate() (string, error) {
	dotContent, err := g.dotGenerator.Generate()
	if err != nil {
		return "", err
	}

	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(dotContent)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}

// GenerateSVG creates an SVG representation of the traffic light
func (g *DOTGenerator) GenerateSVG() (string, error) {
	svgGen := &SVGGenerator{dotGenerator: g}
	return svgGen.Generate()
}
