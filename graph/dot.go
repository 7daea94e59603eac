package graph

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DOT serializes the graph in graphviz dot syntax. Nodes sharing a
// Cluster are grouped into a labeled subgraph; edges are emitted at the
// top level, which graphviz resolves against clustered nodes.
func (g *Graph) DOT() string {
	var b strings.Builder

	fmt.Fprintf(&b, "digraph %s {\n", sanitizeID(g.Name))
	if g.RankDir != "" {
		fmt.Fprintf(&b, "  rankdir=%s;\n", g.RankDir)
	}
	b.WriteString("  node [fontname=\"Arial\" fontsize=10];\n")

	clusterIndex := 0
	written := make(map[string]bool)
	for _, node := range g.Nodes {
		if node.Cluster == "" || written[node.Cluster] {
			continue
		}
		written[node.Cluster] = true

		fmt.Fprintf(&b, "  subgraph cluster_%d {\n", clusterIndex)
		fmt.Fprintf(&b, "    label=%q;\n", node.Cluster)
		b.WriteString("    style=rounded;\n    color=blue;\n")
		for _, n := range g.Nodes {
			if n.Cluster == node.Cluster {
				writeNode(&b, "    ", n)
			}
		}
		b.WriteString("  }\n")
		clusterIndex++
	}

	for _, n := range g.Nodes {
		if n.Cluster == "" {
			writeNode(&b, "  ", n)
		}
	}

	for _, e := range g.Edges {
		var attrs []string
		if e.Label != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
		}
		if e.Style != "" {
			attrs = append(attrs, fmt.Sprintf("style=%q", e.Style))
		}
		if e.Color != "" {
			attrs = append(attrs, fmt.Sprintf("color=%q", e.Color))
		}
		if len(attrs) > 0 {
			fmt.Fprintf(&b, "  %s -> %s [%s];\n", e.From, e.To, strings.Join(attrs, " "))
		} else {
			fmt.Fprintf(&b, "  %s -> %s;\n", e.From, e.To)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func writeNode(b *strings.Builder, indent string, n Node) {
	var attrs []string
	attrs = append(attrs, fmt.Sprintf("label=%q", n.Label))
	if n.Shape != "" {
		attrs = append(attrs, fmt.Sprintf("shape=%q", n.Shape))
	}
	if n.Style != "" {
		attrs = append(attrs, fmt.Sprintf("style=%q", n.Style))
	}
	if n.FillColor != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.FillColor))
	}
	fmt.Fprintf(b, "%s%s [%s];\n", indent, n.ID, strings.Join(attrs, " "))
}

// Render writes the dot file and invokes the external graphviz renderer
// to produce outputPath.png. Callers treat failure as non-fatal: the
// structured result is still produced without the image.
func Render(g *Graph, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create graph dir: %w", err)
		}
	}

	dotPath := outputPath + ".dot"
	if err := os.WriteFile(dotPath, []byte(g.DOT()), 0o644); err != nil {
		return fmt.Errorf("failed to write dot file: %w", err)
	}

	cmd := exec.Command("dot", "-Tpng", "-o", outputPath+".png", dotPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("dot rendering failed: %v (%s)", err, strings.TrimSpace(string(out)))
	}

	return nil
}
