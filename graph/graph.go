// Package graph holds the renderer-agnostic dependency graph model.
// Builders turn extracted entities and the call graph into node/edge
// sets; dot.go serializes them for the external graphviz renderer.
package graph

import "strings"

// Node is a single renderable graph node. Cluster groups nodes that
// belong to the same source file; style fields are hints for the
// renderer, not requirements.
type Node struct {
	ID        string
	Label     string
	Cluster   string
	Shape     string
	Style     string
	FillColor string
}

// Edge connects two nodes by ID.
type Edge struct {
	From  string
	To    string
	Label string
	Style string
	Color string
}

// Graph is an abstract node/edge graph handed to the renderer.
type Graph struct {
	Name    string
	RankDir string
	Nodes   []Node
	Edges   []Edge
}

// NodeID builds a stable, render-safe identifier qualified by file so
// same-named functions in different files never collide.
func NodeID(file, name string) string {
	return sanitizeID(file + "_" + name)
}

func sanitizeID(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
