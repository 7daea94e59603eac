package graph

import (
	"sort"

	"github.com/emdahl/codeatlas/extract"
)

// BuildDependencyTree builds the hierarchical dependency graph: one
// cluster per file, classes with their methods attached by dotted
// containment edges, standalone functions alongside, and call edges
// between functions that are both defined in the analyzed set.
func BuildDependencyTree(files []extract.SourceFile, callGraph extract.CallGraph) *Graph {
	g := &Graph{Name: "dependency_tree", RankDir: "TB"}

	// Bare name -> qualified node ID. Same-named functions across files
	// collapse to the last definition seen, an accepted imprecision of
	// the name-keyed call graph.
	allFunctions := make(map[string]string)

	for _, file := range files {
		for _, cls := range file.Classes {
			classID := NodeID(file.File, cls.Name)
			g.Nodes = append(g.Nodes, Node{
				ID:        classID,
				Label:     cls.Name,
				Cluster:   file.File,
				Shape:     "box",
				Style:     "filled",
				FillColor: "lightblue",
			})

			for _, fn := range file.Functions {
				if fn.Parent != nil && *fn.Parent == cls.Name {
					funcID := NodeID(file.File, fn.Name)
					g.Nodes = append(g.Nodes, Node{
						ID:        funcID,
						Label:     fn.Name,
						Cluster:   file.File,
						Shape:     "ellipse",
						Style:     "filled",
						FillColor: "lightgreen",
					})
					g.Edges = append(g.Edges, Edge{From: classID, To: funcID, Style: "dotted"})
					allFunctions[fn.Name] = funcID
				}
			}
		}

		for _, fn := range file.Functions {
			if fn.Parent == nil {
				funcID := NodeID(file.File, fn.Name)
				g.Nodes = append(g.Nodes, Node{
					ID:        funcID,
					Label:     fn.Name,
					Cluster:   file.File,
					Shape:     "ellipse",
					Style:     "filled",
					FillColor: "lightyellow",
				})
				allFunctions[fn.Name] = funcID
			}
		}
	}

	// Call edges only between defined functions; calls to unresolved
	// names never become dangling edges.
	for _, caller := range sortedKeys(callGraph) {
		callerID, ok := allFunctions[caller]
		if !ok {
			continue
		}
		for _, callee := range callGraph[caller] {
			if calleeID, ok := allFunctions[callee]; ok {
				g.Edges = append(g.Edges, Edge{From: callerID, To: calleeID, Color: "gray"})
			}
		}
	}

	return g
}

// BuildClassHierarchy builds the inheritance graph across all analyzed
// files. An inheritance edge is emitted only when the base class is
// itself among the analyzed classes.
func BuildClassHierarchy(files []extract.SourceFile) *Graph {
	g := &Graph{Name: "class_hierarchy", RankDir: "BT"}

	allClasses := make(map[string]extract.ClassEntity)
	var order []string
	for _, file := range files {
		for _, cls := range file.Classes {
			if _, seen := allClasses[cls.Name]; !seen {
				order = append(order, cls.Name)
			}
			allClasses[cls.Name] = cls
		}
	}

	for _, name := range order {
		g.Nodes = append(g.Nodes, Node{
			ID:        sanitizeID(name),
			Label:     name,
			Shape:     "box",
			Style:     "rounded,filled",
			FillColor: "lightblue",
		})
	}

	for _, name := range order {
		for _, base := range allClasses[name].Bases {
			if _, ok := allClasses[base]; ok {
				g.Edges = append(g.Edges, Edge{
					From:  sanitizeID(name),
					To:    sanitizeID(base),
					Label: "inherits",
					Color: "red",
				})
			}
		}
	}

	return g
}

func sortedKeys(m extract.CallGraph) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
