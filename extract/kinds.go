package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/emdahl/codeatlas/parser"
)

// nodeKind is the closed set of grammar node kinds this package cares
// about. Everything else falls into kindOther and is recursed through.
type nodeKind int

const (
	kindOther nodeKind = iota
	kindFunctionDef
	kindClassDef
	kindCall
)

func kindOf(node *sitter.Node) nodeKind {
	switch node.Type() {
	case "function_definition":
		return kindFunctionDef
	case "class_definition":
		return kindClassDef
	case "call":
		return kindCall
	default:
		return kindOther
	}
}

// definitionName returns the name of a definition node, or "unknown"
// when the grammar produced a name-less definition. Recording the
// sentinel keeps entity counts consistent with source inspection.
func definitionName(node *sitter.Node, source []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return "unknown"
	}
	return parser.NodeText(nameNode, source)
}
