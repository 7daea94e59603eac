package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/emdahl/codeatlas/parser"
)

// Entities walks a parsed tree and collects every function and class
// definition with its enclosing class and 1-based line number.
// Function bodies are not recursed into: nested function definitions are
// out of scope, keeping the entity list flat at documentable-unit
// granularity.
func Entities(root *sitter.Node, source []byte, displayName string) *SourceFile {
	sf := &SourceFile{
		File:      displayName,
		Functions: []FunctionEntity{},
		Classes:   []ClassEntity{},
	}
	visitEntities(root, source, "", sf)
	return sf
}

func visitEntities(node *sitter.Node, source []byte, enclosingClass string, sf *SourceFile) {
	switch kindOf(node) {
	case kindFunctionDef:
		var parent *string
		if enclosingClass != "" {
			name := enclosingClass
			parent = &name
		}
		sf.Functions = append(sf.Functions, FunctionEntity{
			Name:   definitionName(node, source),
			Parent: parent,
			Line:   int(node.StartPoint().Row) + 1,
		})
		return

	case kindClassDef:
		className := definitionName(node, source)
		sf.Classes = append(sf.Classes, ClassEntity{
			Name:  className,
			Bases: baseClassNames(node, source),
			Line:  int(node.StartPoint().Row) + 1,
		})

		// Methods are attributed to this class; the class node itself
		// is terminal for context purposes.
		for i := 0; i < int(node.ChildCount()); i++ {
			visitEntities(node.Child(i), source, className, sf)
		}
		return

	default:
		for i := 0; i < int(node.ChildCount()); i++ {
			visitEntities(node.Child(i), source, enclosingClass, sf)
		}
	}
}

// baseClassNames extracts the direct identifier children of the
// superclasses list. Base expressions such as Base[T] are not
// identifiers and degrade to being skipped, not partially captured.
func baseClassNames(node *sitter.Node, source []byte) []string {
	bases := []string{}

	superclasses := node.ChildByFieldName("superclasses")
	if superclasses == nil {
		return bases
	}

	for i := 0; i < int(superclasses.ChildCount()); i++ {
		child := superclasses.Child(i)
		if child.Type() == "identifier" {
			bases = append(bases, parser.NodeText(child, source))
		}
	}

	return bases
}
