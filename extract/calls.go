package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/emdahl/codeatlas/parser"
)

// Calls walks a parsed tree tracking the innermost enclosing function
// and records every call expression's target name against it. Calls
// inside nested function definitions are attributed to the outer
// function, matching the flat entity list. Names in the exclusion set
// are never recorded.
func Calls(root *sitter.Node, source []byte, exclusions *ExclusionSet) CallGraph {
	calls := CallGraph{}
	visitCalls(root, source, "", exclusions, calls)
	return calls
}

func visitCalls(node *sitter.Node, source []byte, currentFunc string, exclusions *ExclusionSet, calls CallGraph) {
	switch kindOf(node) {
	case kindFunctionDef:
		// A definition nested inside another function is not a
		// documentable unit of its own: its body is walked with the
		// enclosing function unchanged, so its call sites attribute
		// to the outer function and no orphan key appears.
		if currentFunc != "" {
			break
		}

		nameNode := node.ChildByFieldName("name")
		if nameNode != nil {
			funcName := parser.NodeText(nameNode, source)

			// Every defined function gets an entry, even if it never calls.
			if _, ok := calls[funcName]; !ok {
				calls[funcName] = []string{}
			}

			for i := 0; i < int(node.ChildCount()); i++ {
				visitCalls(node.Child(i), source, funcName, exclusions, calls)
			}
		}
		return

	case kindCall:
		if currentFunc != "" {
			called := calleeName(node, source)
			if called != "" && !exclusions.Excluded(called) {
				calls[currentFunc] = appendUnique(calls[currentFunc], called)
			}
		}
		// Keep walking: nested calls in argument position still count.
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		visitCalls(node.Child(i), source, currentFunc, exclusions, calls)
	}
}

// calleeName resolves the target name of a call expression. A bare
// identifier is used directly; for attribute access only the final
// attribute name is kept, so obj.foo() and foo() are indistinguishable.
func calleeName(node *sitter.Node, source []byte) string {
	funcNode := node.ChildByFieldName("function")
	if funcNode == nil {
		return ""
	}

	switch funcNode.Type() {
	case "identifier":
		return parser.NodeText(funcNode, source)
	case "attribute":
		attr := funcNode.ChildByFieldName("attribute")
		if attr != nil {
			return parser.NodeText(attr, source)
		}
	}

	return ""
}

func appendUnique(list []string, s string) []string {
	for _, item := range list {
		if item == s {
			return list
		}
	}
	return append(list, s)
}
