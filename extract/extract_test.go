package extract

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/require"

	"github.com/emdahl/codeatlas/parser"
)

func parseSource(t *testing.T, src string) (*sitter.Node, []byte) {
	t.Helper()

	p, err := parser.NewPythonParser()
	require.NoError(t, err)

	result, err := p.ParseBytes([]byte(src), "test.py")
	require.NoError(t, err)
	t.Cleanup(func() {
		result.Tree.Close()
		p.Close()
	})

	return result.Tree.RootNode(), result.Source
}
