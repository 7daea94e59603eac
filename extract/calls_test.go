package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallsDefinedAndUndefinedTargets(t *testing.T) {
	src := "def helper(): pass\ndef main():\n    helper()\n    helper()\n    unknown_call()\n"
	root, source := parseSource(t, src)

	calls := Calls(root, source, DefaultExclusions())

	// helper makes no calls but still gets an entry.
	require.Contains(t, calls, "helper")
	assert.Equal(t, []string{}, calls["helper"])

	// Repeated calls recorded once, first-occurrence order; the
	// undefined name is recorded too, it just never becomes an edge.
	assert.Equal(t, []string{"helper", "unknown_call"}, calls["main"])
}

func TestCallsExcludesBuiltinsAndKeywords(t *testing.T) {
	src := "def f():\n    print('x')\n    len([1])\n    visit(n)\n    work()\n"
	root, source := parseSource(t, src)

	calls := Calls(root, source, DefaultExclusions())

	assert.Equal(t, []string{"work"}, calls["f"])
}

func TestCallsAttributeUsesFinalName(t *testing.T) {
	src := "def f():\n    obj.process()\n    a.b.transform()\n"
	root, source := parseSource(t, src)

	calls := Calls(root, source, DefaultExclusions())

	assert.Equal(t, []string{"process", "transform"}, calls["f"])
}

func TestCallsNestedDefinitionAttributedToOuter(t *testing.T) {
	src := "def outer():\n    def inner():\n        work()\n    inner()\n"
	root, source := parseSource(t, src)

	calls := Calls(root, source, DefaultExclusions())

	// inner is not a documentable unit: no key of its own, and the
	// call inside its body belongs to outer.
	assert.NotContains(t, calls, "inner")
	assert.ElementsMatch(t, []string{"work", "inner"}, calls["outer"])
}

func TestCallsInArgumentPosition(t *testing.T) {
	src := "def f():\n    outerfn(innerfn())\n"
	root, source := parseSource(t, src)

	calls := Calls(root, source, DefaultExclusions())

	assert.Equal(t, []string{"outerfn", "innerfn"}, calls["f"])
}

func TestCallsOutsideFunctionsIgnored(t *testing.T) {
	src := "setup()\ndef f(): pass\n"
	root, source := parseSource(t, src)

	calls := Calls(root, source, DefaultExclusions())

	assert.Equal(t, CallGraph{"f": []string{}}, calls)
}

func TestCallsMethodScopedByFunction(t *testing.T) {
	src := "class C:\n    def m(self):\n        helper()\n\ndef helper(): pass\n"
	root, source := parseSource(t, src)

	calls := Calls(root, source, DefaultExclusions())

	assert.Equal(t, []string{"helper"}, calls["m"])
	assert.Equal(t, []string{}, calls["helper"])
}
