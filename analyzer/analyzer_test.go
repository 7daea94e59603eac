package analyzer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func sampleRepo(t *testing.T) string {
	t.Helper()
	repo := t.TempDir()
	writeFile(t, repo, "a.py",
		"def helper(): pass\ndef main():\n    helper()\n    helper()\n    unknown_call()\n")
	writeFile(t, repo, "b.py",
		"class B(A):\n    def m(self):\n        helper()\n")
	writeFile(t, repo, "empty.py", "")
	return repo
}

func TestRunAnalysis(t *testing.T) {
	repo := sampleRepo(t)
	cachePath := filepath.Join(t.TempDir(), "outputs", "analyzer_output.json")

	sa := New(nil, 1)
	result, err := sa.RunAnalysis(repo, cachePath, false)
	require.NoError(t, err)

	assert.Equal(t, repo, result.RepoPath)

	// empty.py has no entities and is omitted.
	require.Len(t, result.Files, 2)
	assert.Equal(t, "a.py", result.Files[0].File)
	assert.Equal(t, "b.py", result.Files[1].File)

	require.Len(t, result.Files[0].Functions, 2)
	assert.Equal(t, "helper", result.Files[0].Functions[0].Name)
	assert.Nil(t, result.Files[0].Functions[0].Parent)
	assert.Equal(t, 1, result.Files[0].Functions[0].Line)

	require.Len(t, result.Files[1].Classes, 1)
	assert.Equal(t, []string{"A"}, result.Files[1].Classes[0].Bases)
	require.NotNil(t, result.Files[1].Functions[0].Parent)
	assert.Equal(t, "B", *result.Files[1].Functions[0].Parent)

	assert.Equal(t, []string{}, result.CallGraph["helper"])
	assert.Equal(t, []string{"helper", "unknown_call"}, result.CallGraph["main"])
	assert.Equal(t, []string{"helper"}, result.CallGraph["m"])

	assert.Equal(t, 2, result.Stats.TotalFiles)
	assert.Equal(t, 1, result.Stats.TotalClasses)
	assert.Equal(t, 3, result.Stats.TotalFunctions)
	assert.Equal(t, 3, result.Stats.TotalCalls)

	assert.Equal(t, filepath.Join(filepath.Dir(cachePath), "graphs", "dependency_tree.png"),
		result.Graphs.DependencyTree)

	// The artifact is persisted even when graph rendering is unavailable.
	_, err = os.Stat(cachePath)
	assert.NoError(t, err)
}

func TestRunAnalysisCacheHit(t *testing.T) {
	repo := sampleRepo(t)
	cachePath := filepath.Join(t.TempDir(), "analyzer_output.json")

	sa := New(nil, 1)
	first, err := sa.RunAnalysis(repo, cachePath, false)
	require.NoError(t, err)

	// Same instance: served from memory.
	second, err := sa.RunAnalysis(repo, cachePath, false)
	require.NoError(t, err)
	assert.Same(t, first, second)

	// Fresh instance: served from disk, unchanged even though the
	// source tree changed after the artifact was written.
	writeFile(t, repo, "c.py", "def added(): pass\n")
	third, err := New(nil, 1).RunAnalysis(repo, cachePath, false)
	require.NoError(t, err)
	assert.Equal(t, first.Stats, third.Stats)
	assert.Equal(t, first.CallGraph, third.CallGraph)
}

func TestRunAnalysisParallelMatchesSequential(t *testing.T) {
	repo := sampleRepo(t)
	writeFile(t, repo, "d.py", "def d1():\n    main()\n\ndef d2():\n    d1()\n")

	seqCache := filepath.Join(t.TempDir(), "seq.json")
	parCache := filepath.Join(t.TempDir(), "par.json")

	seq, err := New(nil, 1).RunAnalysis(repo, seqCache, false)
	require.NoError(t, err)

	par, err := New(nil, 4).RunAnalysis(repo, parCache, false)
	require.NoError(t, err)

	assert.Equal(t, seq.Files, par.Files)
	assert.Equal(t, seq.CallGraph, par.CallGraph)
	assert.Equal(t, seq.Stats, par.Stats)
}

func TestRunAnalysisIdempotent(t *testing.T) {
	repo := sampleRepo(t)

	cacheA := filepath.Join(t.TempDir(), "a.json")
	cacheB := filepath.Join(t.TempDir(), "b.json")

	_, err := New(nil, 1).RunAnalysis(repo, cacheA, false)
	require.NoError(t, err)
	_, err = New(nil, 1).RunAnalysis(repo, cacheB, false)
	require.NoError(t, err)

	dataA, err := os.ReadFile(cacheA)
	require.NoError(t, err)
	dataB, err := os.ReadFile(cacheB)
	require.NoError(t, err)

	// Graph artifact paths differ by cache dir; the extracted content
	// itself must be byte-identical across runs.
	var a, b AnalysisResult
	require.NoError(t, json.Unmarshal(dataA, &a))
	require.NoError(t, json.Unmarshal(dataB, &b))
	assert.Equal(t, a.Files, b.Files)
	assert.Equal(t, a.CallGraph, b.CallGraph)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestRunAnalysisSkipsFailedConversions(t *testing.T) {
	repo := sampleRepo(t)
	// Conversion failure for one file must not abort the run.
	writeFile(t, repo, "broken.jac", "%%% definitely not jac %%%")

	cachePath := filepath.Join(t.TempDir(), "out.json")
	result, err := New(nil, 1).RunAnalysis(repo, cachePath, false)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.TotalFiles)
	for _, f := range result.Files {
		assert.NotEqual(t, "broken.jac", f.File)
	}
}

func TestRunAnalysisEmptyRepo(t *testing.T) {
	repo := t.TempDir()
	cachePath := filepath.Join(t.TempDir(), "out.json")

	result, err := New(nil, 1).RunAnalysis(repo, cachePath, false)
	require.NoError(t, err)

	assert.Empty(t, result.Files)
	assert.Empty(t, result.CallGraph)
	assert.Equal(t, 0, result.Stats.TotalFiles)
}
