package analyzer

import (
	"sort"
	"strings"

	"github.com/emdahl/codeatlas/extract"
)

// CallersOf returns every defined function whose recorded callees
// include name, in sorted order for reproducible output.
func (r *AnalysisResult) CallersOf(name string) []string {
	var callers []string

	for caller, callees := range r.CallGraph {
		for _, callee := range callees {
			if callee == name {
				callers = append(callers, caller)
				break
			}
		}
	}

	sort.Strings(callers)
	return callers
}

// CalleesOf returns the names called by the given function in
// first-occurrence order, or an empty slice if the function is unknown.
func (r *AnalysisResult) CalleesOf(name string) []string {
	if callees, ok := r.CallGraph[name]; ok {
		return callees
	}
	return []string{}
}

// EntitiesOfFile returns the first analyzed file whose display name
// contains nameFragment as a substring. Partial filenames are accepted
// on purpose; nil means no match.
func (r *AnalysisResult) EntitiesOfFile(nameFragment string) *extract.SourceFile {
	for i := range r.Files {
		if strings.Contains(r.Files[i].File, nameFragment) {
			return &r.Files[i]
		}
	}
	return nil
}
