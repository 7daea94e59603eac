package analyzer

import "github.com/emdahl/codeatlas/extract"

// GraphArtifacts records where the rendered graph images were written.
// The paths are recorded even when rendering fails.
type GraphArtifacts struct {
	DependencyTree string `json:"dependency_tree"`
	ClassHierarchy string `json:"class_hierarchy"`
}

// Stats summarizes an analysis run.
type Stats struct {
	TotalFiles     int `json:"total_files"`
	TotalClasses   int `json:"total_classes"`
	TotalFunctions int `json:"total_functions"`
	TotalCalls     int `json:"total_calls"`
}

// AnalysisResult is the aggregated output of one analysis run. It is
// persisted verbatim as JSON at the cache path and reloaded unchanged
// on cache hits.
type AnalysisResult struct {
	RepoPath  string               `json:"repo_path"`
	Files     []extract.SourceFile `json:"files"`
	CallGraph extract.CallGraph    `json:"call_graph"`
	Graphs    GraphArtifacts       `json:"graphs"`
	Stats     Stats                `json:"stats"`
}
