package analyzer

import (
	"fmt"
	"log"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/emdahl/codeatlas/extract"
	"github.com/emdahl/codeatlas/graph"
	"github.com/emdahl/codeatlas/parser"
)

// resultCacheSize bounds the in-memory result cache; one entry per
// distinct cache path is plenty for CLI use.
const resultCacheSize = 16

// StructureAnalyzer extracts entities and call relationships from a
// source repository and aggregates them into an AnalysisResult.
type StructureAnalyzer struct {
	exclusions *extract.ExclusionSet
	workers    int
	results    *lru.Cache[string, *AnalysisResult]
}

// New creates a new structure analyzer. A nil exclusion set falls back
// to the defaults; workers below 1 run the per-file stage sequentially.
func New(exclusions *extract.ExclusionSet, workers int) *StructureAnalyzer {
	if exclusions == nil {
		exclusions = extract.DefaultExclusions()
	}
	if workers < 1 {
		workers = 1
	}

	results, err := lru.New[string, *AnalysisResult](resultCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}

	return &StructureAnalyzer{
		exclusions: exclusions,
		workers:    workers,
		results:    results,
	}
}

// fileResult is the per-file output merged into the aggregate. Merging
// happens as a single in-order reduction so parallel runs stay
// byte-identical to sequential ones.
type fileResult struct {
	entities *extract.SourceFile
	calls    extract.CallGraph
}

// RunAnalysis analyzes the repository rooted at repoPath. An existing
// result at cachePath is authoritative and returned unchanged; no
// staleness check is performed. Otherwise every eligible file is parsed
// and extracted, the aggregate is persisted to cachePath and returned.
func (sa *StructureAnalyzer) RunAnalysis(repoPath, cachePath string, verbose bool) (*AnalysisResult, error) {
	if result, ok := sa.results.Get(cachePath); ok {
		fmt.Printf("Reusing cached analysis for %s\n", cachePath)
		return result, nil
	}

	if result, err := loadCachedResult(cachePath); err == nil {
		fmt.Printf("Reusing cached analysis from %s\n", cachePath)
		sa.results.Add(cachePath, result)
		return result, nil
	}

	fmt.Printf("Analyzing repository: %s\n", repoPath)

	// Grammar availability is fatal for the whole run, unlike per-file
	// parse failures.
	probe, err := parser.NewPythonParser()
	if err != nil {
		return nil, fmt.Errorf("parser initialization failed: %w", err)
	}
	probe.Close()

	sourceFiles, err := findSourceFiles(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find source files: %w", err)
	}
	fmt.Printf("Found %d source files for analysis\n", len(sourceFiles))

	results := make([]*fileResult, len(sourceFiles))

	var group errgroup.Group
	group.SetLimit(sa.workers)
	for i, path := range sourceFiles {
		i, path := i, path
		group.Go(func() error {
			res, err := sa.processFile(path)
			if err != nil {
				log.Printf("skipping %s: %v", path, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	files := []extract.SourceFile{}
	allCalls := extract.CallGraph{}
	for i, res := range results {
		if res == nil {
			continue
		}

		if len(res.entities.Functions) > 0 || len(res.entities.Classes) > 0 {
			files = append(files, *res.entities)
		}

		// Later files win for duplicated function names, applied in
		// stable walk order.
		for name, callees := range res.calls {
			allCalls[name] = callees
		}

		if verbose {
			fmt.Printf("  %s: %d classes, %d functions\n",
				filepath.Base(sourceFiles[i]), len(res.entities.Classes), len(res.entities.Functions))
		}
	}

	graphsDir := filepath.Join(filepath.Dir(cachePath), "graphs")
	depTreePath := filepath.Join(graphsDir, "dependency_tree")
	classHierPath := filepath.Join(graphsDir, "class_hierarchy")

	if err := graph.Render(graph.BuildDependencyTree(files, allCalls), depTreePath); err != nil {
		log.Printf("dependency tree rendering failed: %v", err)
	}
	if err := graph.Render(graph.BuildClassHierarchy(files), classHierPath); err != nil {
		log.Printf("class hierarchy rendering failed: %v", err)
	}

	totalCalls := 0
	totalFunctions := 0
	totalClasses := 0
	for _, callees := range allCalls {
		totalCalls += len(callees)
	}
	for _, file := range files {
		totalFunctions += len(file.Functions)
		totalClasses += len(file.Classes)
	}

	result := &AnalysisResult{
		RepoPath:  repoPath,
		Files:     files,
		CallGraph: allCalls,
		Graphs: GraphArtifacts{
			DependencyTree: depTreePath + ".png",
			ClassHierarchy: classHierPath + ".png",
		},
		Stats: Stats{
			TotalFiles:     len(files),
			TotalClasses:   totalClasses,
			TotalFunctions: totalFunctions,
			TotalCalls:     totalCalls,
		},
	}

	if err := saveCachedResult(cachePath, result); err != nil {
		return nil, fmt.Errorf("failed to persist analysis result: %w", err)
	}
	sa.results.Add(cachePath, result)

	displaySummary(result, cachePath)

	return result, nil
}

// processFile parses one file and extracts its entities and call
// relationships. Jac files are converted to Python first; conversion
// failure skips the file.
func (sa *StructureAnalyzer) processFile(path string) (*fileResult, error) {
	parsePath := path
	if filepath.Ext(path) == ".jac" {
		converted, err := parser.ConvertJacToPython(path)
		if err != nil {
			return nil, err
		}
		parsePath = converted
	}

	fileParser, err := parser.CreateParser(parsePath)
	if err != nil {
		return nil, err
	}
	defer fileParser.Close()

	parseResult, err := fileParser.ParseFile(parsePath)
	if err != nil {
		return nil, err
	}
	defer parseResult.Tree.Close()

	root := parseResult.Tree.RootNode()

	// Display name is always the original filename, never the
	// converted temp path.
	return &fileResult{
		entities: extract.Entities(root, parseResult.Source, filepath.Base(path)),
		calls:    extract.Calls(root, parseResult.Source, sa.exclusions),
	}, nil
}
