package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/emdahl/codeatlas/analyzer"
	"github.com/emdahl/codeatlas/extract"
)

func main() {
	var (
		repoPath  = flag.String("path", ".", "Path to repository to analyze")
		cachePath = flag.String("cache", "outputs/analyzer_output.json", "Path of the analysis artifact")
		config    = flag.String("config", "", "Optional YAML file overriding the call-target exclusion sets")
		noCache   = flag.Bool("no-cache", false, "Discard an existing artifact and re-run the analysis")
		workers   = flag.Int("workers", 1, "Number of parallel file workers")
		verbose   = flag.Bool("verbose", false, "Enable verbose output")
	)
	flag.Parse()

	fmt.Println("=== Codeatlas Structure Analysis ===")

	exclusions := extract.DefaultExclusions()
	if *config != "" {
		loaded, err := extract.LoadExclusions(*config)
		if err != nil {
			log.Fatalf("Failed to load exclusion config: %v", err)
		}
		exclusions = loaded
	}

	if *noCache {
		if err := os.Remove(*cachePath); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to discard cached artifact: %v", err)
		}
	}

	sa := analyzer.New(exclusions, *workers)
	if _, err := sa.RunAnalysis(*repoPath, *cachePath, *verbose); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}
