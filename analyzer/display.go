package analyzer

import "fmt"

// displaySummary shows the final analysis results in a formatted output
func displaySummary(result *AnalysisResult, cachePath string) {
	fmt.Println("\nAnalysis complete!")
	fmt.Printf("   %d files with entities\n", result.Stats.TotalFiles)
	fmt.Printf("   %d classes, %d functions\n", result.Stats.TotalClasses, result.Stats.TotalFunctions)
	fmt.Printf("   %d function calls tracked\n", result.Stats.TotalCalls)
	fmt.Printf("   Output saved to %s\n", cachePath)
}
