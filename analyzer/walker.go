package analyzer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/emdahl/codeatlas/parser"
)

// findSourceFiles walks the repository and returns every eligible
// Python/Jac file in stable lexical order. Hidden directories, known
// build/dependency directories, gitignored paths and already-converted
// Jac artifacts are skipped.
func findSourceFiles(repoPath string) ([]string, error) {
	var sourceFiles []string

	ignore := NewIgnoreMatcher(repoPath)

	err := filepath.Walk(repoPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ignore.ShouldIgnore(path) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() && path != repoPath {
			if strings.HasPrefix(info.Name(), ".") || skipDirs[info.Name()] ||
				strings.HasSuffix(info.Name(), ".egg-info") {
				return filepath.SkipDir
			}
		}

		if !info.IsDir() {
			if strings.Contains(info.Name(), parser.ConvertedMarker) {
				return nil
			}
			ext := filepath.Ext(path)
			if ext == ".py" || ext == ".jac" {
				sourceFiles = append(sourceFiles, path)
			}
		}

		return nil
	})

	return sourceFiles, err
}
