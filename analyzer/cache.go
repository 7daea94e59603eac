package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// loadCachedResult deserializes a prior analysis artifact. A present
// cache is treated as unconditionally valid; stale caches are a known,
// accepted limitation.
func loadCachedResult(path string) (*AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var result AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached result %s: %w", path, err)
	}

	return &result, nil
}

// saveCachedResult persists the analysis artifact as indented JSON.
func saveCachedResult(path string, result *AnalysisResult) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
