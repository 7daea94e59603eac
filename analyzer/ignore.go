package analyzer

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// skipDirs are directories never descended into: version-control
// metadata, dependency and virtual-env directories, build caches.
var skipDirs = map[string]bool{
	"node_modules": true,
	"__pycache__":  true,
	"vendor":       true,
	"build":        true,
	"dist":         true,
	"venv":         true,
	"env":          true,
	".venv":        true,
}

// IgnoreMatcher filters walked paths against the repository's .gitignore
// patterns on top of the built-in directory exclusions.
type IgnoreMatcher struct {
	rootDir          string
	ignorePatterns   []string
	negationPatterns []string
}

// NewIgnoreMatcher creates a matcher for the given repository root,
// loading .gitignore if present.
func NewIgnoreMatcher(rootDir string) *IgnoreMatcher {
	m := &IgnoreMatcher{rootDir: rootDir}
	m.loadGitignore()
	return m
}

func (m *IgnoreMatcher) loadGitignore() {
	file, err := os.Open(filepath.Join(m.rootDir, ".gitignore"))
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "!") {
			m.negationPatterns = append(m.negationPatterns, strings.TrimPrefix(line, "!"))
		} else {
			m.ignorePatterns = append(m.ignorePatterns, line)
		}
	}
}

// ShouldIgnore checks if a path should be ignored based on .gitignore patterns
func (m *IgnoreMatcher) ShouldIgnore(path string) bool {
	relPath, err := filepath.Rel(m.rootDir, path)
	if err != nil {
		return false
	}

	relPath = filepath.ToSlash(relPath)

	ignored := false
	for _, pattern := range m.ignorePatterns {
		if matchPattern(pattern, relPath) {
			ignored = true
			break
		}
	}

	if ignored {
		for _, pattern := range m.negationPatterns {
			if matchPattern(pattern, relPath) {
				return false
			}
		}
	}

	return ignored
}

// matchPattern checks if a path matches a gitignore pattern
func matchPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/") {
		pattern = strings.TrimSuffix(pattern, "/")

		if strings.HasPrefix(path, pattern+"/") || path == pattern {
			return true
		}

		for _, part := range strings.Split(path, "/") {
			if part == pattern {
				return true
			}
		}

		return false
	}

	if strings.HasPrefix(pattern, "/") {
		return matchSimplePattern(strings.TrimPrefix(pattern, "/"), path)
	}

	if matchSimplePattern(pattern, path) {
		return true
	}

	pathParts := strings.Split(path, "/")
	for i := range pathParts {
		if matchSimplePattern(pattern, strings.Join(pathParts[i:], "/")) {
			return true
		}
	}

	if !strings.Contains(pattern, "/") {
		for _, part := range pathParts {
			if matchSimplePattern(pattern, part) {
				return true
			}
		}
	}

	return false
}

func matchSimplePattern(pattern, text string) bool {
	if pattern == text {
		return true
	}

	if strings.Contains(pattern, "*") {
		return matchWildcard(pattern, text)
	}

	return false
}

// matchWildcard performs basic wildcard pattern matching
func matchWildcard(pattern, text string) bool {
	if pattern == "*" {
		return true
	}

	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		return strings.Contains(text, pattern[1:len(pattern)-1])
	}

	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(text, pattern[1:])
	}

	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(text, pattern[:len(pattern)-1])
	}

	return false
}
