package parser

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ConvertedMarker is appended to converted Jac filenames. Files already
// carrying it are skipped during repository walks to prevent double-counting.
const ConvertedMarker = "_converted.py"

// ConvertJacToPython converts a Jac source file to Python using the external
// jac toolchain and returns the path of the converted file. The converted
// file lands in a per-run temp directory; callers keep reporting the
// original .jac path as the display name.
func ConvertJacToPython(filePath string) (string, error) {
	tempDir := filepath.Join(os.TempDir(), "codeatlas_temp")
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	filename := strings.TrimSuffix(filepath.Base(filePath), ".jac") + ConvertedMarker
	tempPath := filepath.Join(tempDir, filename)

	out, err := exec.Command("jac", "jac2py", filePath).Output()
	if err != nil {
		return "", fmt.Errorf("jac2py failed for %s: %w", filePath, err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("jac2py produced no output for %s", filePath)
	}

	if err := os.WriteFile(tempPath, out, 0o644); err != nil {
		return "", fmt.Errorf("failed to write converted file: %w", err)
	}

	return tempPath, nil
}
