package parser

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertJacToPythonWithoutToolchain(t *testing.T) {
	if _, err := exec.LookPath("jac"); err == nil {
		t.Skip("jac toolchain installed")
	}

	path := filepath.Join(t.TempDir(), "flow.jac")
	require.NoError(t, os.WriteFile(path, []byte("walker w {}"), 0o644))

	_, err := ConvertJacToPython(path)
	assert.Error(t, err)
}
