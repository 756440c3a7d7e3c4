package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	out := &bytes.Buffer{}
	cmd := newTestRoot(t)
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "wrote")

	targetPath := filepath.Join(tempDir, configFileName)
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "max_memory")
	assert.Contains(t, string(contents), "extract_timeout")
	assert.Contains(t, string(contents), "config_path")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("parallel: 2\n"), 0o644))

	cmd := newTestRoot(t)
	cmd.AddCommand(newInitCmd())
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()
	require.Error(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "parallel: 2\n", string(contents))
}
