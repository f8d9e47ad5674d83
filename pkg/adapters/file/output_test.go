package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/boolmin/pkg/adapters/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "minimized.eqn")

	require.NoError(t, file.WriteResult(path, "f = (a&b);\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "f = (a&b);\n", string(data))

	require.NoError(t, file.WriteResult(path, "g = a;\n"))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "g = a;\n", string(data), "existing content is overwritten")

	assert.Error(t, file.WriteResult("", "x"))
}

func TestWriteResult_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.txt")

	require.NoError(t, file.WriteResult(path, "f = a;\n"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "result.txt", entries[0].Name())
}
