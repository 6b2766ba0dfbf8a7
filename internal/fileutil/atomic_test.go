package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("initial"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("Full house Cards: Three: King Two: 9"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Full house Cards: Three: King Two: 9", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "missing", "report.txt")
	assert.ErrorContains(t, WriteFileAtomic(path, []byte("x"), 0o644), "failed to create temp file")
}

func TestWriteJSONAtomic(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tally.json")

	in := map[string]int{"Flush": 5112, "Straight": 9180}
	require.NoError(t, WriteJSONAtomic(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out map[string]int
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestWriteJSONAtomicUnencodable(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.json")
	assert.Error(t, WriteJSONAtomic(path, make(chan int)))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
