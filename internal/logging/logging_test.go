package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWithoutDebug(t *testing.T) {
	t.Setenv("GITTREE_DEBUG", "")
	t.Setenv("GITTREE_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomFile(t *testing.T) {
	t.Setenv("GITTREE_DEBUG", "")
	t.Setenv("GITTREE_DEBUG_FILE", "")
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, logFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("hello from test")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")

	_, err = Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	for i, name := range []string{"a.log", "b.log", "c.log", "keep.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
		modTime := now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	require.NoError(t, rotateLogs(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"c.log", "keep.txt"}, names)
}
