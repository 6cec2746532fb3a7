package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDebugEnv(t *testing.T) {
	t.Helper()
	t.Setenv(DebugEnv, "")
	t.Setenv(DebugFileEnv, "")
	t.Setenv(MaxLogFilesEnv, "")
}

func TestInitialize_DiscardsWhenDebugOff(t *testing.T) {
	clearDebugEnv(t)

	path, err := Initialize(Options{MaxFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomFile(t *testing.T) {
	clearDebugEnv(t)
	logFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{File: logFile, MaxFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("hello", "key", "value")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"pid":`)
}

func TestInitialize_InheritsFileFromParent(t *testing.T) {
	clearDebugEnv(t)
	logFile := filepath.Join(t.TempDir(), "parent.log")
	t.Setenv(DebugEnv, "1")
	t.Setenv(DebugFileEnv, logFile)

	path, err := Initialize(Options{MaxFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	assert.Equal(t, logFile, path)
}

func TestOptionsInherit_MaxFiles(t *testing.T) {
	clearDebugEnv(t)
	t.Setenv(MaxLogFilesEnv, "5")

	assert.Equal(t, 5, Options{MaxFiles: DefaultMaxLogFiles}.inherit().MaxFiles)
	// An explicit flag value wins over the inherited one
	assert.Equal(t, 2, Options{MaxFiles: 2}.inherit().MaxFiles)
}

func TestRotateLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "keep.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mt := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mt, mt))
	}

	require.NoError(t, rotateLogs(dir, 2))

	assert.NoFileExists(t, filepath.Join(dir, "a.log"), "oldest log should be removed")
	assert.NoFileExists(t, filepath.Join(dir, "b.log"), "second oldest log should be removed to make room")
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 5))
	assert.FileExists(t, filepath.Join(dir, "a.log"))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	previous := Logger
	Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { Logger = previous })

	assert.Same(t, Logger, FromContext(context.Background()))

	ctx := WithContext(context.Background(), "request_id", "req-1")
	ctx = WithContext(ctx, "mutation", "commit")
	FromContext(ctx).Info("applied")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"mutation":"commit"`)
	assert.Contains(t, out, `"msg":"applied"`)
}
