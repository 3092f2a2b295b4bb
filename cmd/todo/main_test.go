package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-text/internal/cli"
	"todo-text/internal/config"
	apperrors "todo-text/internal/errors"
)

func setupRun(t *testing.T) (string, *bytes.Buffer, *bytes.Buffer, cli.Streams) {
	t.Helper()
	dir := t.TempDir()
	for _, key := range []string{"TODO_CONFIG", "TODO_FILE", "TODO_LOG_FILE", "TODO_DEBUG", "TODO_VERBOSE"} {
		t.Setenv(key, "")
	}
	t.Setenv("TODO_DIR", dir)
	t.Setenv("TODO_NO_COLOR", "true")
	t.Setenv("TODO_ASSUME_YES", "true")

	var out, errOut bytes.Buffer
	return dir, &out, &errOut, cli.Streams{In: strings.NewReader(""), Out: &out, Err: &errOut}
}

func TestRun_Success(t *testing.T) {
	dir, out, errOut, streams := setupRun(t)

	code := run([]string{"add", "Buy milk", "14/03/26"}, streams)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Added task: Buy milk (14/03/26)")
	assert.Empty(t, errOut.String())

	data, err := os.ReadFile(filepath.Join(dir, "todo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "14/03/26\tBuy milk\n", string(data))
}

func TestRun_UserErrorIsNotLogged(t *testing.T) {
	dir, _, errOut, streams := setupRun(t)

	code := run([]string{}, streams)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "usage: todo")
	assert.NoFileExists(t, filepath.Join(dir, "log.txt"))
}

func TestRun_StorageErrorIsLogged(t *testing.T) {
	dir, _, errOut, streams := setupRun(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "todo.txt"), 0755))

	code := run([]string{"all"}, streams)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "Could not access the task file. See the log file for details.")

	data, err := os.ReadFile(filepath.Join(dir, "log.txt"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestRun_LogFileFlag(t *testing.T) {
	dir, _, _, streams := setupRun(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "todo.txt"), 0755))

	code := run([]string{"--log-file", "errors.log", "today"}, streams)

	assert.Equal(t, 1, code)
	assert.FileExists(t, filepath.Join(dir, "errors.log"))
	assert.NoFileExists(t, filepath.Join(dir, "log.txt"))
}

func TestBoundary_Report(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewConfig()
	cfg.Store.Dir = dir
	cfg.Display.NoColor = true

	var errOut bytes.Buffer
	b := newBoundary(cli.Streams{Err: &errOut}, cfg)

	assert.Equal(t, 1, b.report(apperrors.NewNotFoundError("task file", "todo.txt")))
	assert.Equal(t, "task file not found: todo.txt\n", errOut.String())
	assert.NoFileExists(t, cfg.LogFilePath())

	errOut.Reset()
	assert.Equal(t, 1, b.report(errors.New("disk on fire")))
	assert.Equal(t, "disk on fire\n", errOut.String())
	assert.FileExists(t, cfg.LogFilePath())
}

func TestBoundary_Recovered(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Store.Dir = t.TempDir()
	cfg.Display.NoColor = true

	var errOut bytes.Buffer
	b := newBoundary(cli.Streams{Err: &errOut}, cfg)

	assert.Equal(t, 1, b.recovered("nil map write"))
	assert.Contains(t, errOut.String(), "panic: nil map write")

	data, err := os.ReadFile(cfg.LogFilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "panic: nil map write")
}
