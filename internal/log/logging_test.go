package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"TRACE":   LevelTrace,
		"WARN":    slog.LevelWarn,
		"info+2":  slog.LevelInfo + 2,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestConsoleHandlerSplitsByLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(NewConsoleHandler(&stdout, &stderr, slog.LevelInfo))

	logger.Debug("hidden")
	logger.Info("scanned header", "codes", 3)
	logger.Error("write failed")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "scanned header")
	assert.Contains(t, stdout.String(), "codes=3")
	assert.NotContains(t, stdout.String(), "write failed")
	assert.Contains(t, stderr.String(), "write failed")
	assert.NotContains(t, stderr.String(), "scanned header")
}

func TestConsoleHandlerTrace(t *testing.T) {
	var stdout bytes.Buffer
	logger := slog.New(NewConsoleHandler(&stdout, &bytes.Buffer{}, LevelTrace))

	assert.True(t, logger.Enabled(context.Background(), LevelTrace))
	logger.Log(context.Background(), LevelTrace, "line")
	assert.Contains(t, stdout.String(), "line")
}

func TestSetupLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keycodegen.log")

	logger, closers, err := SetupLogger("debug", path, os.Stdout)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("written to file", "entries", 7)
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), "entries=7")
}

func TestSetupLoggerBadFile(t *testing.T) {
	_, _, err := SetupLogger("info", filepath.Join(t.TempDir(), "missing", "dir", "x.log"), os.Stdout)
	assert.Error(t, err)
}

func TestConsoleHandlerWithAttrsReachesBothWriters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(NewConsoleHandler(&stdout, &stderr, slog.LevelInfo)).
		With("cmd", "generate").
		WithGroup("fragment")

	logger.Info("written", "file", "str2code.txt")
	logger.Error("failed", "file", "code2str.txt")

	assert.Contains(t, stdout.String(), "cmd=generate fragment.file=str2code.txt")
	assert.Contains(t, stderr.String(), "cmd=generate fragment.file=code2str.txt")
}

func TestConsoleHandlerErrorLevelOnlyUsesStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(NewConsoleHandler(&stdout, &stderr, slog.LevelError))

	logger.Warn("quiet")
	logger.Error("loud")

	assert.Empty(t, stdout.String())
	assert.NotContains(t, stderr.String(), "quiet")
	assert.Contains(t, stderr.String(), "loud")
}
