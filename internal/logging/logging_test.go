package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, ParseLevel(tc.input))
		})
	}
}

func TestNew_WritesPlainTextToBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("photo search complete", "query", "cat")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "photo search complete")
	require.Contains(t, out, "query=cat")
	require.NotContains(t, out, "\x1b[", "non-terminal sinks must not get ANSI colour")
}

func TestOpenFile_CreatesDirectoriesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "shutter.log")

	logger, closeFn, err := OpenFile(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("first")
	require.NoError(t, closeFn())

	logger, closeFn, err = OpenFile(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("second")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "first")
	require.Contains(t, string(data), "second")
}
