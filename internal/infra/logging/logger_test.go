package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	configDir := t.TempDir()
	logger := New(configDir, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC) }
	defer func() { _ = logger.Close() }()

	logger.Info("bootstrap", "loaded 30 tasks")

	content, err := os.ReadFile(domain.LogPath(configDir))
	require.NoError(t, err)
	assert.Equal(t, "[2025-12-30 09:32:51] [INFO] [bootstrap] loaded 30 tasks\n", string(content))
}

func TestLogger_LevelFiltering(t *testing.T) {
	configDir := t.TempDir()
	logger := New(configDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Debug("test", "debug message")
	logger.Info("test", "info message")
	logger.Warn("test", "warn message")
	logger.Error("test", "error message")

	content, err := os.ReadFile(domain.LogPath(configDir))
	require.NoError(t, err)
	s := string(content)
	assert.NotContains(t, s, "debug message")
	assert.NotContains(t, s, "info message")
	assert.Contains(t, s, "[WARN] [test] warn message")
	assert.Contains(t, s, "[ERROR] [test] error message")
}

func TestLogger_NoFileBelowLevel(t *testing.T) {
	configDir := t.TempDir()
	logger := New(configDir, slog.LevelError)
	defer func() { _ = logger.Close() }()

	logger.Info("test", "skipped")

	_, err := os.Stat(domain.LogPath(configDir))
	assert.True(t, os.IsNotExist(err))
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)

	// Should not panic
	logger.Info("test", "message")
	assert.Empty(t, logger.Path())
	assert.NoError(t, logger.Close())
}

func TestLogger_Appends(t *testing.T) {
	configDir := t.TempDir()

	first := New(configDir, slog.LevelInfo)
	first.Info("a", "one")
	require.NoError(t, first.Close())

	second := New(configDir, slog.LevelInfo)
	second.Info("b", "two")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(domain.LogPath(configDir))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "one")
	assert.Contains(t, lines[1], "two")
}

func TestLogger_Concurrent(t *testing.T) {
	configDir := t.TempDir()
	logger := New(configDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("store", "dispatch")
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(domain.LogPath(configDir))
	require.NoError(t, err)
	assert.Equal(t, 20, strings.Count(string(content), "[store] dispatch\n"))
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, "[2025-01-02 03:04:05] [DEBUG] [cat] m\n", formatLog(ts, slog.LevelDebug, "cat", "m"))
	assert.Equal(t, "[2025-01-02 03:04:05] [INFO] [cat] m\n", formatLog(ts, slog.Level(99), "cat", "m"))
}
