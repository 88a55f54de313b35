package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger restores a stderr logger once the test is done
func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Close()
		InitializeWithConfig(Config{Level: "INFO", Format: "text"})
	})
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInitializeWithConfig_TUIModeUsesDataDir(t *testing.T) {
	resetLogger(t)
	dataDir := t.TempDir()
	t.Setenv("DTPICK_DATA_DIR", dataDir)

	require.NoError(t, InitializeWithConfig(Config{Level: "DEBUG", TUIMode: true}))

	expected := filepath.Join(dataDir, "logs", logFileName)
	assert.Equal(t, expected, GetLogFile())
	assert.True(t, IsTUIMode())
	assert.Equal(t, slog.LevelDebug, GetLevel())

	Debug("picker opened", "value", "2026-10-16 9:00:00")
	require.NoError(t, Close())
	assert.Contains(t, readLog(t, expected), "picker opened")
}

func TestInitializeWithConfig_RotationTarget(t *testing.T) {
	resetLogger(t)
	file := filepath.Join(t.TempDir(), "nested", "dtpick.log")

	require.NoError(t, InitializeWithConfig(Config{Level: "INFO", File: file}))

	mu.RLock()
	r := rotator
	mu.RUnlock()
	require.NotNil(t, r)
	assert.Equal(t, file, r.Filename)
	assert.Equal(t, 10, r.MaxSize)
	assert.Equal(t, 3, r.MaxBackups)
	assert.Equal(t, 28, r.MaxAge)

	Info("before rotate")
	require.NoError(t, r.Rotate())
	Info("after rotate")
	require.NoError(t, Close())

	entries, err := os.ReadDir(filepath.Dir(file))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "the rotated backup sits next to the live file")

	live := readLog(t, file)
	assert.Contains(t, live, "after rotate")
	assert.NotContains(t, live, "before rotate")
}

func TestInitializeWithConfig_ReinitSwitchesFile(t *testing.T) {
	resetLogger(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, InitializeWithConfig(Config{Level: "INFO", File: first}))
	Info("to first")

	mu.RLock()
	previous := rotator
	mu.RUnlock()

	require.NoError(t, InitializeWithConfig(Config{Level: "INFO", File: second}))
	Info("to second")

	mu.RLock()
	current := rotator
	mu.RUnlock()
	assert.NotSame(t, previous, current)
	assert.Equal(t, second, GetLogFile())

	require.NoError(t, Close())
	assert.Contains(t, readLog(t, first), "to first")
	assert.NotContains(t, readLog(t, first), "to second")
	assert.Contains(t, readLog(t, second), "to second")
}

func TestInitializeWithConfig_TUIModeLogDirFailure(t *testing.T) {
	resetLogger(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))
	t.Setenv("DTPICK_DATA_DIR", filepath.Join(blocker, "data"))

	err := InitializeWithConfig(Config{Level: "INFO", TUIMode: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI mode requires file-based logging")
}

func TestInitializeWithConfig_UnwritableFile(t *testing.T) {
	resetLogger(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	file := filepath.Join(blocker, "sub", "dtpick.log")

	err := InitializeWithConfig(Config{Level: "INFO", File: file})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create log directory")

	err = InitializeWithConfig(Config{Level: "INFO", File: file, TUIMode: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI mode requires file-based logging")
}

func TestInitializeWithConfig_LogFileFromEnv(t *testing.T) {
	resetLogger(t)
	file := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("LOG_FILE", file)
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")

	require.NoError(t, InitializeWithConfig(ConfigFromEnv(true)))
	assert.Equal(t, file, GetLogFile(), "an explicit file wins over the TUI default")
	assert.Equal(t, "json", GetFormat())

	Info("dropped below warn")
	Warn("config not reloaded", "path", "/tmp/config.yaml")
	require.NoError(t, Close())

	lines := strings.Split(strings.TrimSpace(readLog(t, file)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "config not reloaded", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/tmp/config.yaml", entry["path"])
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		debug     string
		wantLevel string
	}{
		{"defaults to info", "", "", "INFO"},
		{"debug flag", "", "1", "DEBUG"},
		{"debug flag spelled out", "", "true", "DEBUG"},
		{"level wins over debug flag", "warn", "1", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("DTPICK_DEBUG", tt.debug)
			t.Setenv("LOG_FORMAT", "")
			t.Setenv("LOG_FILE", "")

			cfg := ConfigFromEnv(false)
			assert.Equal(t, tt.wantLevel, cfg.Level)
			assert.Equal(t, "text", cfg.Format)
			assert.Empty(t, cfg.File)
			assert.False(t, cfg.TUIMode)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestClose_Idempotent(t *testing.T) {
	resetLogger(t)
	require.NoError(t, InitializeWithConfig(Config{Level: "INFO", File: filepath.Join(t.TempDir(), "close.log")}))

	assert.NoError(t, Close())
	assert.NoError(t, Close())
}

func TestGetLogger_ConcurrentReinit(t *testing.T) {
	resetLogger(t)
	dir := t.TempDir()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Info("concurrent write")
		}()
		go func() {
			defer wg.Done()
			InitializeWithConfig(Config{Level: "INFO", File: filepath.Join(dir, "c.log")})
		}()
	}
	wg.Wait()

	assert.NotNil(t, GetLogger())
}
