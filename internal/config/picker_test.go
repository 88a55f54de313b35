package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPickerConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadPickerConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPickerConfig(), cfg)
}

func TestLoadPickerConfig_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `display_format: "ddd D MMM, HH:mm"
date_only: true
timezone: UTC
theme:
  color: "#FF9500"
  dark_mode: true
rules:
  disabled_dates: ["2026-12-25", "2027-01-01"]
  disable_past: true
  disable_before: "2026-11-01 9:30:00"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadPickerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ddd D MMM, HH:mm", cfg.DisplayFormat)
	assert.Equal(t, picker.DefaultPlaceholder, cfg.Placeholder, "unset keys keep defaults")
	assert.True(t, cfg.DateOnly)
	assert.Equal(t, "#FF9500", cfg.Theme.Color)
	assert.True(t, cfg.Theme.DarkMode)
	assert.Equal(t, []string{"2026-12-25", "2027-01-01"}, cfg.Rules.DisabledDates)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.True(t, opts.DateOnly)
	assert.True(t, opts.Rules.DisablePast)
	require.NotNil(t, opts.Rules.DisableBefore)
	assert.Equal(t, time.Date(2026, 11, 1, 9, 30, 0, 0, time.UTC), *opts.Rules.DisableBefore)
	assert.Nil(t, opts.Rules.DisableAfter)
}

func TestLoadPickerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "rules: [unclosed"},
		{"bad timezone", "timezone: Nowhere/Special"},
		{"bad disabled date", "rules:\n  disabled_dates: [\"2026-02-30\"]\n"},
		{"bad boundary", "rules:\n  disable_after: \"tomorrow\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadPickerConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestPickerConfig_InvalidTimezoneError(t *testing.T) {
	_, err := PickerConfig{Timezone: "Nowhere/Special"}.Options()
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestSavePickerConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultPickerConfig()
	cfg.Timezone = "UTC"
	cfg.Rules.DisableFuture = true
	cfg.Rules.DisableAfter = "2027-06-30 18:00:00"

	require.NoError(t, SavePickerConfig(path, cfg))

	loaded, err := LoadPickerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSavePickerConfig_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := SavePickerConfig(path, PickerConfig{Rules: RulesConfig{DisableBefore: "soon"}})
	assert.ErrorIs(t, err, ErrInvalidBoundary)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigPath_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DTPICK_DATA_DIR", dir)
	t.Setenv("DTPICK_CONFIG", "")

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigName), path)

	t.Setenv("DTPICK_CONFIG", "/tmp/elsewhere.yaml")
	path, err = ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.yaml", path)

	dbPath, err := DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DbName), dbPath)

	logDir, err := LogDir()
	require.NoError(t, err)
	assert.DirExists(t, logDir)
}
