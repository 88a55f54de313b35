package sync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, w *Watcher) ConfigChangeEvent {
	t.Helper()
	select {
	case ev := <-w.Changes():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config change")
	}
	return ConfigChangeEvent{}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigName)
	require.NoError(t, config.SavePickerConfig(path, config.DefaultPickerConfig()))

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	cfg := config.DefaultPickerConfig()
	cfg.Rules.DisablePast = true
	cfg.Rules.DisabledDates = []string{"2026-12-25"}
	require.NoError(t, config.SavePickerConfig(path, cfg))

	ev := waitForChange(t, w)
	require.NoError(t, ev.Err)
	assert.Equal(t, path, ev.Path)
	assert.True(t, ev.Config.Rules.DisablePast)
	assert.Equal(t, []string{"2026-12-25"}, ev.Config.Rules.DisabledDates)
}

func TestWatcher_ReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigName)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("timezone: Nowhere/Special\n"), 0644))

	ev := waitForChange(t, w)
	assert.ErrorIs(t, ev.Err, config.ErrInvalidTimezone)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigName)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))

	select {
	case ev := <-w.Changes():
		t.Fatalf("unexpected change for %s", ev.Path)
	case <-time.After(300 * time.Millisecond):
	}
}
