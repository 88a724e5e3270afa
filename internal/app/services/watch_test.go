package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatchServiceStartWithoutPath(t *testing.T) {
	w := NewConfigWatchService(nil)
	started, err := w.Start("")
	require.NoError(t, err)
	assert.False(t, started)
	assert.Nil(t, w.NextEvent())
	w.Stop()
}

func TestConfigWatchServiceShouldReload(t *testing.T) {
	w := NewConfigWatchService(nil)
	now := time.Now()

	assert.True(t, w.ShouldReload(now))
	assert.False(t, w.ShouldReload(now.Add(ConfigWatchDebounce/2)))
	assert.True(t, w.ShouldReload(now.Add(2*ConfigWatchDebounce)))
}

func TestConfigWatchServiceIsConfigEvent(t *testing.T) {
	w := &ConfigWatchService{Path: "/cfg/gitsim/config.yaml"}

	assert.True(t, w.IsConfigEvent(fsnotify.Event{Name: "/cfg/gitsim/config.yaml", Op: fsnotify.Write}))
	assert.True(t, w.IsConfigEvent(fsnotify.Event{Name: "/cfg/gitsim/config.yaml", Op: fsnotify.Create}))
	assert.False(t, w.IsConfigEvent(fsnotify.Event{Name: "/cfg/gitsim/config.yaml", Op: fsnotify.Chmod}))
	assert.False(t, w.IsConfigEvent(fsnotify.Event{Name: "/cfg/gitsim/other.yaml", Op: fsnotify.Write}))
}

func TestConfigWatchServiceSignalDoesNotBlock(t *testing.T) {
	w := &ConfigWatchService{Events: make(chan struct{}, 1), Done: make(chan struct{})}
	w.Signal()
	w.Signal()

	events := w.NextEvent()
	require.NotNil(t, events)
	// Already waiting
	assert.Nil(t, w.NextEvent())

	<-events
	w.ResetWaiting()
	assert.NotNil(t, w.NextEvent())
}

func TestConfigWatchServiceSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: nord\n"), 0o600))

	w := NewConfigWatchService(nil)
	started, err := w.Start(path)
	require.NoError(t, err)
	require.True(t, started)
	t.Cleanup(w.Stop)

	events := w.NextEvent()
	require.NotNil(t, events)

	require.NoError(t, os.WriteFile(path, []byte("theme: dracula\n"), 0o600))

	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a config change event")
	}
}
