package configs

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"flexipy-lite/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher_FiresOnConfigWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	changed := make(chan struct{}, 4)

	w, err := NewWatcher(dir, 20*time.Millisecond, logger.NewNop(), func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cfg.json"), []byte(`{}`), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	require.NoError(t, w.Close())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	var calls atomic.Int32

	w, err := NewWatcher(dir, 10*time.Millisecond, logger.NewNop(), func() {
		calls.Add(1)
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, w.Close())
	assert.Zero(t, calls.Load())
}

func TestWatcher_CloseWaitsForRunningCallback(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	var once sync.Once

	w, err := NewWatcher(dir, 10*time.Millisecond, logger.NewNop(), func() {
		once.Do(func() {
			close(started)
			<-release
			finished.Store(true)
		})
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cfg.json"), []byte(`{}`), 0644))

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	closed := make(chan error, 1)
	go func() { closed <- w.Close() }()

	select {
	case <-closed:
		t.Fatal("Close returned while the callback was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}
	assert.True(t, finished.Load())
}

func TestWatcher_CloseTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(t.TempDir(), 0, logger.NewNop(), nil)
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), 0, logger.NewNop(), nil)
	assert.Error(t, err)
}
