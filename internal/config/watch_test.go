package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	w := NewWatcher(time.Hour, path, "")
	require.Empty(t, w.Check())

	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))
	changed := w.Check()
	require.Len(t, changed, 1)
	require.Equal(t, filepath.Base(path), filepath.Base(changed[0]))
	require.Empty(t, w.Check())

	require.NoError(t, os.Remove(path))
	require.Empty(t, w.Check())
}

func TestWatcherRunInvokesCallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	w := NewWatcher(5*time.Millisecond, path)
	hits := make(chan string, 1)
	w.OnChange(func(p string) {
		select {
		case hits <- p:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	select {
	case p := <-hits:
		require.Equal(t, filepath.Base(path), filepath.Base(p))
	case <-time.After(2 * time.Second):
		t.Fatal("change not reported")
	}
	cancel()
	<-done
}

func TestWatcherNonPositiveIntervalFallsBack(t *testing.T) {
	for _, iv := range []time.Duration{0, -time.Second} {
		w := NewWatcher(iv)
		require.Equal(t, DefaultWatchInterval, w.interval)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NotPanics(t, func() { w.Run(ctx) })
	}
}
