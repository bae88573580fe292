package lock

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAcquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "daemon.lock")

	first, err := TryAcquire(path)
	require.NoError(t, err)

	_, err = TryAcquire(path)
	assert.ErrorIs(t, err, ErrHeld)

	require.NoError(t, first.Release())

	second, err := TryAcquire(path)
	require.NoError(t, err)
	require.NoError(t, second.Release())
	require.NoError(t, second.Release())
}

func TestAcquire_WaitsForRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.lock")
	held, err := TryAcquire(path)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = held.Release()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	l, err := Acquire(ctx, path)
	require.NoError(t, err)
	require.NoError(t, l.Release())
}

func TestAcquire_ContextDone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.lock")
	held, err := TryAcquire(path)
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_, err = Acquire(ctx, path)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWritePID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.lock")
	l, err := TryAcquire(path)
	require.NoError(t, err)
	defer l.Release()

	require.NoError(t, l.WritePID())
	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
}
