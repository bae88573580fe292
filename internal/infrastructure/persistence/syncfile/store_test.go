package syncfile_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/domain/entity"
	"github.com/bnema/selsearch/internal/infrastructure/persistence/syncfile"
	"github.com/bnema/selsearch/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type changeRecorder struct {
	mu      sync.Mutex
	changes []entity.StorageChange
}

func (r *changeRecorder) handle(_ context.Context, c entity.StorageChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *changeRecorder) snapshot() []entity.StorageChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.StorageChange(nil), r.changes...)
}

func openStore(t *testing.T, dir string) *syncfile.Store {
	t.Helper()
	store, err := syncfile.Open(testCtx(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_GetSetClear(t *testing.T) {
	ctx := testCtx()
	store := openStore(t, t.TempDir())

	assert.Equal(t, entity.StorageSync, store.Area())

	got, err := store.Get(ctx, entity.KeyMenuItems)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Set(ctx, entity.KeyMenuItems, []byte(`[ {"id": "a"} ]`)))
	got, err = store.Get(ctx, entity.KeyMenuItems)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	_, err = os.Stat(store.Path())
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))
	got, err = store.Get(ctx, entity.KeyMenuItems)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SetRejectsNonJSON(t *testing.T) {
	store := openStore(t, t.TempDir())

	err := store.Set(testCtx(), entity.KeyLastVersion, []byte(`1.0.0-beta`))
	require.ErrorIs(t, err, syncfile.ErrNotJSON)
}

func TestStore_LocalWritesPublishChanges(t *testing.T) {
	ctx := testCtx()
	store := openStore(t, t.TempDir())
	rec := &changeRecorder{}
	store.OnChange(rec.handle)

	require.NoError(t, store.Set(ctx, entity.KeyMenuItems, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, entity.KeyMenuItems, []byte(`[]`)))
	require.NoError(t, store.Clear(ctx))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, 2*time.Second, 10*time.Millisecond)
	changes := rec.snapshot()
	assert.Equal(t, entity.StorageSync, changes[0].Area)
	assert.Nil(t, changes[0].OldValue)
	assert.Equal(t, `[]`, string(changes[0].NewValue))
	assert.True(t, changes[1].Removed())
	assert.Equal(t, `[]`, string(changes[1].OldValue))
}

func TestStore_RefreshSeesOtherWriters(t *testing.T) {
	ctx := testCtx()
	dir := t.TempDir()
	a := openStore(t, dir)
	b := openStore(t, dir)

	rec := &changeRecorder{}
	b.OnChange(rec.handle)

	require.NoError(t, a.Set(ctx, entity.KeyMenuItems, []byte(`[{"id":"x"}]`)))
	require.NoError(t, b.Refresh(ctx))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, `[{"id":"x"}]`, string(rec.snapshot()[0].NewValue))

	require.NoError(t, b.Refresh(ctx))
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1)
}

func TestStore_WatchPicksUpExternalEdits(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()

	dir := t.TempDir()
	store := openStore(t, dir)
	rec := &changeRecorder{}
	store.OnChange(rec.handle)

	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx) }()
	time.Sleep(50 * time.Millisecond)

	doc := `{"version":1,"items":{"menuItems":[{"id":"ext"}]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, syncfile.FileName), []byte(doc), 0o644))

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 1 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, entity.KeyMenuItems, rec.snapshot()[0].Key)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestStore_OpenRejectsCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, syncfile.FileName), []byte(`not json`), 0o644))

	_, err := syncfile.Open(testCtx(), dir)
	require.Error(t, err)
}
