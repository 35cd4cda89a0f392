package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	badgerconfig "github.com/fbtracker/v1/internal/config/storage/badger"
	corelog "github.com/fbtracker/v1/internal/core/infrastructure/log"
	storageif "github.com/fbtracker/v1/pkg/interfaces/infrastructure/storage"
)

// newInMemoryStore 创建内存模式的测试存储
func newInMemoryStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(badgerconfig.NewFromOptions(&badgerconfig.BadgerOptions{
		InMemory:     true,
		MemTableSize: 8 << 20,
	}), corelog.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreSetGet(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	key := []byte("account:test:addr1")
	value := []byte{0x01, 0x02, 0x03}

	require.NoError(t, store.Set(ctx, key, value))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestStoreGetMissing(t *testing.T) {
	store := newInMemoryStore(t)

	// 键不存在返回(nil, nil)而非错误
	got, err := store.Get(context.Background(), []byte("missing"))
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreOverwrite(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	key := []byte("k")
	require.NoError(t, store.Set(ctx, key, []byte("v1")))
	require.NoError(t, store.Set(ctx, key, []byte("v2")))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestStoreExists(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	key := []byte("k")

	exists, err := store.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Set(ctx, key, []byte("v")))

	exists, err = store.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStoreDelete(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	key := []byte("k")
	require.NoError(t, store.Set(ctx, key, []byte("v")))
	require.NoError(t, store.Delete(ctx, key))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	// 删除不存在的键不报错
	assert.NoError(t, store.Delete(ctx, []byte("missing")))
}

func TestStoreSetBatch(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	entries := []storageif.Entry{
		{Key: []byte("batch:a"), Value: []byte("1")},
		{Key: []byte("batch:b"), Value: []byte("2")},
		{Key: []byte("batch:c"), Value: []byte("3")},
	}
	require.NoError(t, store.SetBatch(ctx, entries))

	for _, entry := range entries {
		got, err := store.Get(ctx, entry.Key)
		require.NoError(t, err)
		assert.Equal(t, entry.Value, got)
	}

	// 空批量是空操作
	assert.NoError(t, store.SetBatch(ctx, nil))
}

func TestStoreSetBatchAfterClose(t *testing.T) {
	store := newInMemoryStore(t)
	require.NoError(t, store.Close())

	err := store.SetBatch(context.Background(), []storageif.Entry{
		{Key: []byte("k"), Value: []byte("v")},
	})
	assert.Error(t, err)
}

func TestStoreSetWithTTL(t *testing.T) {
	store := newInMemoryStore(t)
	ctx := context.Background()

	key := []byte("ephemeral")
	require.NoError(t, store.SetWithTTL(ctx, key, []byte("v"), time.Hour))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestStoreCloseIdempotent(t *testing.T) {
	store := newInMemoryStore(t)

	require.NoError(t, store.Close())
	assert.NoError(t, store.Close())

	// 关闭后拒绝写入
	err := store.Set(context.Background(), []byte("k"), []byte("v"))
	assert.Error(t, err)
}
