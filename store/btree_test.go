package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreGetSetDelete(t *testing.T) {
	db := MemStore()

	k, v := []byte("french"), []byte("fry")

	has, err := db.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, db.Set(k, v))

	got, err := db.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	has, err = db.Has(k)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, db.Delete(k))
	got, err = db.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheWrapWriteCommits(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("a")))

	// Parent is not touched until Write.
	got, err := db.Get(b("a"))
	require.NoError(t, err)
	assert.Equal(t, b("1"), got)
	has, err := db.Has(b("b"))
	require.NoError(t, err)
	assert.False(t, has)

	// Cache sees its own writes layered over the parent.
	got, err = cache.Get(b("b"))
	require.NoError(t, err)
	assert.Equal(t, b("2"), got)
	got, err = cache.Get(b("a"))
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Write())

	got, err = db.Get(b("b"))
	require.NoError(t, err)
	assert.Equal(t, b("2"), got)
	got, err = db.Get(b("a"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheWrapDiscardDropsChanges(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set(b("a"), b("1")))

	cache := db.CacheWrap()
	require.NoError(t, cache.Set(b("a"), b("overwritten")))
	require.NoError(t, cache.Set(b("b"), b("2")))
	cache.Discard()

	got, err := db.Get(b("a"))
	require.NoError(t, err)
	assert.Equal(t, b("1"), got)
	has, err := db.Has(b("b"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestRecursiveCacheWrap(t *testing.T) {
	db := MemStore()
	cache := db.CacheWrap()
	inner := cache.CacheWrap()

	require.NoError(t, inner.Set(b("k"), b("v")))
	require.NoError(t, inner.Write())
	require.NoError(t, cache.Write())

	got, err := db.Get(b("k"))
	require.NoError(t, err)
	assert.Equal(t, b("v"), got)
}

func b(s string) []byte { return []byte(s) }
