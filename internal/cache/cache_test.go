package cache

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCacheDB(t *testing.T) *CacheDB {
	t.Helper()

	db, err := NewCacheDB(filepath.Join(t.TempDir(), "test-cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, schema := range AllCacheSchemas {
		require.NoError(t, db.CreateTable(schema))
	}
	return db
}

func TestCacheSetGet(t *testing.T) {
	db := newTestCacheDB(t)

	require.NoError(t, db.Set(SearchCacheTable, "title|dune|0|0||1", `{"books":[]}`))

	data, found, err := db.Get(SearchCacheTable, "title|dune|0|0||1", time.Hour)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"books":[]}`, data)
}

func TestCacheGet_MissingKey(t *testing.T) {
	db := newTestCacheDB(t)

	_, found, err := db.Get(SearchCacheTable, "no-such-key", time.Hour)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheGet_ExpiredEntry(t *testing.T) {
	db := newTestCacheDB(t)

	require.NoError(t, db.Set(SearchCacheTable, "key", "data"))

	// A zero TTL means any stored entry has already aged out.
	_, found, err := db.Get(SearchCacheTable, "key", 0)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheSet_ReplacesEntry(t *testing.T) {
	db := newTestCacheDB(t)

	require.NoError(t, db.Set(SearchCacheTable, "key", "old"))
	require.NoError(t, db.Set(SearchCacheTable, "key", "new"))

	data, found, err := db.Get(SearchCacheTable, "key", time.Hour)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", data)
}

func TestInvalidateSource(t *testing.T) {
	db := newTestCacheDB(t)

	require.NoError(t, db.Set(SearchCacheTable, "a", "1"))
	require.NoError(t, db.Set(SearchCacheTable, "b", "2"))

	deleted, err := db.InvalidateSource(SearchCacheTable)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, found, err := db.Get(SearchCacheTable, "a", time.Hour)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestValidateTableName_RejectsUnknownTables(t *testing.T) {
	db := newTestCacheDB(t)

	err := db.Set("bogus_table; DROP TABLE users", "key", "data")
	assert.Error(t, err)

	_, _, err = db.Get("other_cache", "key", time.Hour)
	assert.Error(t, err)
}

func TestGetOrFetch(t *testing.T) {
	viper.Reset()
	viper.Set("cache.dbfile", filepath.Join(t.TempDir(), "global-cache.db"))
	viper.Set("cache.ttl", "1h")
	require.NoError(t, ResetGlobalCache())
	t.Cleanup(func() {
		_ = ResetGlobalCache()
		viper.Reset()
	})

	type payload struct {
		Value string `json:"value"`
	}

	fetches := 0
	fetch := func() (payload, error) {
		fetches++
		return payload{Value: "fetched"}, nil
	}

	// First call fetches and stores.
	result, fromCache, err := GetOrFetch(SearchCacheTable, "key", fetch)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "fetched", result.Value)

	// Second call is served from cache.
	result, fromCache, err = GetOrFetch(SearchCacheTable, "key", fetch)
	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, "fetched", result.Value)
	assert.Equal(t, 1, fetches)
}

func TestGetOrFetch_FetchErrorPropagates(t *testing.T) {
	viper.Reset()
	viper.Set("cache.dbfile", filepath.Join(t.TempDir(), "global-cache.db"))
	require.NoError(t, ResetGlobalCache())
	t.Cleanup(func() {
		_ = ResetGlobalCache()
		viper.Reset()
	})

	_, _, err := GetOrFetch(SearchCacheTable, "key", func() (string, error) {
		return "", fmt.Errorf("upstream down")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestTTL(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Equal(t, DefaultCacheTTL, TTL())

	viper.Set("cache.ttl", "30m")
	assert.Equal(t, 30*time.Minute, TTL())

	viper.Set("cache.ttl", "not-a-duration")
	assert.Equal(t, DefaultCacheTTL, TTL())
}
