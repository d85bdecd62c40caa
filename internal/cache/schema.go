package cache

// SQL schemas for cache tables
// All cache tables use "cache_key" as the primary key column for consistency

// SearchCacheSchema defines the schema for the OpenLibrary search page cache
const SearchCacheSchema = `
CREATE TABLE IF NOT EXISTS openlibrary_search_cache (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_openlibrary_search_cached_at ON openlibrary_search_cache(cached_at);
`

// SearchCacheTable is the table name used for cached search pages.
const SearchCacheTable = "openlibrary_search_cache"

// AllCacheSchemas contains all cache table schemas for initialization
var AllCacheSchemas = []string{
	SearchCacheSchema,
}

// ValidCacheTableNames is the whitelist of table names accepted by cache operations
var ValidCacheTableNames = map[string]bool{
	SearchCacheTable: true,
}
