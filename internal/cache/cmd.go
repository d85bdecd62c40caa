package cache

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

// ClearCmd represents the cache clear subcommand
type ClearCmd struct{}

func (c *ClearCmd) Run() error {
	cacheDB := viper.GetString("cache.dbfile")

	slog.Info("Clearing search cache", "database", cacheDB)

	cacheInstance, err := GetGlobalCache()
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}

	rowsDeleted, err := cacheInstance.InvalidateSource(SearchCacheTable)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	slog.Info("Cache cleared", "rows_deleted", rowsDeleted)
	return nil
}
