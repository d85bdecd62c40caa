// Package testutil provides common test utilities for the bookscout project.
package testutil

import (
	"testing"

	"github.com/lepinkainen/bookscout/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	OpenLibraryBaseURL string
	CoverBaseURL       string
	CacheEnabled       bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		OpenLibraryBaseURL: config.OpenLibraryBaseURL,
		CoverBaseURL:       config.CoverBaseURL,
		CacheEnabled:       config.CacheEnabled,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.OpenLibraryBaseURL = state.OpenLibraryBaseURL
	config.CoverBaseURL = state.CoverBaseURL
	config.CacheEnabled = state.CacheEnabled
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset, so a previously unset key stays set; tests
		// that care should pair this with ResetConfig.
	})
}

// SetupTestCache points the cache at a temporary database with a short TTL
// and resets the global cache singleton before and after the test.
func SetupTestCache(t *testing.T) string {
	t.Helper()

	dbPath := t.TempDir() + "/test-cache.db"

	SetViperValue(t, "cache.dbfile", dbPath)
	SetViperValue(t, "cache.ttl", "1h")

	return dbPath
}
