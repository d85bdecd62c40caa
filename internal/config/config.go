package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OpenLibraryBaseURL is the base URL for the OpenLibrary search API
	OpenLibraryBaseURL string
	// CoverBaseURL is the base URL for OpenLibrary cover images
	CoverBaseURL string
	// CacheEnabled controls whether search responses are cached locally
	CacheEnabled bool
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("openlibrary.baseurl", "https://openlibrary.org")
	viper.SetDefault("openlibrary.coverbaseurl", "https://covers.openlibrary.org")
	viper.SetDefault("cache.enabled", true)

	// Get values from viper
	OpenLibraryBaseURL = viper.GetString("openlibrary.baseurl")
	CoverBaseURL = viper.GetString("openlibrary.coverbaseurl")
	CacheEnabled = viper.GetBool("cache.enabled")
}

// SetCacheEnabled sets the CacheEnabled flag
func SetCacheEnabled(enabled bool) {
	CacheEnabled = enabled
}
