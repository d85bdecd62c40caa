package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	assert.Equal(t, "https://openlibrary.org", OpenLibraryBaseURL)
	assert.Equal(t, "https://covers.openlibrary.org", CoverBaseURL)
	assert.True(t, CacheEnabled)
}

func TestInitConfig_ViperOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("openlibrary.baseurl", "http://localhost:8080")
	viper.Set("cache.enabled", false)

	InitConfig()

	assert.Equal(t, "http://localhost:8080", OpenLibraryBaseURL)
	assert.False(t, CacheEnabled)
}

func TestSetCacheEnabled(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()
	SetCacheEnabled(false)
	assert.False(t, CacheEnabled)
}
