package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/bookscout/cmd/search"
	"github.com/lepinkainen/bookscout/internal/cache"
	"github.com/lepinkainen/bookscout/internal/config"
	"github.com/lepinkainen/bookscout/internal/openlibrary"
	"github.com/lepinkainen/bookscout/internal/tui"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

// CLI represents the complete command structure for the bookscout application
type CLI struct {
	// Cache flags
	NoCache     bool   `help:"Disable the local search response cache"`
	CacheDBFile string `help:"Path to cache SQLite database file" default:"./bookscout-cache.db"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 24h)" default:"24h"`

	Search SearchCmd `cmd:"" help:"Search the catalog and print the results"`
	Browse BrowseCmd `cmd:"" help:"Browse the catalog interactively with bookmarks and a reading list"`
	Cache  CacheCmd  `cmd:"" help:"Manage the local response cache"`
}

// SearchCmd represents the one-shot search command
type SearchCmd struct {
	Query []string `arg:"" help:"Search text"`

	Field    string `short:"f" help:"Search field" enum:"title,author,subject" default:"title"`
	YearFrom int    `help:"Only include books first published in or after this year"`
	YearTo   int    `help:"Only include books first published in or before this year"`
	Language string `help:"Filter by language code (e.g., eng, fin)"`

	Pages  int    `short:"p" help:"Number of result pages to fetch" default:"1"`
	Format string `help:"Output format" enum:"table,json,yaml,markdown" default:"table"`

	DownloadCovers bool   `help:"Download cover images for the results"`
	CoverDir       string `help:"Directory for downloaded covers" default:"./covers"`
}

// BrowseCmd represents the interactive browse command
type BrowseCmd struct{}

// CacheCmd represents the cache management subcommands
type CacheCmd struct {
	Clear cache.ClearCmd `cmd:"" help:"Delete all cached search responses"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("bookscout"),
		kong.Description("Search the OpenLibrary catalog from your terminal."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("openlibrary.baseurl", "https://openlibrary.org")
	viper.SetDefault("openlibrary.coverbaseurl", "https://covers.openlibrary.org")

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.dbfile", "./bookscout-cache.db")
	viper.SetDefault("cache.ttl", "24h")

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No API keys are required, so write the defaults and keep going.
			slog.Info("Config file not found, writing default config file")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	viper.Set("cache.dbfile", cli.CacheDBFile)
	viper.Set("cache.ttl", cli.CacheTTL)

	if cli.NoCache {
		config.SetCacheEnabled(false)
	}
}

// newClient builds the search client from the global configuration.
func newClient() *openlibrary.Client {
	return openlibrary.NewClient(
		openlibrary.WithBaseURL(config.OpenLibraryBaseURL),
		openlibrary.WithCoverBaseURL(config.CoverBaseURL),
		openlibrary.WithCache(config.CacheEnabled),
	)
}

// Run methods for each command

func (s *SearchCmd) Run() error {
	field, err := openlibrary.ParseField(s.Field)
	if err != nil {
		return err
	}

	opts := search.Options{
		Text:  strings.Join(s.Query, " "),
		Field: field,
		Filters: openlibrary.Filters{
			YearFrom: s.YearFrom,
			YearTo:   s.YearTo,
			Language: s.Language,
		},
		Pages:          s.Pages,
		Format:         search.Format(s.Format),
		DownloadCovers: s.DownloadCovers,
		CoverDir:       s.CoverDir,
		Out:            os.Stdout,
	}

	return search.Run(context.Background(), newClient(), opts)
}

func (b *BrowseCmd) Run() error {
	return tui.Browse(newClient())
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))
}
