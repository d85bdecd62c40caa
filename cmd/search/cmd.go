// Package search implements the one-shot catalog search command: run a
// session against the search API, optionally follow pagination for a fixed
// number of pages, and render the accumulated results.
package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lepinkainen/bookscout/internal/fileutil"
	"github.com/lepinkainen/bookscout/internal/openlibrary"
	"github.com/lepinkainen/bookscout/internal/session"
)

// Options holds everything the search command needs to run.
type Options struct {
	Text    string
	Field   openlibrary.Field
	Filters openlibrary.Filters

	// Pages is the maximum number of pages to fetch; pagination stops early
	// when the service signals no more results.
	Pages int

	Format         Format
	DownloadCovers bool
	CoverDir       string

	Out io.Writer
}

// Run executes a search session against the given client and renders the
// result set to opts.Out.
func Run(ctx context.Context, client *openlibrary.Client, opts Options) error {
	if opts.Pages < 1 {
		opts.Pages = 1
	}

	controller := session.New(client)

	query := openlibrary.Query{
		Text:    opts.Text,
		Field:   opts.Field,
		Filters: opts.Filters,
	}

	if err := controller.Search(ctx, query); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for fetched := 1; fetched < opts.Pages && controller.State().HasMore; fetched++ {
		if err := controller.LoadMore(ctx); err != nil {
			// Prior pages survive a failed load-more; report what we have.
			slog.Warn("Stopping pagination after failed fetch", "page", fetched+1, "error", err)
			break
		}
	}

	state := controller.State()
	slog.Info("Search finished",
		"query", opts.Text,
		"field", opts.Field,
		"results", len(state.Results),
		"pages", state.Page,
		"more_available", state.HasMore,
	)

	if err := Render(opts.Out, opts.Format, state.Results, client); err != nil {
		return err
	}

	if opts.DownloadCovers {
		downloadCovers(ctx, client, state.Results, opts.CoverDir)
	}

	return nil
}

// downloadCovers fetches cover art for every record that has one. Failures
// are logged per book and never abort the command.
func downloadCovers(ctx context.Context, client *openlibrary.Client, books []openlibrary.Book, coverDir string) {
	for _, book := range books {
		url := client.CoverURL(book)
		if url == "" {
			slog.Debug("No cover for book, skipping", "title", book.Title)
			continue
		}

		result, err := fileutil.DownloadCover(ctx, fileutil.CoverDownloadOptions{
			URL:       url,
			OutputDir: coverDir,
			Filename:  fileutil.BuildCoverFilename(book.Title),
		})
		if err != nil {
			slog.Warn("Cover download failed", "title", book.Title, "error", err)
			continue
		}
		if result != nil && !result.Downloaded {
			slog.Debug("Cover already present", "path", result.LocalPath)
		}
	}
}
