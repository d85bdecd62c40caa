package openlibrary

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lepinkainen/bookscout/internal/cache"
)

// SearchPage fetches one page of search results for the given query.
//
// HasMore is a heuristic: the service returns no total count, so a full page
// (exactly PageSize records) is treated as "more may exist". When the total
// result count is an exact multiple of PageSize this yields one false
// positive; the next fetch simply comes back empty.
func (c *Client) SearchPage(ctx context.Context, query Query, page int) (*Page, error) {
	if strings.TrimSpace(query.Text) == "" {
		return nil, &FetchError{Message: "search text must not be empty"}
	}
	if !query.Field.Valid() {
		return nil, &FetchError{Message: fmt.Sprintf("invalid search field %q", query.Field)}
	}
	if page < 1 {
		return nil, &FetchError{Message: fmt.Sprintf("page must be >= 1, got %d", page)}
	}

	if c.useCache {
		result, _, err := cache.GetOrFetch(cache.SearchCacheTable, searchCacheKey(query, page), func() (*Page, error) {
			return c.fetchPage(ctx, query, page)
		})
		return result, err
	}

	return c.fetchPage(ctx, query, page)
}

func (c *Client) fetchPage(ctx context.Context, query Query, page int) (*Page, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fetchErrorf(err, "rate limit wait failed")
	}

	endpoint := fmt.Sprintf("%s/search.json?%s", c.baseURL, searchParams(query, page).Encode())

	// The docs array is the only part of the payload consumed. A missing or
	// empty array is zero results, not an error.
	var response struct {
		Docs []searchDoc `json:"docs"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	books := make([]Book, 0, len(response.Docs))
	for _, doc := range response.Docs {
		books = append(books, doc.normalize())
	}

	return &Page{
		Books:   books,
		HasMore: len(response.Docs) == PageSize,
	}, nil
}

// searchParams maps the query onto upstream parameters. Exactly one of
// title=, author= or subject= is set, selected by the query field.
func searchParams(query Query, page int) url.Values {
	params := url.Values{}
	params.Set(string(query.Field), query.Text)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(PageSize))

	if query.Filters.YearFrom > 0 {
		params.Set("first_publish_year[from]", strconv.Itoa(query.Filters.YearFrom))
	}
	if query.Filters.YearTo > 0 {
		params.Set("first_publish_year[to]", strconv.Itoa(query.Filters.YearTo))
	}
	if query.Filters.Language != "" {
		params.Set("language", query.Filters.Language)
	}

	return params
}

// searchCacheKey builds a canonical cache key from the query snapshot and
// page number, so different filters never share an entry.
func searchCacheKey(query Query, page int) string {
	return fmt.Sprintf("%s|%s|%d|%d|%s|%d",
		query.Field, query.Text,
		query.Filters.YearFrom, query.Filters.YearTo, query.Filters.Language,
		page)
}

// searchDoc matches the subset of a docs[] element this client consumes.
type searchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverI           int      `json:"cover_i"`
}

func (d searchDoc) normalize() Book {
	authors := d.AuthorName
	if len(authors) == 0 {
		authors = []string{UnknownAuthor}
	}

	return Book{
		Key:              d.Key,
		Title:            d.Title,
		Authors:          authors,
		FirstPublishYear: d.FirstPublishYear,
		CoverID:          d.CoverI,
	}
}
