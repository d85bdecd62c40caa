package session

import (
	"context"
	"strings"

	"github.com/lepinkainen/bookscout/internal/openlibrary"
)

// Fetcher fetches one page of search results. *openlibrary.Client satisfies
// it; tests substitute fakes.
type Fetcher interface {
	SearchPage(ctx context.Context, query openlibrary.Query, page int) (*openlibrary.Page, error)
}

// Controller drives paginated fetches and merges their results. It is
// single-threaded by design: all transitions happen on the caller's event
// loop, and at most one outstanding fetch can ever mutate the session. The
// split Begin/Finish API exists for event-driven callers (the TUI) that run
// the fetch elsewhere; Search and LoadMore wrap the two phases for
// synchronous callers.
//
// The controller never touches bookmark or reading-list state. Membership
// cross-referencing belongs to the rendering layer.
type Controller struct {
	fetcher Fetcher
	query   openlibrary.Query
	state   State
	gen     int
}

// New creates a controller with an empty session.
func New(fetcher Fetcher) *Controller {
	return &Controller{
		fetcher: fetcher,
		query:   openlibrary.Query{Field: openlibrary.FieldTitle},
		state:   State{Page: 1},
	}
}

// State returns a snapshot of the session state. The Results slice is shared
// with the controller but append-only, so observers may hold it across
// updates.
func (c *Controller) State() State {
	return c.state
}

// Query returns the active query snapshot.
func (c *Controller) Query() openlibrary.Query {
	return c.query
}

// SetField switches the search index. Changing the field resets results and
// pagination immediately, before any new fetch completes, so a stale
// "load more" can never mix result sets keyed to a different field.
func (c *Controller) SetField(field openlibrary.Field) {
	if !field.Valid() || field == c.query.Field {
		return
	}
	c.query.Field = field
	c.reset()
	c.state.Status = StatusIdle
	c.state.ErrMessage = ""
}

// SetFilters replaces the active filter set. Like a field change, this
// invalidates the accumulated result set.
func (c *Controller) SetFilters(filters openlibrary.Filters) {
	if filters == c.query.Filters {
		return
	}
	c.query.Filters = filters
	c.reset()
	c.state.Status = StatusIdle
	c.state.ErrMessage = ""
}

// BeginSearch starts a new search for q. It returns the tagged request to
// fetch, or false when the search is a no-op (empty query text). A new
// search is allowed from any status, including loading: it supersedes the
// outstanding fetch, whose response will fail the generation check in Finish.
func (c *Controller) BeginSearch(q openlibrary.Query) (*Request, bool) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, false
	}
	if !q.Field.Valid() {
		q.Field = openlibrary.FieldTitle
	}

	c.query = q
	c.reset()
	c.state.Status = StatusLoading
	c.state.ErrMessage = ""

	return &Request{Query: c.query, Page: 1, gen: c.gen, fresh: true}, true
}

// BeginLoadMore starts a fetch for the next page. It returns false, leaving
// the session untouched, unless the session is out of the loading state and
// more results are available. This is the concurrency guard:
// double invocations while a fetch is in flight are silently ignored.
func (c *Controller) BeginLoadMore() (*Request, bool) {
	if c.state.Status == StatusLoading || !c.state.HasMore {
		return nil, false
	}

	c.state.Status = StatusLoading
	c.state.ErrMessage = ""

	return &Request{Query: c.query, Page: c.state.Page + 1, gen: c.gen}, true
}

// Finish applies the outcome of a fetch started by BeginSearch or
// BeginLoadMore. Stale requests, issued before a reset, field change or
// superseding search, are discarded without touching the session.
func (c *Controller) Finish(req *Request, page *openlibrary.Page, err error) {
	if req == nil || req.gen != c.gen || c.state.Status != StatusLoading {
		return
	}

	if err != nil {
		c.state.Status = StatusError
		c.state.ErrMessage = err.Error()
		if req.fresh {
			// The new query's fate is unknown; stale results from a
			// different query must not remain displayed.
			c.state.Results = nil
			c.state.HasMore = false
			c.state.Page = 1
		}
		// A failed load-more preserves the pages fetched so far.
		return
	}

	if req.fresh {
		c.state.Results = page.Books
	} else {
		c.state.Results = append(c.state.Results, page.Books...)
	}
	c.state.Page = req.Page
	c.state.HasMore = page.HasMore
	c.state.Status = StatusIdle
	c.state.ErrMessage = ""
}

// Search runs a complete search synchronously. It returns the fetch error,
// if any; the session state carries the same outcome either way. An empty
// query text is a no-op returning nil.
func (c *Controller) Search(ctx context.Context, q openlibrary.Query) error {
	req, ok := c.BeginSearch(q)
	if !ok {
		return nil
	}
	page, err := c.fetcher.SearchPage(ctx, req.Query, req.Page)
	c.Finish(req, page, err)
	return err
}

// LoadMore fetches the next page synchronously. It is a no-op returning nil
// when the session is loading or has no more results.
func (c *Controller) LoadMore(ctx context.Context) error {
	req, ok := c.BeginLoadMore()
	if !ok {
		return nil
	}
	page, err := c.fetcher.SearchPage(ctx, req.Query, req.Page)
	c.Finish(req, page, err)
	return err
}

// reset clears the accumulated result set and pagination cursor, and bumps
// the generation so outstanding fetches become stale.
func (c *Controller) reset() {
	c.gen++
	c.state.Results = nil
	c.state.Page = 1
	c.state.HasMore = false
}
