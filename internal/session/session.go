// Package session owns the search & pagination state for one catalog
// browsing session: the active query, the accumulated result pages, and the
// idle/loading/error status the rendering layer observes.
package session

import "github.com/lepinkainen/bookscout/internal/openlibrary"

// Status is the fetch state of the session.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// State is a snapshot of the session visible to the rendering layer.
// Results are append-only within a session: insertion order is fetch order,
// and new pages strictly follow prior pages.
type State struct {
	Results    []openlibrary.Book
	Page       int
	HasMore    bool
	Status     Status
	ErrMessage string
}

// Request tags one outstanding fetch with the session generation, the query
// snapshot it was issued for, and the page it targets. A response whose tag
// no longer matches controller state (the session was reset or superseded in
// the meantime) is discarded on arrival instead of corrupting fresh results.
type Request struct {
	Query openlibrary.Query
	Page  int

	gen   int
	fresh bool // new search (replace results) vs load-more (append)
}
