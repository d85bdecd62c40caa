package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookscout/internal/openlibrary"
)

func dune() openlibrary.Book {
	return openlibrary.Book{Key: "/works/OL1W", Title: "Dune", Authors: []string{"Frank Herbert"}}
}

func TestToggle_IsIdempotentPair(t *testing.T) {
	bookmarks := New()

	assert.True(t, bookmarks.Toggle(dune()))
	assert.True(t, bookmarks.Contains("/works/OL1W"))

	// Toggling again removes it: two toggles return the store to its prior
	// state.
	assert.False(t, bookmarks.Toggle(dune()))
	assert.False(t, bookmarks.Contains("/works/OL1W"))
	assert.Equal(t, 0, bookmarks.Len())
}

func TestToggle_MatchesByIdentityNotObject(t *testing.T) {
	bookmarks := New()
	bookmarks.Toggle(dune())

	// The "same" logical book from a repeated fetch is a different value but
	// shares the identity.
	refetched := openlibrary.Book{Key: "/works/OL1W", Title: "Dune", Authors: []string{"F. Herbert"}}
	bookmarks.Toggle(refetched)

	assert.Equal(t, 0, bookmarks.Len())
}

func TestAdd_IsIdempotent(t *testing.T) {
	readingList := New()

	readingList.Add(dune())
	readingList.Add(dune())

	assert.Equal(t, 1, readingList.Len())
	assert.True(t, readingList.Contains("/works/OL1W"))
}

func TestAdd_KeepsOriginalTimestamp(t *testing.T) {
	readingList := New()

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	current := first
	readingList.now = func() time.Time { return current }

	readingList.Add(dune())
	current = second
	readingList.Add(dune())

	entries := readingList.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, first, entries[0].AddedAt)
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	readingList := New()
	readingList.Add(dune())

	readingList.Remove("/works/OL999W")

	assert.Equal(t, 1, readingList.Len())
}

func TestInsertionOrderSurvivesRemoval(t *testing.T) {
	store := New()
	books := []openlibrary.Book{
		{Key: "/works/OL1W", Title: "First"},
		{Key: "/works/OL2W", Title: "Second"},
		{Key: "/works/OL3W", Title: "Third"},
	}
	for _, b := range books {
		store.Add(b)
	}

	store.Remove("/works/OL2W")

	remaining := store.Books()
	require.Len(t, remaining, 2)
	assert.Equal(t, "First", remaining[0].Title)
	assert.Equal(t, "Third", remaining[1].Title)
}

func TestKeylessBooksFallBackToTitleIdentity(t *testing.T) {
	bookmarks := New()

	keyless := openlibrary.Book{Title: "Dune"}
	bookmarks.Toggle(keyless)

	assert.True(t, bookmarks.Contains("Dune"))

	// A distinct keyless book with the same title collides; this is the
	// specified fallback behavior.
	other := openlibrary.Book{Title: "Dune", Authors: []string{"Someone Else"}}
	bookmarks.Toggle(other)
	assert.Equal(t, 0, bookmarks.Len())
}

func TestStoresAreIndependent(t *testing.T) {
	bookmarks := New()
	readingList := New()

	bookmarks.Toggle(dune())

	assert.True(t, bookmarks.Contains("/works/OL1W"))
	assert.False(t, readingList.Contains("/works/OL1W"))
}
