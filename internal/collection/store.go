// Package collection holds the user-curated book collections for a session:
// bookmarks and the reading list are two independent instances of the same
// identity-keyed, insertion-ordered store.
package collection

import (
	"time"

	"github.com/lepinkainen/bookscout/internal/openlibrary"
)

// Entry is one stored book with the time it was added. AddedAt is what the
// reading-list view displays; the bookmarks view ignores it.
type Entry struct {
	Book    openlibrary.Book
	AddedAt time.Time
}

// Store is a set of books keyed by Book.Identity(). Membership is identity
// equality, never object identity, so the "same" logical book from a repeated
// fetch matches. No duplicate identities exist within one store, and removal
// does not affect the relative order of remaining entries.
//
// Mutations are synchronous and local; a session's stores are only ever
// touched from its event loop, so no locking is needed.
type Store struct {
	entries map[string]Entry
	order   []string

	now func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Contains reports whether a book with the given identity is in the store.
func (s *Store) Contains(identity string) bool {
	_, ok := s.entries[identity]
	return ok
}

// Toggle implements bookmark semantics: remove the book when present, add it
// when absent. Two identical toggles return the store to its prior state.
// Returns true when the book is in the store after the call.
func (s *Store) Toggle(book openlibrary.Book) bool {
	identity := book.Identity()
	if s.Contains(identity) {
		s.Remove(identity)
		return false
	}
	s.Add(book)
	return true
}

// Add implements reading-list semantics: insert with the current timestamp,
// or do nothing when the identity is already present. Repeated adds of the
// same identity yield exactly one entry with its original AddedAt.
func (s *Store) Add(book openlibrary.Book) {
	identity := book.Identity()
	if s.Contains(identity) {
		return
	}
	s.entries[identity] = Entry{Book: book, AddedAt: s.now()}
	s.order = append(s.order, identity)
}

// Remove deletes the entry with the given identity; no-op when absent.
func (s *Store) Remove(identity string) {
	if !s.Contains(identity) {
		return
	}
	delete(s.entries, identity)
	for i, id := range s.order {
		if id == identity {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Entries returns the stored entries in insertion order.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.entries[id])
	}
	return entries
}

// Books returns the stored books in insertion order.
func (s *Store) Books() []openlibrary.Book {
	books := make([]openlibrary.Book, 0, len(s.order))
	for _, id := range s.order {
		books = append(books, s.entries[id].Book)
	}
	return books
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.order)
}
