package openlibrary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookIdentity(t *testing.T) {
	withKey := Book{Key: "/works/OL1W", Title: "Dune"}
	assert.Equal(t, "/works/OL1W", withKey.Identity())

	withoutKey := Book{Title: "Dune"}
	assert.Equal(t, "Dune", withoutKey.Identity())
}

func TestBookYearLabel(t *testing.T) {
	assert.Equal(t, "1965", Book{FirstPublishYear: 1965}.YearLabel())
	assert.Equal(t, UnknownYear, Book{}.YearLabel())
}

func TestParseField(t *testing.T) {
	for _, valid := range []string{"title", "author", "subject"} {
		field, err := ParseField(valid)
		require.NoError(t, err)
		assert.Equal(t, Field(valid), field)
	}

	_, err := ParseField("isbn")
	assert.Error(t, err)
}

func TestCoverURL(t *testing.T) {
	client := NewClient(WithCoverBaseURL("https://covers.example.org/"))

	book := Book{Title: "Dune", CoverID: 12345}
	assert.Equal(t, "https://covers.example.org/b/id/12345-M.jpg", client.CoverURL(book))

	// No URL is ever constructed for coverless records; callers render a
	// placeholder instead.
	coverless := Book{Title: "Dune"}
	assert.Equal(t, "", client.CoverURL(coverless))
}

func TestNormalizeDoc(t *testing.T) {
	doc := searchDoc{
		Key:              "/works/OL1W",
		Title:            "Dune",
		AuthorName:       []string{"Frank Herbert"},
		FirstPublishYear: 1965,
		CoverI:           111,
	}

	book := doc.normalize()
	assert.Equal(t, "/works/OL1W", book.Key)
	assert.Equal(t, []string{"Frank Herbert"}, book.Authors)
	assert.Equal(t, 1965, book.FirstPublishYear)
	assert.Equal(t, 111, book.CoverID)

	empty := searchDoc{Title: "Anonymous Work"}.normalize()
	assert.Equal(t, []string{UnknownAuthor}, empty.Authors)
}
