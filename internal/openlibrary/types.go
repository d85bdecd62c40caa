package openlibrary

import "fmt"

const (
	// PageSize is the fixed number of records requested per search page.
	// Chosen to balance result density against request cost.
	PageSize = 12

	// UnknownAuthor is substituted when a record carries no author names.
	UnknownAuthor = "Unknown Author"
	// UnknownYear is displayed when a record carries no first publish year.
	UnknownYear = "Unknown Year"
)

// Field selects which search index the query runs against. The upstream
// service treats these as distinct query parameters, not interchangeable
// variants of one another.
type Field string

const (
	FieldTitle   Field = "title"
	FieldAuthor  Field = "author"
	FieldSubject Field = "subject"
)

// Valid reports whether f is one of the supported search fields.
func (f Field) Valid() bool {
	switch f {
	case FieldTitle, FieldAuthor, FieldSubject:
		return true
	}
	return false
}

// ParseField converts a string into a Field, rejecting unknown values.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown search field %q (want title, author or subject)", s)
	}
	return f, nil
}

// Filters narrows a search by publication year range and/or language.
// Zero values mean "not set".
type Filters struct {
	YearFrom int
	YearTo   int
	Language string
}

// Query holds everything needed to issue a search: the text, the field it
// targets, and any active filters.
type Query struct {
	Text    string
	Field   Field
	Filters Filters
}

// Book is a normalized search result record. Optional upstream fields are
// already defaulted: Authors is never empty and a zero FirstPublishYear
// means unknown.
type Book struct {
	Key              string   `json:"key,omitempty"`
	Title            string   `json:"title"`
	Authors          []string `json:"authors"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	CoverID          int      `json:"cover_id,omitempty"`
}

// Identity returns the string used for set membership across result sets and
// collections: the service-provided key when present, else the raw title.
// Two keyless books sharing a title therefore collide; that fallback is
// deliberate so every record can participate in membership checks.
func (b Book) Identity() string {
	if b.Key != "" {
		return b.Key
	}
	return b.Title
}

// YearLabel returns the first publish year for display, or the unknown-year
// sentinel when the record has none.
func (b Book) YearLabel() string {
	if b.FirstPublishYear == 0 {
		return UnknownYear
	}
	return fmt.Sprintf("%d", b.FirstPublishYear)
}

// HasCover reports whether the record carries a cover image ID.
func (b Book) HasCover() bool {
	return b.CoverID > 0
}

// Page is one fetched batch of results plus the more-available flag.
type Page struct {
	Books   []Book `json:"books"`
	HasMore bool   `json:"has_more"`
}
