package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/bookscout/internal/openlibrary"
)

// Format selects the output renderer.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// coverPlaceholder is rendered for records without cover art; the cover URL
// must not be constructed for those.
const coverPlaceholder = "(no cover)"

// record is the serialization shape for JSON/YAML output.
type record struct {
	Title    string   `json:"title" yaml:"title"`
	Authors  []string `json:"authors" yaml:"authors"`
	Year     string   `json:"year" yaml:"year"`
	Key      string   `json:"key,omitempty" yaml:"key,omitempty"`
	CoverURL string   `json:"cover_url,omitempty" yaml:"cover_url,omitempty"`
}

func toRecords(books []openlibrary.Book, client *openlibrary.Client) []record {
	records := make([]record, 0, len(books))
	for _, book := range books {
		records = append(records, record{
			Title:    book.Title,
			Authors:  book.Authors,
			Year:     book.YearLabel(),
			Key:      book.Key,
			CoverURL: client.CoverURL(book),
		})
	}
	return records
}

// Render writes the result set to w in the requested format.
func Render(w io.Writer, format Format, books []openlibrary.Book, client *openlibrary.Client) error {
	switch format {
	case FormatTable, "":
		return renderTable(w, books)
	case FormatJSON:
		return renderJSON(w, toRecords(books, client))
	case FormatYAML:
		return renderYAML(w, toRecords(books, client))
	case FormatMarkdown:
		return renderMarkdown(w, toRecords(books, client))
	}
	return fmt.Errorf("unknown output format %q", format)
}

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	tableCountStyle = lipgloss.NewStyle().
			Faint(true)
)

func renderTable(w io.Writer, books []openlibrary.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, tableHeaderStyle.Render("TITLE")+"\t"+
		tableHeaderStyle.Render("AUTHORS")+"\t"+
		tableHeaderStyle.Render("YEAR")+"\t"+
		tableHeaderStyle.Render("COVER"))

	for _, book := range books {
		cover := coverPlaceholder
		if book.HasCover() {
			cover = fmt.Sprintf("#%d", book.CoverID)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			book.Title,
			strings.Join(book.Authors, ", "),
			book.YearLabel(),
			cover)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, tableCountStyle.Render(fmt.Sprintf("%d results", len(books))))
	return err
}

func renderJSON(w io.Writer, records []record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func renderYAML(w io.Writer, records []record) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal results to YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func renderMarkdown(w io.Writer, records []record) error {
	for _, r := range records {
		cover := coverPlaceholder
		if r.CoverURL != "" {
			cover = fmt.Sprintf("![cover](%s)", r.CoverURL)
		}
		if _, err := fmt.Fprintf(w, "- **%s** (%s) by %s %s\n",
			r.Title, r.Year, strings.Join(r.Authors, ", "), cover); err != nil {
			return err
		}
	}
	return nil
}
