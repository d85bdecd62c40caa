package search

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/bookscout/internal/openlibrary"
)

func sampleBooks() []openlibrary.Book {
	return []openlibrary.Book{
		{
			Key:              "/works/OL1W",
			Title:            "Dune",
			Authors:          []string{"Frank Herbert"},
			FirstPublishYear: 1965,
			CoverID:          12345,
		},
		{
			Title:   "Obscure Pamphlet",
			Authors: []string{openlibrary.UnknownAuthor},
		},
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, sampleBooks(), openlibrary.NewClient()))

	out := buf.String()
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Frank Herbert")
	assert.Contains(t, out, "1965")
	assert.Contains(t, out, openlibrary.UnknownAuthor)
	assert.Contains(t, out, openlibrary.UnknownYear)
	// Coverless records get a placeholder, never a constructed URL.
	assert.Contains(t, out, coverPlaceholder)
	assert.Contains(t, out, "2 results")
}

func TestRenderTable_NoResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, nil, openlibrary.NewClient()))
	assert.Contains(t, buf.String(), "no results")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleBooks(), openlibrary.NewClient()))

	var records []record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)

	assert.Equal(t, "Dune", records[0].Title)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/12345-M.jpg", records[0].CoverURL)
	assert.Equal(t, "1965", records[0].Year)

	assert.Empty(t, records[1].CoverURL)
	assert.Equal(t, openlibrary.UnknownYear, records[1].Year)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sampleBooks(), openlibrary.NewClient()))

	var records []record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Dune", records[0].Title)
	assert.Equal(t, []string{"Frank Herbert"}, records[0].Authors)
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatMarkdown, sampleBooks(), openlibrary.NewClient()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "**Dune** (1965)")
	assert.Contains(t, lines[0], "![cover](https://covers.openlibrary.org/b/id/12345-M.jpg)")
	assert.Contains(t, lines[1], coverPlaceholder)
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Format("csv"), sampleBooks(), openlibrary.NewClient())
	assert.Error(t, err)
}
