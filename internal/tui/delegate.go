package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookscout/internal/openlibrary"
)

// bookItem adapts a search result to the bubbles list, with collection
// membership resolved at list-rebuild time so the delegate stays a pure
// renderer.
type bookItem struct {
	openlibrary.Book

	Bookmarked    bool
	OnReadingList bool
	AddedAt       time.Time // set in the reading-list view
}

func (i bookItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.Book.Title, i.YearLabel())
}

func (i bookItem) FilterValue() string {
	return i.Book.Title
}

func (i bookItem) Description() string {
	return strings.Join(i.Authors, ", ")
}

type itemStyles struct {
	normal      lipgloss.Style
	selected    lipgloss.Style
	titleStyle  lipgloss.Style
	authorStyle lipgloss.Style
	metaStyle   lipgloss.Style
	markStyle   lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		authorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")),
		metaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		markStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("178")),
	}
}

type bookDelegate struct {
	styles itemStyles
}

func newDelegate() bookDelegate {
	return bookDelegate{styles: newItemStyles()}
}

func (d bookDelegate) Height() int                         { return 5 }
func (d bookDelegate) Spacing() int                        { return 1 }
func (d bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	book, ok := item.(bookItem)
	if !ok {
		return
	}

	marks := make([]string, 0, 2)
	if book.Bookmarked {
		marks = append(marks, "* bookmarked")
	}
	if book.OnReadingList {
		marks = append(marks, "> reading list")
	}

	titleLine := d.styles.titleStyle.Render(truncate(book.Title(), m.Width()-4))
	authorLine := d.styles.authorStyle.Render(truncate(strings.Join(book.Authors, ", "), m.Width()-4))
	metaLine := d.styles.metaStyle.Render(formatMeta(book))

	lines := []string{titleLine, authorLine, metaLine}
	if len(marks) > 0 {
		lines = append(lines, d.styles.markStyle.Render(strings.Join(marks, "  ")))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

func formatMeta(book bookItem) string {
	cover := "no cover"
	if book.HasCover() {
		cover = fmt.Sprintf("cover #%d", book.CoverID)
	}
	if !book.AddedAt.IsZero() {
		return fmt.Sprintf("%s | added %s", cover, book.AddedAt.Format("2006-01-02 15:04"))
	}
	return cover
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}
