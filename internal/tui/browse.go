// Package tui provides the interactive catalog browsing session. It is a
// thin rendering layer: every state transition goes through the session
// controller and the collection stores, and the view merely observes them.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/bookscout/internal/collection"
	"github.com/lepinkainen/bookscout/internal/openlibrary"
	"github.com/lepinkainen/bookscout/internal/session"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 24
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

type view int

const (
	viewResults view = iota
	viewBookmarks
	viewReadingList
)

func (v view) String() string {
	switch v {
	case viewResults:
		return "results"
	case viewBookmarks:
		return "bookmarks"
	case viewReadingList:
		return "reading list"
	}
	return "unknown"
}

// fetchDoneMsg carries a completed fetch back to the update loop. The
// request tag lets the controller discard responses that no longer match
// session state.
type fetchDoneMsg struct {
	req  *session.Request
	page *openlibrary.Page
	err  error
}

type browseModel struct {
	controller  *session.Controller
	fetcher     session.Fetcher
	bookmarks   *collection.Store
	readingList *collection.Store

	input textinput.Model
	list  list.Model
	view  view
}

func newBrowseModel(fetcher session.Fetcher) *browseModel {
	input := textinput.New()
	input.Placeholder = "search the catalog..."
	input.CharLimit = 200
	input.Width = defaultListWidth - 4
	input.Focus()

	l := list.New(nil, newDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &browseModel{
		controller:  session.New(fetcher),
		fetcher:     fetcher,
		bookmarks:   collection.New(),
		readingList: collection.New(),
		input:       input,
		list:        l,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case fetchDoneMsg:
		m.controller.Finish(msg.req, msg.page, msg.err)
		m.refreshItems()
		return m, nil

	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-8, 5)
		m.list.SetSize(width, height)
		m.input.Width = width - 4
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.input.Focused() {
		switch msg.String() {
		case "enter":
			m.input.Blur()
			return m, m.submitSearch()
		case "esc":
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.input.Focus()
		return m, textinput.Blink
	case "enter":
		return m, m.submitSearch()
	case "m", "pgdown":
		if req, ok := m.controller.BeginLoadMore(); ok {
			return m, m.fetchCmd(req)
		}
		return m, nil
	case "f":
		m.controller.SetField(nextField(m.controller.Query().Field))
		m.refreshItems()
		return m, nil
	case "tab":
		m.view = (m.view + 1) % 3
		m.refreshItems()
		return m, nil
	case "b":
		if book, ok := m.selectedBook(); ok {
			m.bookmarks.Toggle(book)
			m.refreshItems()
		}
		return m, nil
	case "r":
		if book, ok := m.selectedBook(); ok {
			m.readingList.Add(book)
			m.refreshItems()
		}
		return m, nil
	case "x":
		if book, ok := m.selectedBook(); ok && m.view == viewReadingList {
			m.readingList.Remove(book.Identity())
			m.refreshItems()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// submitSearch starts a new search from the current input text. The
// controller treats empty text as a no-op, so mashing enter on a blank
// prompt changes nothing.
func (m *browseModel) submitSearch() tea.Cmd {
	q := m.controller.Query()
	q.Text = m.input.Value()

	req, ok := m.controller.BeginSearch(q)
	if !ok {
		return nil
	}

	m.view = viewResults
	m.refreshItems()
	return m.fetchCmd(req)
}

// fetchCmd runs the fetch off the update loop and reports back with the
// tagged request, so a reset session can discard the stale completion.
func (m *browseModel) fetchCmd(req *session.Request) tea.Cmd {
	return func() tea.Msg {
		page, err := m.fetcher.SearchPage(context.Background(), req.Query, req.Page)
		return fetchDoneMsg{req: req, page: page, err: err}
	}
}

func (m *browseModel) selectedBook() (openlibrary.Book, bool) {
	item, ok := m.list.SelectedItem().(bookItem)
	if !ok {
		return openlibrary.Book{}, false
	}
	return item.Book, true
}

// refreshItems rebuilds the list for the active view, resolving collection
// membership per item.
func (m *browseModel) refreshItems() {
	var items []list.Item

	switch m.view {
	case viewResults:
		for _, book := range m.controller.State().Results {
			items = append(items, bookItem{
				Book:          book,
				Bookmarked:    m.bookmarks.Contains(book.Identity()),
				OnReadingList: m.readingList.Contains(book.Identity()),
			})
		}
	case viewBookmarks:
		for _, book := range m.bookmarks.Books() {
			items = append(items, bookItem{
				Book:          book,
				Bookmarked:    true,
				OnReadingList: m.readingList.Contains(book.Identity()),
			})
		}
	case viewReadingList:
		for _, entry := range m.readingList.Entries() {
			items = append(items, bookItem{
				Book:          entry.Book,
				Bookmarked:    m.bookmarks.Contains(entry.Book.Identity()),
				OnReadingList: true,
				AddedAt:       entry.AddedAt,
			})
		}
	}

	m.list.SetItems(items)
}

func (m *browseModel) View() string {
	state := m.controller.State()

	header := headerStyle.Render(fmt.Sprintf("bookscout | field: %s | view: %s (%d)",
		m.controller.Query().Field, m.view, len(m.list.Items())))

	var status string
	switch state.Status {
	case session.StatusLoading:
		status = statusLoadingStyle.Render("fetching...")
	case session.StatusError:
		status = statusErrorStyle.Render("error: " + state.ErrMessage)
	default:
		if m.view == viewResults && len(state.Results) > 0 {
			more := "no more results"
			if state.HasMore {
				more = "more available (m)"
			}
			status = statusStyle.Render(fmt.Sprintf("%d results | page %d | %s", len(state.Results), state.Page, more))
		}
	}

	help := helpStyle.Render("enter search | m more | f field | tab view | b bookmark | r reading list | x remove | / edit | q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.input.View(),
		m.list.View(),
		status,
		help,
	)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("247"))

	statusLoadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("110"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("161")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

func nextField(f openlibrary.Field) openlibrary.Field {
	switch f {
	case openlibrary.FieldTitle:
		return openlibrary.FieldAuthor
	case openlibrary.FieldAuthor:
		return openlibrary.FieldSubject
	default:
		return openlibrary.FieldTitle
	}
}

func clamp(preferred, max, min int) int {
	if max > 0 && preferred > max {
		preferred = max
	}
	if preferred < min {
		preferred = min
	}
	return preferred
}

// Browse runs an interactive catalog browsing session until the user quits.
func Browse(fetcher session.Fetcher) error {
	m := newBrowseModel(fetcher)
	if _, err := runProgram(m); err != nil {
		return fmt.Errorf("browse session failed: %w", err)
	}
	return nil
}
