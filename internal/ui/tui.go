package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbastida/mailfind/internal/search"
	"github.com/mbastida/mailfind/internal/store"
)

// browseState is the TUI screen being shown.
type browseState int

const (
	stateMenu browseState = iota
	stateSenderInput
	stateKeywordInput
	stateResults
	stateView
)

// queryKind records which query produced the current results, so "r"
// can re-run it against a possibly grown index.
type queryKind int

const (
	queryOrdered queryKind = iota
	querySender
	queryKeyword
)

// messageItem adapts a message to the bubbles list.
type messageItem struct {
	msg *store.Message
}

func (i messageItem) Title() string {
	return fmt.Sprintf("%d  %s  %s", i.msg.ID, i.msg.Sender, i.msg.Subject)
}

func (i messageItem) Description() string { return i.msg.DateKey }

func (i messageItem) FilterValue() string {
	return i.msg.Sender + " " + i.msg.Subject
}

// Model is the interactive message browser: the classic menu loop with an
// ordered listing, sender search, and keyword search, each opening into a
// full message view.
type Model struct {
	engine *search.Engine
	styles Styles

	state   browseState
	kind    queryKind
	query   string
	input   textinput.Model
	results list.Model
	current *store.Message

	width  int
	height int
}

// NewModel creates the browser model over an engine.
func NewModel(engine *search.Engine, styles Styles) Model {
	input := textinput.New()
	input.CharLimit = 120
	input.Width = 40

	results := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	results.SetShowTitle(true)
	results.SetShowStatusBar(true)
	results.SetFilteringEnabled(true)

	return Model{
		engine:  engine,
		styles:  styles,
		state:   stateMenu,
		input:   input,
		results: results,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateSenderInput, stateKeywordInput:
			return m.updateInput(msg)
		case stateResults:
			return m.updateResults(msg)
		case stateView:
			return m.updateView(msg)
		}
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.kind = queryOrdered
		return m.showResults("Messages by date", m.ordered())
	case "2":
		m.state = stateSenderInput
		m.input.Placeholder = "sender"
		m.input.SetValue("")
		return m, m.input.Focus()
	case "3":
		m.state = stateKeywordInput
		m.input.Placeholder = "keyword"
		m.input.SetValue("")
		return m, m.input.Focus()
	case "0", "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = stateMenu
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.query = strings.TrimSpace(m.input.Value())
		m.input.Blur()
		if m.state == stateSenderInput {
			m.kind = querySender
			return m.showResults("From "+m.query, m.engine.BySender(m.query))
		}
		m.kind = queryKeyword
		return m.showResults("Matching "+store.NormalizeToken(m.query), m.engine.ByKeyword(m.query))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list handle navigation keys while filtering is active.
	if m.results.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "0":
		m.state = stateMenu
		return m, nil
	case "r":
		return m.rerun()
	case "enter":
		if item, ok := m.results.SelectedItem().(messageItem); ok {
			m.current = item.msg
			m.state = stateView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "0":
		m.state = stateResults
	}
	return m, nil
}

// rerun re-executes the current query, picking up messages ingested since
// the results were produced (watch mode appends while browsing).
func (m Model) rerun() (tea.Model, tea.Cmd) {
	switch m.kind {
	case querySender:
		return m.showResults("From "+m.query, m.engine.BySender(m.query))
	case queryKeyword:
		return m.showResults("Matching "+store.NormalizeToken(m.query), m.engine.ByKeyword(m.query))
	default:
		return m.showResults("Messages by date", m.ordered())
	}
}

func (m Model) ordered() []*store.Message {
	var msgs []*store.Message
	for msg := range m.engine.AllOrdered() {
		msgs = append(msgs, msg)
	}
	return msgs
}

func (m Model) showResults(title string, msgs []*store.Message) (tea.Model, tea.Cmd) {
	items := make([]list.Item, len(msgs))
	for i, msg := range msgs {
		items[i] = messageItem{msg: msg}
	}
	m.results.Title = title
	cmd := m.results.SetItems(items)
	m.results.ResetSelected()
	m.state = stateResults
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateSenderInput:
		return m.viewInput("[ SEARCH BY SENDER ]")
	case stateKeywordInput:
		return m.viewInput("[ SEARCH BY KEYWORD ]")
	case stateResults:
		return m.results.View()
	case stateView:
		return m.viewMessage()
	}
	return ""
}

func (m Model) viewMenu() string {
	s := m.styles
	stats := m.engine.Stats()

	var b strings.Builder
	b.WriteString(s.Header.Render("[ MAIN MENU ]"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s. View messages by date\n", s.Label.Render("1"))
	fmt.Fprintf(&b, "%s. Search by sender\n", s.Label.Render("2"))
	fmt.Fprintf(&b, "%s. Search by keyword\n", s.Label.Render("3"))
	fmt.Fprintf(&b, "%s. Quit\n\n", s.Label.Render("0"))
	fmt.Fprintf(&b, "%s\n", s.Dim.Render(fmt.Sprintf(
		"%d messages, %d senders, %d terms indexed",
		stats.Messages, stats.Senders, stats.Terms)))
	return b.String()
}

func (m Model) viewInput(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Dim.Render("enter to search, esc to go back"))
	return b.String()
}

func (m Model) viewMessage() string {
	if m.current == nil {
		return ""
	}
	s := m.styles
	msg := m.current

	var b strings.Builder
	b.WriteString(s.Header.Render("[ READING MESSAGE ]"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %d\n", s.Label.Render("ID:"), msg.ID)
	fmt.Fprintf(&b, "%s %s\n", s.Label.Render("From:"), s.Sender.Render(msg.Sender))
	fmt.Fprintf(&b, "%s %s\n", s.Label.Render("Subject:"), s.Subject.Render(msg.Subject))
	fmt.Fprintf(&b, "%s %s\n\n", s.Label.Render("Date:"), s.Date.Render(msg.DateKey))
	b.WriteString(s.Body.Render(msg.Body))
	b.WriteString("\n\n")
	b.WriteString(s.Dim.Render("esc to go back"))
	return b.String()
}

// Run starts the interactive browser and blocks until it exits.
func Run(engine *search.Engine, styles Styles) error {
	_, err := tea.NewProgram(NewModel(engine, styles), tea.WithAltScreen()).Run()
	return err
}
