package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbastida/mailfind/internal/search"
)

func testEngine(t *testing.T) *search.Engine {
	t.Helper()
	e := search.NewEngine()
	seeds := []struct{ sender, subject, body, date string }{
		{"juan@mail.com", "Meeting", "Urgent meeting tomorrow", "2025-11-10"},
		{"ana@mail.com", "Homework", "The homework is ready", "2025-11-11"},
		{"luis@mail.com", "Project", "We must deliver the report", "2025-11-09"},
	}
	for _, s := range seeds {
		_, err := e.Ingest(s.sender, s.subject, s.body, s.date)
		require.NoError(t, err)
	}
	return e
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModel_MenuShowsStats(t *testing.T) {
	m := NewModel(testEngine(t), NoColorStyles())

	view := m.View()
	assert.Contains(t, view, "[ MAIN MENU ]")
	assert.Contains(t, view, "3 messages, 3 senders")
}

func TestModel_OrderedListing(t *testing.T) {
	m := NewModel(testEngine(t), NoColorStyles())
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = press(t, m, key("1"))

	assert.Equal(t, stateResults, m.state)
	require.Equal(t, 3, len(m.results.Items()))
	// First result is the oldest date.
	item, ok := m.results.Items()[0].(messageItem)
	require.True(t, ok)
	assert.Equal(t, "luis@mail.com", item.msg.Sender)
}

func TestModel_SenderSearchFlow(t *testing.T) {
	m := NewModel(testEngine(t), NoColorStyles())
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = press(t, m, key("2"))
	assert.Equal(t, stateSenderInput, m.state)

	for _, r := range "ana@mail.com" {
		m = press(t, m, key(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, stateResults, m.state)
	require.Equal(t, 1, len(m.results.Items()))
}

func TestModel_KeywordSearchFlow(t *testing.T) {
	m := NewModel(testEngine(t), NoColorStyles())
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = press(t, m, key("3"))
	assert.Equal(t, stateKeywordInput, m.state)

	for _, r := range "MEETING" {
		m = press(t, m, key(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, stateResults, m.state)
	require.Equal(t, 1, len(m.results.Items()))
	assert.Contains(t, m.results.Title, "meeting")
}

func TestModel_OpenAndCloseMessageView(t *testing.T) {
	m := NewModel(testEngine(t), NoColorStyles())
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = press(t, m, key("1"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateView, m.state)
	assert.Contains(t, m.View(), "[ READING MESSAGE ]")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateResults, m.state)
}

func TestModel_EscReturnsToMenu(t *testing.T) {
	m := NewModel(testEngine(t), NoColorStyles())
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = press(t, m, key("1"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateMenu, m.state)
}

func TestModel_RefreshPicksUpNewMessages(t *testing.T) {
	engine := testEngine(t)
	m := NewModel(engine, NoColorStyles())
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = press(t, m, key("1"))
	require.Equal(t, 3, len(m.results.Items()))

	_, err := engine.Ingest("new@mail.com", "Late", "arrival", "2025-12-01")
	require.NoError(t, err)

	m = press(t, m, key("r"))
	assert.Equal(t, 4, len(m.results.Items()))
}

func TestModel_QuitKeys(t *testing.T) {
	m := NewModel(testEngine(t), NoColorStyles())

	_, cmd := m.Update(key("0"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
