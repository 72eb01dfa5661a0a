package tui

import (
	"testing"

	"cellstats/internal/models"
	"cellstats/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *session.Session) {
	t.Helper()
	s := session.New(nil)
	s.Ingest([]models.RawCell{
		{OEM: "Samsung", BodyWeight: "157 g", LaunchStatus: "2019"},
		{OEM: "Nokia", BodyWeight: "133 g", LaunchStatus: "Discontinued"},
	})
	return NewModel(s, WithMarkdownStyle("notty")), s
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, MenuScreen, m.CurrentScreen())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, ScreenChangeMsg{Screen: DeleteScreen}, msg)

	m, _ = send(t, m, msg)
	assert.Equal(t, DeleteScreen, m.CurrentScreen())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, MenuScreen, m.CurrentScreen())
}

func TestAddCell(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = send(t, m, ScreenChangeMsg{Screen: AddScreen})
	m, _ = send(t, m, runes("Apple"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, runes("iPhone 11"))
	assert.Equal(t, AddScreen, m.CurrentScreen(), "typing q-free text stays on the form")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg, ok := cmd().(AddCellMsg)
	require.True(t, ok)
	assert.Equal(t, "Apple", msg.Raw.OEM)
	assert.Equal(t, "iPhone 11", msg.Raw.Model)

	m, _ = send(t, m, msg)
	assert.Equal(t, MenuScreen, m.CurrentScreen())
	assert.Equal(t, 3, s.Len())

	c, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Apple", c.OEM.String)
}

func TestAddForm_QDoesNotQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, ScreenChangeMsg{Screen: AddScreen})

	m, cmd := send(t, m, runes("q"))
	assert.Equal(t, AddScreen, m.CurrentScreen())
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit)
	}
	assert.Equal(t, "q", m.addModel.Raw().OEM)
}

func TestDeleteCell(t *testing.T) {
	m, s := newTestModel(t)
	m, _ = send(t, m, ScreenChangeMsg{Screen: DeleteScreen})

	m, _ = send(t, m, runes("abc"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.deleteModel.View(), "numeric index")

	m, _ = send(t, m, ScreenChangeMsg{Screen: DeleteScreen})
	m, _ = send(t, m, runes("9"))
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, DeleteScreen, m.CurrentScreen())
	assert.Contains(t, m.deleteModel.View(), "No cell found at index 9")

	m, _ = send(t, m, DeleteCellMsg{Key: 1})
	assert.Equal(t, MenuScreen, m.CurrentScreen())
	assert.Equal(t, 1, s.Len())
	assert.Contains(t, m.View(), "Cell at index 1 has been deleted")
}

func TestReportAndListScreens(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, ScreenChangeMsg{Screen: ReportScreen})
	assert.Equal(t, ReportScreen, m.CurrentScreen())
	assert.Contains(t, m.reportModel.Content(), "Cell report")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, ScreenChangeMsg{Screen: ListScreen})
	assert.Contains(t, m.listModel.Content(), "Unique values")
	assert.Contains(t, m.listModel.Content(), "Samsung")
}

func TestQuitFromMenu(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Contains(t, m.View(), "Thanks for using cellstats")
}
