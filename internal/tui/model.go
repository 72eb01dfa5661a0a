package tui

import (
	"fmt"

	"cellstats/internal/models"
	"cellstats/internal/report"
	"cellstats/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	MenuScreen Screen = iota
	AddScreen
	DeleteScreen
	ListScreen
	ReportScreen
)

// Model is the root TUI model. All session mutations happen in Update, never
// inside a tea.Cmd, so the session only ever sees one caller.
type Model struct {
	currentScreen Screen
	session       *session.Session
	menuModel     *MenuModel
	addModel      *AddModel
	deleteModel   *DeleteModel
	listModel     *ViewerModel
	reportModel   *ViewerModel
	quitting      bool
	width         int
	height        int
}

// Option customizes a Model.
type Option func(*Model)

// WithMarkdownStyle picks the glamour style for the list and report views
// ("auto" by default; "dark", "light", "notty" and others are accepted).
func WithMarkdownStyle(style string) Option {
	return func(m *Model) {
		m.listModel.style = style
		m.reportModel.style = style
	}
}

func NewModel(s *session.Session, opts ...Option) Model {
	m := Model{
		currentScreen: MenuScreen,
		session:       s,
		menuModel:     NewMenuModel(),
		addModel:      NewAddModel(),
		deleteModel:   NewDeleteModel(),
		listModel:     NewViewerModel("📋 Unique Values"),
		reportModel:   NewViewerModel("📊 Analytics Report"),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.menuModel.SetStatus(fmt.Sprintf("%d cells loaded", s.Len()))
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuModel.SetSize(msg.Width, msg.Height)
		m.addModel.SetSize(msg.Width, msg.Height)
		m.deleteModel.SetSize(msg.Width, msg.Height)
		m.listModel.SetSize(msg.Width, msg.Height)
		m.reportModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			// Forms need the letter q; only the menu treats it as quit.
			if m.currentScreen == MenuScreen {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			if m.currentScreen != MenuScreen {
				m.currentScreen = MenuScreen
				return m, nil
			}
		}

	case ScreenChangeMsg:
		m.currentScreen = msg.Screen
		return m, m.enterScreen(msg.Screen)

	case AddCellMsg:
		key := m.session.Add(msg.Raw)
		m.menuModel.SetStatus(fmt.Sprintf("Cell %d added (%d cells)", key, m.session.Len()))
		m.currentScreen = MenuScreen
		return m, nil

	case DeleteCellMsg:
		if m.session.Delete(msg.Key) {
			m.menuModel.SetStatus(fmt.Sprintf("Cell at index %d has been deleted (%d cells)", msg.Key, m.session.Len()))
			m.currentScreen = MenuScreen
		} else {
			m.deleteModel.SetError(fmt.Sprintf("No cell found at index %d", msg.Key))
		}
		return m, nil

	}

	switch m.currentScreen {
	case MenuScreen:
		newMenuModel, cmd := m.menuModel.Update(msg)
		m.menuModel = newMenuModel.(*MenuModel)
		return m, cmd
	case AddScreen:
		newAddModel, cmd := m.addModel.Update(msg)
		m.addModel = newAddModel.(*AddModel)
		return m, cmd
	case DeleteScreen:
		newDeleteModel, cmd := m.deleteModel.Update(msg)
		m.deleteModel = newDeleteModel.(*DeleteModel)
		return m, cmd
	case ListScreen:
		newListModel, cmd := m.listModel.Update(msg)
		m.listModel = newListModel.(*ViewerModel)
		return m, cmd
	case ReportScreen:
		newReportModel, cmd := m.reportModel.Update(msg)
		m.reportModel = newReportModel.(*ViewerModel)
		return m, cmd
	}

	return m, cmd
}

// enterScreen prepares a screen each time it is opened.
func (m Model) enterScreen(screen Screen) tea.Cmd {
	switch screen {
	case AddScreen:
		m.addModel.reset()
		return m.addModel.Init()
	case DeleteScreen:
		m.deleteModel.reset()
		return m.deleteModel.Init()
	case ListScreen:
		m.listModel.SetMarkdown(report.UniqueValuesMarkdown(m.session.UniqueValues()))
	case ReportScreen:
		m.reportModel.SetMarkdown(report.Markdown(m.session.Report()))
	}
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return "Thanks for using cellstats! 👋\n"
	}

	var content string
	switch m.currentScreen {
	case MenuScreen:
		content = m.menuModel.View()
	case AddScreen:
		content = m.addModel.View()
	case DeleteScreen:
		content = m.deleteModel.View()
	case ListScreen:
		content = m.listModel.View()
	case ReportScreen:
		content = m.reportModel.View()
	}

	return content
}

// CurrentScreen reports which screen is showing.
func (m Model) CurrentScreen() Screen { return m.currentScreen }

type ScreenChangeMsg struct {
	Screen Screen
}

// AddCellMsg asks the root model to store a new cell.
type AddCellMsg struct {
	Raw models.RawCell
}

// DeleteCellMsg asks the root model to delete the cell under Key.
type DeleteCellMsg struct {
	Key int
}

func ChangeScreen(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenChangeMsg{Screen: screen}
	}
}
