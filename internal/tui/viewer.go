package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const defaultWrap = 80

// ViewerModel shows a scrollable, glamour-rendered markdown document.
type ViewerModel struct {
	title    string
	style    string
	markdown string
	viewport viewport.Model
	width    int
	height   int
}

func NewViewerModel(title string) *ViewerModel {
	return &ViewerModel{
		title:    title,
		style:    "auto",
		viewport: viewport.New(defaultWrap, 20),
	}
}

func (m *ViewerModel) Init() tea.Cmd {
	return nil
}

func (m *ViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	// title and help take roughly six lines
	if height > 6 {
		m.viewport.Height = height - 6
	}
	if m.markdown != "" {
		m.render()
	}
}

// SetMarkdown replaces the document and scrolls back to the top.
func (m *ViewerModel) SetMarkdown(md string) {
	m.markdown = md
	m.render()
	m.viewport.GotoTop()
}

// Content returns the rendered document.
func (m *ViewerModel) Content() string {
	return m.viewport.View()
}

func (m *ViewerModel) render() {
	wrap := defaultWrap
	if m.width > 0 && m.width < wrap {
		wrap = m.width
	}

	styleOpt := glamour.WithAutoStyle()
	if m.style != "auto" {
		styleOpt = glamour.WithStandardStyle(m.style)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		m.viewport.SetContent(m.markdown)
		return
	}
	out, err := renderer.Render(m.markdown)
	if err != nil {
		m.viewport.SetContent(m.markdown)
		return
	}
	m.viewport.SetContent(out)
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ViewerModel) View() string {
	title := titleStyle.Render(m.title)
	help := helpStyle.Render("↑/↓ PgUp/PgDn: Scroll • Esc: Back to menu")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), help)
}
