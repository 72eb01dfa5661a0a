package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DeleteModel asks for the key of the cell to remove.
type DeleteModel struct {
	keyInput textinput.Model
	errMsg   string
	width    int
	height   int
}

func NewDeleteModel() *DeleteModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "1"
	keyInput.CharLimit = 12
	keyInput.Focus()

	return &DeleteModel{keyInput: keyInput}
}

func (m *DeleteModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *DeleteModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError shows msg under the input.
func (m *DeleteModel) SetError(msg string) {
	m.errMsg = msg
}

func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		key, err := strconv.Atoi(strings.TrimSpace(m.keyInput.Value()))
		if err != nil {
			m.errMsg = "Enter the numeric index of a cell"
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg { return DeleteCellMsg{Key: key} }
	}

	var cmd tea.Cmd
	m.keyInput, cmd = m.keyInput.Update(msg)
	return m, cmd
}

func (m *DeleteModel) reset() {
	m.keyInput.SetValue("")
	m.keyInput.Focus()
	m.errMsg = ""
}

func (m *DeleteModel) View() string {
	adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := adaptiveTitleStyle.Render("🗑️  Delete Cell")

	body := labelStyle.Render("Index:") + m.keyInput.View()
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render(m.errMsg)
	}
	form := adaptiveFormStyle.Render(body)

	help := adaptiveHelpStyle.Render("Enter: Delete • Esc: Back to menu")

	content := lipgloss.JoinVertical(lipgloss.Left, title, form, help)

	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Top,
			content,
		)
	}

	return content
}
