package tui

import (
	"strings"

	"cellstats/internal/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AddModel is the twelve-field form for entering a new cell.
type AddModel struct {
	fields       []models.Field
	inputs       []textinput.Model
	focusedInput int
	width        int
	height       int
}

var addPlaceholders = map[models.Field]string{
	models.FieldOEM:               "Samsung",
	models.FieldModel:             "Galaxy S10",
	models.FieldLaunchAnnounced:   "2019, February 20",
	models.FieldLaunchStatus:      "Available. Released 2019, March 08",
	models.FieldBodyDimensions:    "149.9 x 70.4 x 7.8 mm",
	models.FieldBodyWeight:        "157 g (5.54 oz)",
	models.FieldBodySIM:           "Nano-SIM",
	models.FieldDisplayType:       "Dynamic AMOLED",
	models.FieldDisplaySize:       "6.1 inches",
	models.FieldDisplayResolution: "1440 x 3040 pixels",
	models.FieldFeaturesSensors:   "Fingerprint, accelerometer, gyro",
	models.FieldPlatformOS:        "Android 9.0 (Pie)",
}

func NewAddModel() *AddModel {
	fields := models.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		input := textinput.New()
		input.Placeholder = addPlaceholders[f]
		input.Prompt = ""
		inputs[i] = input
	}

	m := &AddModel{fields: fields, inputs: inputs}
	m.updateInputFocus()
	return m
}

func (m *AddModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AddModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			m.focusedInput = (m.focusedInput + 1) % len(m.inputs)
			m.updateInputFocus()
			return m, nil
		case "shift+tab", "up":
			m.focusedInput = (m.focusedInput - 1 + len(m.inputs)) % len(m.inputs)
			m.updateInputFocus()
			return m, nil
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focusedInput == len(m.inputs)-1 {
				return m, m.submit()
			}
			m.focusedInput++
			m.updateInputFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
	return m, cmd
}

// Raw collects the current answers, trimmed.
func (m *AddModel) Raw() models.RawCell {
	var raw models.RawCell
	for i, f := range m.fields {
		raw = raw.Set(f, strings.TrimSpace(m.inputs[i].Value()))
	}
	return raw
}

func (m *AddModel) submit() tea.Cmd {
	raw := m.Raw()
	return func() tea.Msg {
		return AddCellMsg{Raw: raw}
	}
}

func (m *AddModel) updateInputFocus() {
	for i := range m.inputs {
		if i == m.focusedInput {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *AddModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focusedInput = 0
	m.updateInputFocus()
}

func (m *AddModel) View() string {
	adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := adaptiveTitleStyle.Render("➕ Add Cell")

	rows := make([]string, len(m.inputs))
	for i, f := range m.fields {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(f.String()), m.inputs[i].View())
	}
	form := adaptiveFormStyle.Render(strings.Join(rows, "\n"))

	help := adaptiveHelpStyle.Render("Tab/Shift+Tab: Navigate • Enter: Next field (saves on the last) • Ctrl+S: Save • Esc: Back to menu")

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
