package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/gptsmith/internal/ui/tui/theme"
)

// Model is a bordered single-line text input
type Model struct {
	textInput textinput.Model
	theme     *theme.Theme
	width     int
}

// New creates a new input model
func New(thm *theme.Theme, placeholder string, charLimit int) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Width = 60

	return Model{
		textInput: ti,
		theme:     thm,
		width:     64,
	}
}

// SetWidth sets the width of the input
func (m *Model) SetWidth(width int) {
	m.width = width
	m.textInput.Width = width - 4 // Account for padding and borders
}

// Focus focuses the input
func (m *Model) Focus() tea.Cmd {
	return m.textInput.Focus()
}

// Blur blurs the input
func (m *Model) Blur() {
	m.textInput.Blur()
}

func (m Model) Focused() bool {
	return m.textInput.Focused()
}

// Value returns the current input value
func (m Model) Value() string {
	return m.textInput.Value()
}

// SetValue sets the input value
func (m *Model) SetValue(value string) {
	m.textInput.SetValue(value)
}

// Update forwards key input to the text input while it is focused
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.textInput.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the input
func (m Model) View() string {
	style := m.theme.InputStyle.Width(m.width)
	if m.textInput.Focused() {
		style = style.BorderForeground(m.theme.Primary)
	}
	return style.Render(m.textInput.View())
}
