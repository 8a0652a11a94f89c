package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/isaacphi/gptsmith/internal/ui/tui/keymap"
	"github.com/isaacphi/gptsmith/internal/ui/tui/theme"
)

// Model represents the help component
type Model struct {
	help    help.Model
	keys    keymap.KeyMap
	theme   *theme.Theme
	width   int
	ShowAll bool
}

// New creates a new help model
func New(km keymap.KeyMap, thm *theme.Theme) Model {
	helpModel := help.New()
	helpModel.Styles.ShortKey = thm.KeyHintStyle
	helpModel.Styles.FullKey = thm.KeyHintStyle
	return Model{
		help:  helpModel,
		keys:  km,
		theme: thm,
		width: 80,
	}
}

// SetWidth sets the width of the help component
func (m *Model) SetWidth(width int) {
	m.width = width
	m.help.Width = width
}

// SetKeybindings sets the keybindings for the help component
func (m *Model) SetKeybindings(km keymap.KeyMap) {
	m.keys = km
}

// View renders the bindings, all groups when ShowAll is set
func (m Model) View() string {
	m.help.ShowAll = m.ShowAll
	return m.help.View(m.keys)
}
