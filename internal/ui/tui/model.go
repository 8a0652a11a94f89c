// Package tui hosts the full screen assistant form.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/ui/tui/components/help"
	"github.com/isaacphi/gptsmith/internal/ui/tui/keymap"
	"github.com/isaacphi/gptsmith/internal/ui/tui/layout"
	"github.com/isaacphi/gptsmith/internal/ui/tui/screens/assistant"
	"github.com/isaacphi/gptsmith/internal/ui/tui/theme"
)

// Model wraps the assistant screen with the global keys and the help footer
type Model struct {
	keyMap *config.KeyMap
	theme  *theme.Theme
	screen *assistant.Model
	help   help.Model
	vp     viewport.Model

	width  int
	height int
}

func New(ctx context.Context, opts assistant.Options) *Model {
	if opts.Theme == nil {
		opts.Theme = theme.DefaultTheme()
	}
	m := &Model{
		keyMap: opts.Keys,
		theme:  opts.Theme,
		screen: assistant.New(ctx, opts),
		vp:     viewport.New(80, 24),
		width:  80,
		height: 24,
	}
	m.help = help.New(m.GetKeyMap(), m.theme)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.screen.Init()
}

// Saved reports whether the screen stored the assistant before closing.
func (m *Model) Saved() bool {
	return m.screen.Saved()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.screen.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if keymap.Matches(msg, m.keyMap, config.KeyActionQuit) {
			return m, tea.Quit
		}
		if !m.screen.Capturing() && keymap.Matches(msg, m.keyMap, config.KeyActionToggleHelp) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	m.help.SetKeybindings(m.GetKeyMap())
	result := layout.LayoutScreen(m.width, m.height, m.help, m.theme, m.screen.Status())

	content := m.screen.View()
	if m.screen.Capturing() {
		return layout.Compose(layout.Overlay(m.width, result.ContentHeight, content), result)
	}

	m.vp.Width = m.width
	m.vp.Height = result.ContentHeight
	m.vp.SetContent(m.theme.DocStyle.Render(content))
	top, height := m.screen.FocusedLines()
	top += m.theme.DocStyle.GetPaddingTop()
	m.scrollTo(top, height)
	return layout.Compose(m.vp.View(), result)
}

// scrollTo moves the viewport the least distance that brings lines [top, top+height)
// into view. Rows taller than the viewport are pinned at their first line.
func (m *Model) scrollTo(top, height int) {
	switch {
	case top < m.vp.YOffset || height > m.vp.Height:
		m.vp.SetYOffset(top)
	case top+height > m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(top + height - m.vp.Height)
	}
}
