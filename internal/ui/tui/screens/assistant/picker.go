package assistant

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/ui/tui/components/input"
	"github.com/isaacphi/gptsmith/internal/ui/tui/keymap"
)

// picker lists the catalog filtered by a search query.
type picker struct {
	query  input.Model
	cursor int
}

func (m *Model) openPicker() tea.Cmd {
	p := &picker{query: input.New(m.theme, "Search tools", 100)}
	p.query.SetWidth(min(m.width-10, 60))
	m.picker = p
	m.syncFocus()
	return p.query.Focus()
}

func (m *Model) closePicker() tea.Cmd {
	m.picker = nil
	return m.syncFocus()
}

func (m *Model) pickerResults() []domain.ToolSchema {
	tools, _, _ := m.form.Catalog()
	return form.FilterCatalog(tools, m.picker.query.Value())
}

func (m *Model) updatePicker(msg tea.KeyMsg) tea.Cmd {
	results := m.pickerResults()

	switch {
	case keymap.Matches(msg, m.keys, config.KeyActionCancel):
		return m.closePicker()

	case keymap.Matches(msg, m.keys, config.KeyActionSelect):
		if len(results) == 0 {
			return nil
		}
		chosen := results[clamp(m.picker.cursor, len(results))]
		configuring, err := m.form.Tools().Add(chosen)
		m.picker = nil
		if err != nil {
			m.setErr(err)
			return m.syncFocus()
		}
		m.refreshFocus()
		if configuring {
			return m.openDialog()
		}
		return m.syncFocus()

	case msg.Type == tea.KeyDown,
		keymap.Matches(msg, m.keys, config.KeyActionNextField):
		m.picker.cursor = clamp(m.picker.cursor+1, len(results))
		return nil

	case msg.Type == tea.KeyUp,
		keymap.Matches(msg, m.keys, config.KeyActionPrevField):
		m.picker.cursor = clamp(m.picker.cursor-1, len(results))
		return nil
	}

	before := m.picker.query.Value()
	var cmd tea.Cmd
	m.picker.query, cmd = m.picker.query.Update(msg)
	if m.picker.query.Value() != before {
		m.picker.cursor = 0
	}
	return cmd
}

func (m *Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.theme.TitleStyle.Render("Add a tool"))
	b.WriteString("\n")
	b.WriteString(m.picker.query.View())
	b.WriteString("\n")

	_, loading, err := m.form.Catalog()
	results := m.pickerResults()
	switch {
	case loading:
		b.WriteString(m.theme.DescriptionStyle.Render("Loading tools..."))
	case len(results) == 0:
		b.WriteString(m.theme.DescriptionStyle.Render("No tools match"))
	}

	for i, t := range results {
		line := t.Name
		if m.form.Tools().Has(t.ID) {
			line += " ✓"
		}
		if i == m.picker.cursor {
			b.WriteString("\n" + m.theme.ActiveOptionStyle.Render(line))
			if t.Description != "" {
				b.WriteString("\n" + m.description(t.Description))
			}
		} else {
			b.WriteString("\n" + m.theme.OptionStyle.Render(line))
		}
	}

	if err != nil {
		b.WriteString("\n\n" + m.theme.ErrorStyle.Render(err.Error()))
	}
	return m.theme.DialogStyle.Render(b.String())
}
