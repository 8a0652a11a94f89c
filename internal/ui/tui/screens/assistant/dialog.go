package assistant

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/ui/tui/components/input"
	"github.com/isaacphi/gptsmith/internal/ui/tui/keymap"
)

// dialog edits the config of the tool pending in the selector.
type dialog struct {
	tool   domain.Tool
	keys   []string
	titles []string
	inputs []input.Model
	cursor int
}

func (m *Model) openDialog() tea.Cmd {
	tool, ok := m.form.Tools().Pending()
	if !ok {
		return nil
	}

	var props map[string]domain.ToolConfigProperty
	catalog, _, _ := m.form.Catalog()
	for _, ts := range catalog {
		if ts.ID == tool.ID {
			props = ts.Config.Properties
			break
		}
	}

	d := &dialog{tool: tool, keys: tool.ConfigKeys()}
	for _, k := range d.keys {
		title := k
		placeholder := ""
		if p, ok := props[k]; ok {
			if p.Title != "" {
				title = p.Title
			}
			placeholder = p.Description
		}
		in := input.New(m.theme, placeholder, 0)
		in.SetWidth(min(m.width-10, 60))
		in.SetValue(tool.Config[k])
		d.titles = append(d.titles, title)
		d.inputs = append(d.inputs, in)
	}

	m.dialog = d
	m.syncFocus()
	return d.focusCurrent()
}

func (d *dialog) focusCurrent() tea.Cmd {
	for i := range d.inputs {
		d.inputs[i].Blur()
	}
	if len(d.inputs) == 0 {
		return nil
	}
	return d.inputs[d.cursor].Focus()
}

func (d *dialog) update(msg tea.Msg) tea.Cmd {
	if len(d.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	d.inputs[d.cursor], cmd = d.inputs[d.cursor].Update(msg)
	return cmd
}

func (m *Model) closeDialog() tea.Cmd {
	m.dialog = nil
	m.refreshFocus()
	return m.syncFocus()
}

func (m *Model) updateDialog(msg tea.KeyMsg) tea.Cmd {
	d := m.dialog
	switch {
	case keymap.Matches(msg, m.keys, config.KeyActionCancel):
		m.form.Tools().Cancel()
		return m.closeDialog()

	case keymap.Matches(msg, m.keys, config.KeyActionSelect):
		for i, k := range d.keys {
			if err := m.form.Tools().SetConfig(k, d.inputs[i].Value()); err != nil {
				m.setErr(err)
				return nil
			}
		}
		if err := m.form.Tools().Save(); err != nil {
			m.setErr(err)
			return nil
		}
		m.clearErr()
		return m.closeDialog()

	case keymap.Matches(msg, m.keys, config.KeyActionNextField):
		if len(d.inputs) > 0 {
			d.cursor = (d.cursor + 1) % len(d.inputs)
		}
		return d.focusCurrent()

	case keymap.Matches(msg, m.keys, config.KeyActionPrevField):
		if len(d.inputs) > 0 {
			d.cursor = (d.cursor - 1 + len(d.inputs)) % len(d.inputs)
		}
		return d.focusCurrent()
	}
	return d.update(msg)
}

func (m *Model) viewDialog() string {
	d := m.dialog
	var b strings.Builder
	b.WriteString(m.theme.TitleStyle.Render("Configure " + d.tool.Name))
	for i, in := range d.inputs {
		style := m.theme.LabelStyle
		if i == d.cursor {
			style = m.theme.FocusedLabelStyle
		}
		b.WriteString("\n" + style.Render(d.titles[i]) + "\n" + in.View())
	}
	return m.theme.DialogStyle.Render(b.String())
}
