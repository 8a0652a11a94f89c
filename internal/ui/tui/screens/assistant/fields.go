package assistant

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/ui/tui/keymap"
)

type fieldRenderer func(m *Model, f domain.FieldDescriptor, focused bool) string

type fieldEditor func(m *Model, f domain.FieldDescriptor, msg tea.KeyMsg) (tea.Cmd, error)

var renderers = map[domain.FieldKind]fieldRenderer{
	domain.FieldKindString:  renderText,
	domain.FieldKindEnum:    renderChoice,
	domain.FieldKindBoolean: renderChoice,
	domain.FieldKindTools:   renderTools,
}

var editors = map[domain.FieldKind]fieldEditor{
	domain.FieldKindString:  editText,
	domain.FieldKindEnum:    editChoice,
	domain.FieldKindBoolean: editChoice,
	domain.FieldKindTools:   editTools,
}

func (m *Model) label(f domain.FieldDescriptor, focused bool) string {
	title := f.Title
	if title == "" {
		title = f.Name
	}
	style := m.theme.LabelStyle
	marker := "  "
	if focused {
		style = m.theme.FocusedLabelStyle
		marker = "> "
	}
	out := marker + style.Render(title)
	if f.Description != "" {
		out += "\n" + m.description(f.Description)
	}
	return out
}

// description renders text under a label, indenting every line.
func (m *Model) description(text string) string {
	return m.theme.DescriptionStyle.PaddingLeft(2).Render(text)
}

func renderText(m *Model, f domain.FieldDescriptor, focused bool) string {
	ta, ok := m.texts[f.Path]
	if !ok {
		return m.label(f, focused)
	}
	return m.label(f, focused) + "\n" + ta.View()
}

func editText(m *Model, f domain.FieldDescriptor, msg tea.KeyMsg) (tea.Cmd, error) {
	ta, ok := m.texts[f.Path]
	if !ok {
		return nil, nil
	}
	if m.form.ReadOnly() {
		return nil, form.ErrReadOnly
	}
	before := ta.Value()
	var cmd tea.Cmd
	*ta, cmd = ta.Update(msg)
	if ta.Value() == before {
		return cmd, nil
	}
	return cmd, m.form.SetField(f.Path, ta.Value())
}

func (m *Model) renderOptions(options []string, current string) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if o == current {
			parts[i] = m.theme.ActiveOptionStyle.Render(o)
		} else {
			parts[i] = m.theme.OptionStyle.Render(o)
		}
	}
	return strings.Join(parts, " ")
}

func renderChoice(m *Model, f domain.FieldDescriptor, focused bool) string {
	current := m.form.Store().Choice(f)
	return m.label(f, focused) + "\n  " + m.renderOptions(f.Options, current)
}

func editChoice(m *Model, f domain.FieldDescriptor, msg tea.KeyMsg) (tea.Cmd, error) {
	delta := optionDelta(msg, m.keys)
	if delta == 0 {
		return nil, nil
	}
	next := cycle(f.Options, m.form.Store().Choice(f), delta)
	return nil, m.form.SetField(f.Path, next)
}

func renderTools(m *Model, f domain.FieldDescriptor, focused bool) string {
	var b strings.Builder
	b.WriteString(m.label(f, focused))

	selected := m.form.Tools().Selected()
	if len(selected) == 0 {
		b.WriteString("\n  " + m.theme.DescriptionStyle.Render("No tools selected"))
	}
	for i, t := range selected {
		line := t.Name
		if len(t.Config) > 0 {
			line += " " + m.theme.DescriptionStyle.Render(fmt.Sprintf("(%d settings)", len(t.Config)))
		}
		if focused && i == m.toolCursor {
			b.WriteString("\n  " + m.theme.ActiveOptionStyle.Render(line))
		} else {
			b.WriteString("\n  " + m.theme.OptionStyle.Render(line))
		}
	}

	_, loading, err := m.form.Catalog()
	switch {
	case loading:
		b.WriteString("\n  " + m.theme.DescriptionStyle.Render("Loading tools..."))
	case err != nil:
		b.WriteString("\n  " + m.theme.ErrorStyle.Render("Some tools failed to load"))
	}
	return b.String()
}

func editTools(m *Model, f domain.FieldDescriptor, msg tea.KeyMsg) (tea.Cmd, error) {
	selected := m.form.Tools().Selected()

	if delta := optionDelta(msg, m.keys); delta != 0 {
		m.toolCursor = clamp(m.toolCursor+delta, len(selected))
		return nil, nil
	}
	if m.form.ReadOnly() {
		return nil, form.ErrReadOnly
	}

	switch {
	case keymap.Matches(msg, m.keys, config.KeyActionAddTool),
		keymap.Matches(msg, m.keys, config.KeyActionSelect):
		return m.openPicker(), nil

	case keymap.Matches(msg, m.keys, config.KeyActionEditTool):
		if len(selected) == 0 {
			return nil, nil
		}
		tool := selected[clamp(m.toolCursor, len(selected))]
		if len(tool.Config) == 0 {
			return nil, nil
		}
		if err := m.form.Tools().Edit(tool.ID); err != nil {
			return nil, err
		}
		return m.openDialog(), nil

	case keymap.Matches(msg, m.keys, config.KeyActionRemoveTool):
		if len(selected) == 0 {
			return nil, nil
		}
		if _, err := m.form.Tools().Remove(selected[clamp(m.toolCursor, len(selected))].ID); err != nil {
			return nil, err
		}
		m.toolCursor = clamp(m.toolCursor, len(selected)-1)
	}
	return nil, nil
}
