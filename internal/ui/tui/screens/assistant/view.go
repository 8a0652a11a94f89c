package assistant

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/isaacphi/gptsmith/internal/form"
)

// View renders the assistant screen
func (m *Model) View() string {
	if m.dialog != nil {
		return m.viewDialog()
	}
	if m.picker != nil {
		return m.viewPicker()
	}

	var sections []string
	line := 0
	m.focusTop, m.focusHeight = 0, 0
	add := func(id, section string) {
		h := lipgloss.Height(section)
		if id != "" && m.focus.IsFocused(id) {
			m.focusTop, m.focusHeight = line, h
		}
		line += h
		sections = append(sections, section)
	}

	title := m.form.Schema().Title()
	if title == "" {
		title = "New assistant"
	}
	if m.form.Viewing() {
		title = m.name.Value()
	}
	header := m.theme.HeaderStyle.Render(title)
	if m.form.Viewing() {
		header += " " + m.theme.ReadOnlyStyle.Render("(read-only)")
	}
	add("", header)

	if m.form.Viewing() && m.link != "" {
		add("", "  Public link: "+m.theme.LinkStyle.Render(m.link))
	}

	if !m.form.Viewing() {
		add(focusName, m.viewName())
	}
	add(focusType, m.viewTypes())

	for _, f := range m.form.Fields() {
		render, ok := renderers[f.Kind]
		if !ok {
			continue
		}
		add(f.Path, render(m, f, m.focus.IsFocused(f.Path)))
	}

	add(focusPublic, m.viewPublic())
	if files := m.viewFiles(); files != "" {
		add(focusFiles, files)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// FocusedLines returns the first line and height of the focused row in the last
// rendered View.
func (m *Model) FocusedLines() (top, height int) {
	return m.focusTop, m.focusHeight
}

// Status returns the line shown above the help footer.
func (m *Model) Status() string {
	switch {
	case m.err != nil:
		return m.theme.ErrorStyle.Render(m.err.Error())
	case m.status != "":
		return m.theme.SuccessStyle.Render(m.status)
	}
	return ""
}

func (m *Model) marker(id string) string {
	if m.focus.IsFocused(id) {
		return "> "
	}
	return "  "
}

func (m *Model) labelStyle(id string) lipgloss.Style {
	if m.focus.IsFocused(id) {
		return m.theme.FocusedLabelStyle
	}
	return m.theme.LabelStyle
}

func (m *Model) viewName() string {
	return m.marker(focusName) + m.labelStyle(focusName).Render("Name") + "\n" + m.name.View()
}

func (m *Model) viewTypes() string {
	current := m.form.BotType()
	var tabs []string
	for _, id := range m.form.Schema().TypeField().Options {
		bt := lookupTitle(id)
		if id == current.ID {
			tabs = append(tabs, m.theme.ActiveTabStyle.Render(bt))
		} else {
			tabs = append(tabs, m.theme.TabStyle.Render(bt))
		}
	}
	out := m.marker(focusType) + m.labelStyle(focusType).Render("Bot type") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if current.Description != "" {
		out += "\n" + m.description(current.Description)
	}
	return out
}

func (m *Model) viewPublic() string {
	current := "No"
	if m.form.Public() {
		current = "Yes"
	}
	return m.marker(focusPublic) + m.labelStyle(focusPublic).Render("Public") + "\n  " +
		m.renderOptions([]string{"Yes", "No"}, current)
}

func (m *Model) viewFiles() string {
	files := m.form.Files()
	if len(files) == 0 {
		if m.form.AcceptsFiles() {
			return "  " + m.theme.DescriptionStyle.Render("No files attached. Pass --file to attach some.")
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(m.marker(focusFiles) + m.labelStyle(focusFiles).Render("Files"))
	for i, f := range files {
		line := fmt.Sprintf("%s (%s)", f.Name, humanize.Bytes(uint64(f.Size)))
		if m.focus.IsFocused(focusFiles) && i == m.fileCursor {
			b.WriteString("\n  " + m.theme.ActiveOptionStyle.Render(line))
		} else {
			b.WriteString("\n  " + m.theme.OptionStyle.Render(line))
		}
	}
	if !m.form.AcceptsFiles() && !m.form.Viewing() {
		b.WriteString("\n  " + m.theme.ReadOnlyStyle.Render("This bot type ignores files"))
	}
	return b.String()
}

func lookupTitle(id string) string {
	bt, _ := form.LookupBotType(id)
	return bt.Title
}
