// Package assistant is the screen that creates or shows an assistant configuration.
package assistant

import (
	"context"
	"errors"
	"slices"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/isaacphi/gptsmith/internal/ui/tui/components/input"
	"github.com/isaacphi/gptsmith/internal/ui/tui/focus"
	"github.com/isaacphi/gptsmith/internal/ui/tui/keymap"
	"github.com/isaacphi/gptsmith/internal/ui/tui/screens"
	"github.com/isaacphi/gptsmith/internal/ui/tui/theme"
)

// Focus ids of the rows that are not schema fields.
const (
	focusName   = "name"
	focusType   = "type"
	focusPublic = "public"
	focusFiles  = "files"
)

type Options struct {
	Form        *form.Form
	Keys        *config.KeyMap
	Theme       *theme.Theme
	Name        string
	Save        form.SaveFunc
	LoadCatalog func(ctx context.Context) ([]domain.ToolSchema, error)
	// Link is the public link shown while viewing a saved assistant.
	Link string
}

// Model represents the assistant screen
type Model struct {
	ctx         context.Context
	form        *form.Form
	keys        *config.KeyMap
	theme       *theme.Theme
	save        form.SaveFunc
	loadCatalog func(ctx context.Context) ([]domain.ToolSchema, error)
	link        string

	focus *focus.Manager
	name  input.Model
	texts map[string]*textarea.Model

	toolCursor int
	fileCursor int
	picker     *picker
	dialog     *dialog

	status string
	err    error
	saved  bool

	focusTop    int
	focusHeight int

	width  int
	height int
}

// New creates the screen over f
func New(ctx context.Context, opts Options) *Model {
	m := &Model{
		ctx:         ctx,
		form:        opts.Form,
		keys:        opts.Keys,
		theme:       opts.Theme,
		save:        opts.Save,
		loadCatalog: opts.LoadCatalog,
		link:        opts.Link,
		focus:       focus.New(),
		name:        input.New(opts.Theme, "Name your assistant", 128),
		texts:       make(map[string]*textarea.Model),
		width:       80,
	}
	m.name.SetValue(opts.Name)

	tree := m.form.Tree()
	for _, f := range m.form.Schema().Fields() {
		if f.Kind != domain.FieldKindString {
			continue
		}
		ta := textarea.New()
		ta.ShowLineNumbers = false
		ta.Placeholder = f.Title
		ta.CharLimit = 0
		ta.SetHeight(4)
		ta.SetWidth(m.width - 6)
		ta.SetValue(tree.StringValue(f.Path))
		m.texts[f.Path] = &ta
	}

	// visibility follows the tree, so every store write can change the rows
	m.form.Store().OnChange(func(string, domain.ConfigTree) { m.refreshFocus() })
	m.refreshFocus()
	return m
}

// Init starts loading the tool catalog
func (m *Model) Init() tea.Cmd {
	if m.loadCatalog == nil {
		m.form.SetCatalog(nil, nil)
		return m.syncFocus()
	}
	load, ctx := m.loadCatalog, m.ctx
	return tea.Batch(m.syncFocus(), func() tea.Msg {
		tools, err := load(ctx)
		return screens.CatalogLoadedMsg{Tools: tools, Err: err}
	})
}

// Saved reports whether the assistant was stored.
func (m *Model) Saved() bool { return m.saved }

// Name returns the name typed into the form.
func (m *Model) Name() string { return m.name.Value() }

// Err returns the last error shown in the status line.
func (m *Model) Err() error { return m.err }

// Capturing reports whether keys go to a text field, picker or dialog before the
// global bindings see them.
func (m *Model) Capturing() bool {
	return m.picker != nil || m.dialog != nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.name.SetWidth(min(width-4, 80))
	for _, ta := range m.texts {
		ta.SetWidth(min(width-6, 80))
	}
	if m.picker != nil {
		m.picker.query.SetWidth(min(width-10, 60))
	}
}

// Update handles updates to the assistant screen
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case screens.CatalogLoadedMsg:
		m.form.SetCatalog(msg.Tools, msg.Err)
		if msg.Err != nil {
			m.setErr(msg.Err)
		}
		return m, nil

	case screens.SavedMsg:
		if err := m.form.FinishSubmit(msg.Err); err != nil {
			m.setErr(err)
			return m, m.syncFocus()
		}
		m.saved = true
		m.status = "Saved"
		return m, tea.Quit

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.forwardToFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.dialog != nil {
		return m.updateDialog(msg)
	}
	if m.picker != nil {
		return m.updatePicker(msg)
	}

	switch {
	case keymap.Matches(msg, m.keys, config.KeyActionSubmit):
		return m.submit()
	case keymap.Matches(msg, m.keys, config.KeyActionTogglePublic):
		m.togglePublic()
		return nil
	case keymap.Matches(msg, m.keys, config.KeyActionNextField):
		m.focus.Next()
		return m.syncFocus()
	case keymap.Matches(msg, m.keys, config.KeyActionPrevField):
		m.focus.Prev()
		return m.syncFocus()
	}

	return m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.KeyMsg) tea.Cmd {
	switch id := m.focus.GetCurrentFocus(); id {
	case focusName:
		if m.form.ReadOnly() {
			return nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return cmd

	case focusType:
		delta := optionDelta(msg, m.keys)
		if delta == 0 {
			return nil
		}
		options := m.form.Schema().TypeField().Options
		next := cycle(options, m.form.BotType().ID, delta)
		if err := m.form.SetType(next); err != nil {
			m.setErr(err)
			return nil
		}
		m.clearErr()
		return nil

	case focusPublic:
		if keymap.Matches(msg, m.keys, config.KeyActionSelect) || optionDelta(msg, m.keys) != 0 {
			m.togglePublic()
		}
		return nil

	case focusFiles:
		return m.updateFiles(msg)

	default:
		field, ok := m.form.Schema().Field(id)
		if !ok {
			return nil
		}
		cmd, err := editors[field.Kind](m, field, msg)
		if err != nil {
			m.setErr(err)
		} else {
			m.clearErr()
		}
		if field.Kind == domain.FieldKindTools {
			// the selection lives outside the store
			m.refreshFocus()
		}
		return cmd
	}
}

func (m *Model) updateFiles(msg tea.KeyMsg) tea.Cmd {
	files := m.form.Files()
	if len(files) == 0 {
		return nil
	}
	if delta := optionDelta(msg, m.keys); delta != 0 {
		m.fileCursor = clamp(m.fileCursor+delta, len(files))
		return nil
	}
	if keymap.Matches(msg, m.keys, config.KeyActionRemoveFile) {
		if err := m.form.RemoveFile(files[clamp(m.fileCursor, len(files))].Key()); err != nil {
			m.setErr(err)
			return nil
		}
		m.fileCursor = clamp(m.fileCursor, len(files)-1)
		m.refreshFocus()
		return m.syncFocus()
	}
	return nil
}

// forwardToFocused passes non-key messages such as cursor blinks to the focused input.
func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	switch {
	case m.dialog != nil:
		return m.dialog.update(msg)
	case m.picker != nil:
		var cmd tea.Cmd
		m.picker.query, cmd = m.picker.query.Update(msg)
		return cmd
	}
	id := m.focus.GetCurrentFocus()
	if id == focusName {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return cmd
	}
	if ta, ok := m.texts[id]; ok && ta.Focused() {
		var cmd tea.Cmd
		*ta, cmd = ta.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	sub, err := m.form.BeginSubmit(m.name.Value())
	if err != nil {
		m.setErr(err)
		return nil
	}
	m.clearErr()
	m.status = "Saving..."

	save, ctx := m.save, m.ctx
	return tea.Batch(m.syncFocus(), func() tea.Msg {
		return screens.SavedMsg{Err: save(ctx, sub.Name, sub.Tree, sub.Files, sub.Public)}
	})
}

func (m *Model) togglePublic() {
	if err := m.form.SetPublic(!m.form.Public()); err != nil {
		m.setErr(err)
		return
	}
	m.clearErr()
}

// refreshFocus rebuilds the focus ring from the fields that are currently visible.
func (m *Model) refreshFocus() {
	order := []string{focusName, focusType}
	for _, f := range m.form.Fields() {
		order = append(order, f.Path)
	}
	order = append(order, focusPublic)
	if len(m.form.Files()) > 0 {
		order = append(order, focusFiles)
	}
	m.focus.SetOrder(order)

	if n := len(m.form.Tools().Selected()); m.toolCursor >= n {
		m.toolCursor = max(n-1, 0)
	}
}

// syncFocus moves the terminal cursor to the focused text input, if any.
func (m *Model) syncFocus() tea.Cmd {
	current := m.focus.GetCurrentFocus()
	editable := !m.form.ReadOnly() && !m.Capturing()

	m.name.Blur()
	for _, ta := range m.texts {
		ta.Blur()
	}
	if !editable {
		return nil
	}
	if current == focusName {
		return m.name.Focus()
	}
	if ta, ok := m.texts[current]; ok {
		return ta.Focus()
	}
	return nil
}

func (m *Model) setErr(err error) {
	m.err = err
	m.status = ""
	if errors.Is(err, form.ErrReadOnly) && m.form.Viewing() {
		m.status = "This assistant is read-only"
		m.err = nil
	}
}

func (m *Model) clearErr() {
	m.err = nil
	if !m.form.InFlight() {
		m.status = ""
	}
}

// optionDelta maps the option keys to a step through a list of choices.
func optionDelta(msg tea.KeyMsg, keys *config.KeyMap) int {
	switch {
	case keymap.Matches(msg, keys, config.KeyActionNextOption):
		return 1
	case keymap.Matches(msg, keys, config.KeyActionPrevOption):
		return -1
	}
	return 0
}

// cycle returns the option delta steps away from current, wrapping around.
func cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, current)
	if i < 0 {
		if delta > 0 {
			return options[0]
		}
		return options[len(options)-1]
	}
	return options[(i+delta+len(options))%len(options)]
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
