package assistant

import (
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/ui/tui/keymap"
)

// GetKeyMap returns the bindings that apply to the current focus
func (m *Model) GetKeyMap() keymap.KeyMap {
	km := keymap.NewKeyMap(m.keys)

	switch {
	case m.dialog != nil:
		km.AddAction(keymap.ActionGroup, config.KeyActionSelect, "save tool")
		km.AddAction(keymap.ActionGroup, config.KeyActionCancel, "cancel")
		km.AddAction(keymap.NavigationGroup, config.KeyActionNextField, "next setting")
		return km
	case m.picker != nil:
		km.AddAction(keymap.ActionGroup, config.KeyActionSelect, "add tool")
		km.AddAction(keymap.ActionGroup, config.KeyActionCancel, "close")
		return km
	}

	km.AddAction(keymap.NavigationGroup, config.KeyActionNextField, "next field")
	km.AddAction(keymap.NavigationGroup, config.KeyActionPrevField, "previous field")
	if m.form.ReadOnly() {
		return km
	}
	km.AddAction(keymap.ActionGroup, config.KeyActionSubmit, "save")
	km.AddAction(keymap.ActionGroup, config.KeyActionTogglePublic, "toggle public")

	switch id := m.focus.GetCurrentFocus(); id {
	case focusType:
		km.AddAction(keymap.NavigationGroup, config.KeyActionNextOption, "next type")
	case focusFiles:
		km.AddAction(keymap.ActionGroup, config.KeyActionRemoveFile, "remove file")
	default:
		field, ok := m.form.Schema().Field(id)
		if !ok {
			break
		}
		switch field.Kind {
		case domain.FieldKindEnum, domain.FieldKindBoolean:
			km.AddAction(keymap.NavigationGroup, config.KeyActionNextOption, "next choice")
			km.AddAction(keymap.NavigationGroup, config.KeyActionPrevOption, "previous choice")
		case domain.FieldKindTools:
			km.AddAction(keymap.ActionGroup, config.KeyActionAddTool, "add tool")
			km.AddAction(keymap.ActionGroup, config.KeyActionEditTool, "configure tool")
			km.AddAction(keymap.ActionGroup, config.KeyActionRemoveTool, "remove tool")
		}
	}
	return km
}
