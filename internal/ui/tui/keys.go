package tui

import (
	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/isaacphi/gptsmith/internal/ui/tui/keymap"
)

// GetKeyMap returns all relevant keybindings for the current state
func (m *Model) GetKeyMap() keymap.KeyMap {
	keyMap := keymap.NewKeyMap(m.keyMap)
	keyMap.AddAction(keymap.SystemGroup, config.KeyActionQuit, "quit")
	if !m.screen.Capturing() {
		keyMap.AddAction(keymap.SystemGroup, config.KeyActionToggleHelp, "toggle help")
	}
	keyMap.Merge(m.screen.GetKeyMap())
	return keyMap
}
