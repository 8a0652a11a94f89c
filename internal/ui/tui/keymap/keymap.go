package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/gptsmith/internal/config"
)

const (
	SystemGroup = iota
	NavigationGroup
	ActionGroup
)

var groupOrder = []int{SystemGroup, NavigationGroup, ActionGroup}

// KeyMap represents a set of keybindings resolved from the configured key map
type KeyMap struct {
	Groups map[int][]key.Binding
	config *config.KeyMap
}

// NewKeyMap creates a new empty keymap
func NewKeyMap(cfg *config.KeyMap) KeyMap {
	return KeyMap{
		Groups: make(map[int][]key.Binding),
		config: cfg,
	}
}

// Binding builds the binding for a configured action.
func Binding(cfg *config.KeyMap, action, help string) key.Binding {
	keys := cfg.GetKeys(action)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), help),
	)
}

// Matches reports whether msg triggers action.
func Matches(msg tea.KeyMsg, cfg *config.KeyMap, action string) bool {
	return key.Matches(msg, Binding(cfg, action, ""))
}

// AddAction adds the binding for a configured action
func (k *KeyMap) AddAction(group int, action, help string) {
	k.Add(group, Binding(k.config, action, help))
}

// Add adds a key binding to the keymap
func (k *KeyMap) Add(group int, binding key.Binding) {
	k.Groups[group] = append(k.Groups[group], binding)
}

// Merge combines two keymaps
func (k *KeyMap) Merge(other KeyMap) {
	for _, group := range groupOrder {
		for _, binding := range other.Groups[group] {
			k.Add(group, binding)
		}
	}
}

// ShortHelp returns keybindings for the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	var bindings []key.Binding
	bindings = append(bindings, k.Groups[SystemGroup]...)
	bindings = append(bindings, k.Groups[ActionGroup]...)
	return bindings
}

// FullHelp returns one column per non-empty group
func (k KeyMap) FullHelp() [][]key.Binding {
	var result [][]key.Binding
	for _, group := range groupOrder {
		if bindings := k.Groups[group]; len(bindings) > 0 {
			result = append(result, bindings)
		}
	}
	return result
}
