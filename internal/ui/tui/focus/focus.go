// Package focus tracks which row of a screen receives key input.
package focus

// Manager cycles focus through an ordered list of component ids
type Manager struct {
	order        []string
	currentFocus string
}

// New creates a new focus manager
func New(order ...string) *Manager {
	m := &Manager{}
	m.SetOrder(order)
	return m
}

// SetOrder replaces the focus ring. The current focus is kept when it is still
// present, otherwise the first id is focused.
func (m *Manager) SetOrder(order []string) {
	m.order = append([]string(nil), order...)
	if m.indexOf(m.currentFocus) >= 0 {
		return
	}
	m.currentFocus = ""
	if len(m.order) > 0 {
		m.currentFocus = m.order[0]
	}
}

// SetFocus focuses a specific component
func (m *Manager) SetFocus(id string) bool {
	if m.indexOf(id) < 0 {
		return false
	}
	m.currentFocus = id
	return true
}

func (m *Manager) Next() string { return m.move(1) }
func (m *Manager) Prev() string { return m.move(-1) }

func (m *Manager) move(delta int) string {
	if len(m.order) == 0 {
		return ""
	}
	i := m.indexOf(m.currentFocus)
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + len(m.order)) % len(m.order)
	}
	m.currentFocus = m.order[i]
	return m.currentFocus
}

// GetCurrentFocus returns the ID of the currently focused component
func (m *Manager) GetCurrentFocus() string {
	return m.currentFocus
}

// Order returns a copy of the focus ring.
func (m *Manager) Order() []string {
	return append([]string(nil), m.order...)
}

func (m *Manager) IsFocused(id string) bool {
	return id != "" && m.currentFocus == id
}

func (m *Manager) indexOf(id string) int {
	for i, o := range m.order {
		if o == id {
			return i
		}
	}
	return -1
}
