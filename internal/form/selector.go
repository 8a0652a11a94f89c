package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/isaacphi/gptsmith/internal/domain"
)

// SelectorState is the tool selector's state.
type SelectorState int

const (
	SelectorIdle SelectorState = iota
	SelectorConfiguring
)

var (
	ErrNotConfiguring = errors.New("no tool is being configured")
	ErrToolNotFound   = errors.New("tool not selected")
)

// ToolSelector tracks the selected tools and the tool whose config is being edited.
type ToolSelector struct {
	selected []domain.Tool
	pending  *domain.Tool
	// editing is set when pending is a copy of an already-selected tool.
	editing bool
	// readOnly, when set, reports whether the owning form currently refuses edits.
	readOnly func() bool
}

// NewToolSelector starts with the given tools selected, dropping duplicate ids.
func NewToolSelector(initial []domain.Tool) *ToolSelector {
	s := &ToolSelector{}
	for _, t := range initial {
		if !s.Has(t.ID) {
			s.selected = append(s.selected, t.Clone())
		}
	}
	return s
}

func (s *ToolSelector) writable() error {
	if s.readOnly != nil && s.readOnly() {
		return ErrReadOnly
	}
	return nil
}

func (s *ToolSelector) State() SelectorState {
	if s.pending != nil {
		return SelectorConfiguring
	}
	return SelectorIdle
}

// Pending returns the tool being configured.
func (s *ToolSelector) Pending() (domain.Tool, bool) {
	if s.pending == nil {
		return domain.Tool{}, false
	}
	return *s.pending, true
}

// Selected returns a copy of the selected tools in order.
func (s *ToolSelector) Selected() []domain.Tool {
	out := make([]domain.Tool, len(s.selected))
	for i, t := range s.selected {
		out[i] = t.Clone()
	}
	return out
}

func (s *ToolSelector) Has(id string) bool {
	return s.index(id) >= 0
}

func (s *ToolSelector) index(id string) int {
	for i, t := range s.selected {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add starts adding a catalog tool. Tools without config properties are selected
// immediately; otherwise the selector moves to Configuring. It reports whether the
// selector is now configuring.
func (s *ToolSelector) Add(schema domain.ToolSchema) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	tool := schema.NewTool()
	if len(tool.Config) == 0 {
		if !s.Has(tool.ID) {
			s.selected = append(s.selected, tool)
		}
		return false, nil
	}
	s.pending = &tool
	s.editing = false
	return true, nil
}

// Ensure selects tool with its current config unless a tool with the same id is
// already selected. It never enters Configuring.
func (s *ToolSelector) Ensure(tool domain.Tool) error {
	if err := s.writable(); err != nil {
		return err
	}
	if !s.Has(tool.ID) {
		s.selected = append(s.selected, tool.Clone())
	}
	return nil
}

// Edit opens the config of a selected tool.
func (s *ToolSelector) Edit(id string) error {
	if err := s.writable(); err != nil {
		return err
	}
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	tool := s.selected[i].Clone()
	s.pending = &tool
	s.editing = true
	return nil
}

// SetConfig updates one config key of the pending tool.
func (s *ToolSelector) SetConfig(key, value string) error {
	if err := s.writable(); err != nil {
		return err
	}
	if s.pending == nil {
		return ErrNotConfiguring
	}
	if _, ok := s.pending.Config[key]; !ok {
		return fmt.Errorf("tool %s has no config key %q", s.pending.ID, key)
	}
	next := s.pending.Clone()
	next.Config[key] = value
	s.pending = &next
	return nil
}

// Save commits the pending tool and returns to Idle. A new tool is appended unless
// its id is already selected; an edited tool has its config replaced in place.
// Saving while Idle does nothing.
func (s *ToolSelector) Save() error {
	if err := s.writable(); err != nil {
		return err
	}
	if s.pending == nil {
		return nil
	}
	tool := *s.pending
	i := s.index(tool.ID)
	switch {
	case i < 0:
		s.selected = append(s.selected, tool)
	case s.editing:
		s.selected[i].Config = tool.Config
	}
	s.pending = nil
	s.editing = false
	return nil
}

// Cancel discards the pending tool. It is allowed while read-only because it never
// changes the selection.
func (s *ToolSelector) Cancel() {
	s.pending = nil
	s.editing = false
}

// Remove drops the tool with id. It reports whether a tool was removed.
func (s *ToolSelector) Remove(id string) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
	return true, nil
}

func normalizeQuery(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// FilterCatalog keeps the tools whose name contains query, ignoring case and whitespace.
func FilterCatalog(tools []domain.ToolSchema, query string) []domain.ToolSchema {
	if query == "" {
		return tools
	}
	q := normalizeQuery(query)
	var out []domain.ToolSchema
	for _, t := range tools {
		if strings.Contains(normalizeQuery(t.Name), q) {
			out = append(out, t)
		}
	}
	return out
}
