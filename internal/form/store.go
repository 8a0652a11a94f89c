package form

import (
	"github.com/isaacphi/gptsmith/internal/domain"
)

const (
	BoolYes = "Yes"
	BoolNo  = "No"
)

// Store holds the current config tree. Every write replaces the tree, so trees
// handed out by Snapshot never change underneath the caller.
type Store struct {
	tree      domain.ConfigTree
	listeners []func(path string, tree domain.ConfigTree)
}

// NewStore seeds a store from defaults.
func NewStore(defaults domain.ConfigTree) *Store {
	s := &Store{}
	s.Reset(defaults)
	return s
}

// Get returns the value at path.
func (s *Store) Get(path string) (any, bool) {
	v, ok := s.tree[path]
	return v, ok
}

// Set replaces the value at path and notifies listeners.
func (s *Store) Set(path string, value any) {
	next := s.tree.Clone()
	next[path] = value
	s.tree = next
	s.notify(path)
}

// SetChoice writes a choice made in a single-option control. Boolean fields are
// stored as bool, everything else as the chosen string.
func (s *Store) SetChoice(field domain.FieldDescriptor, choice string) {
	if field.Kind == domain.FieldKindBoolean {
		s.Set(field.Path, choice == BoolYes)
		return
	}
	s.Set(field.Path, choice)
}

// Choice returns the option currently selected for field.
func (s *Store) Choice(field domain.FieldDescriptor) string {
	if field.Kind == domain.FieldKindBoolean {
		if b, _ := s.tree[field.Path].(bool); b {
			return BoolYes
		}
		return BoolNo
	}
	return s.tree.StringValue(field.Path)
}

// Reset replaces the whole tree, e.g. when an existing config is loaded.
func (s *Store) Reset(tree domain.ConfigTree) {
	if tree == nil {
		tree = domain.ConfigTree{}
	}
	s.tree = tree.Clone()
	s.notify("")
}

// Seed fills paths missing from the tree with defaults. Values already present are
// kept, including explicit zero values.
func (s *Store) Seed(defaults domain.ConfigTree) {
	var next domain.ConfigTree
	for path, v := range defaults {
		if _, ok := s.tree[path]; ok {
			continue
		}
		if next == nil {
			next = s.tree.Clone()
		}
		next[path] = v
	}
	if next == nil {
		return
	}
	s.tree = next
	s.notify("")
}

// Snapshot returns the current tree. Callers must not mutate it.
func (s *Store) Snapshot() domain.ConfigTree {
	return s.tree
}

// OnChange registers fn to run after every write. path is "" after Reset.
func (s *Store) OnChange(fn func(path string, tree domain.ConfigTree)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify(path string) {
	for _, fn := range s.listeners {
		fn(path, s.tree)
	}
}
