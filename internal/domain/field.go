package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FieldKind is the closed set of field renderers.
type FieldKind int

const (
	FieldKindString FieldKind = iota
	FieldKindEnum
	FieldKindBoolean
	FieldKindTools
)

func (k FieldKind) String() string {
	switch k {
	case FieldKindString:
		return "string"
	case FieldKindEnum:
		return "enum"
	case FieldKindBoolean:
		return "boolean"
	case FieldKindTools:
		return "tools"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Condition gates a field on the value of another field.
type Condition struct {
	ParentPath    string
	RequiredValue string
}

// FieldDescriptor is one configurable input, parsed from the schema document.
type FieldDescriptor struct {
	// Path is the raw key, e.g. "type==agent/system_message".
	Path string
	// Name is the last path segment, e.g. "system_message".
	Name        string
	Condition   *Condition
	Title       string
	Description string
	Kind        FieldKind
	Options     []string
	Default     any
}

// Conditional reports whether the field carries a parent condition.
func (f FieldDescriptor) Conditional() bool {
	return f.Condition != nil
}

// ConfigTree maps field paths to values (string, bool or list).
type ConfigTree map[string]any

// Clone returns a shallow copy. Values are treated as immutable.
func (t ConfigTree) Clone() ConfigTree {
	out := make(ConfigTree, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// StringValue returns the value at path as a string, or "" when unset.
func (t ConfigTree) StringValue(path string) string {
	switch v := t[path].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Keys returns the tree's paths sorted.
func (t ConfigTree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type configEnvelope struct {
	Configurable map[string]any `json:"configurable"`
}

// MarshalConfig serializes the tree as {"configurable": {...}}.
func MarshalConfig(t ConfigTree) ([]byte, error) {
	return json.Marshal(configEnvelope{Configurable: t})
}

// UnmarshalConfig accepts either {"configurable": {...}} or a bare flat object.
func UnmarshalConfig(data []byte) (ConfigTree, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if inner, ok := raw["configurable"]; ok && len(raw) == 1 {
		var tree ConfigTree
		if err := json.Unmarshal(inner, &tree); err != nil {
			return nil, fmt.Errorf("failed to decode configurable: %w", err)
		}
		if tree == nil {
			tree = ConfigTree{}
		}
		return tree, nil
	}
	var tree ConfigTree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return tree, nil
}
