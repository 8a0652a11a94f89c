package domain

import "sort"

// Tool is a capability selected into an assistant, with its own string config.
type Tool struct {
	ID          string            `json:"id" yaml:"id"`
	Type        string            `json:"type" yaml:"type"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Config      map[string]string `json:"config" yaml:"config"`
}

// ConfigKeys returns the tool's config keys in display order.
func (t Tool) ConfigKeys() []string {
	keys := make([]string, 0, len(t.Config))
	for k := range t.Config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy whose config map can be mutated independently.
func (t Tool) Clone() Tool {
	cfg := make(map[string]string, len(t.Config))
	for k, v := range t.Config {
		cfg[k] = v
	}
	t.Config = cfg
	return t
}

// ToolSchema describes a tool offered by the catalog.
type ToolSchema struct {
	ID          string           `json:"id" yaml:"id" jsonschema:"required,minLength=1"`
	Type        string           `json:"type" yaml:"type" jsonschema:"required,minLength=1"`
	Name        string           `json:"name" yaml:"name" jsonschema:"required,minLength=1"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Config      ToolConfigSchema `json:"config" yaml:"config"`
	// Source names the catalog source the tool was loaded from. Not part of the file format.
	Source string `json:"-" yaml:"-"`
}

type ToolConfigSchema struct {
	Properties map[string]ToolConfigProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type ToolConfigProperty struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty" jsonschema:"enum=string"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
}

// PropertyNames returns the config property names in display order.
func (s ToolSchema) PropertyNames() []string {
	names := make([]string, 0, len(s.Config.Properties))
	for name := range s.Config.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewTool initializes a Tool from its schema, using each property's default.
func (s ToolSchema) NewTool() Tool {
	cfg := make(map[string]string, len(s.Config.Properties))
	for name, prop := range s.Config.Properties {
		cfg[name] = prop.Default
	}
	return Tool{
		ID:          s.ID,
		Type:        s.Type,
		Name:        s.Name,
		Description: s.Description,
		Config:      cfg,
	}
}
