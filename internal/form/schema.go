package form

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/schemacheck"
)

const (
	// TypeKey is the top-level field selecting the bot type.
	TypeKey = "type"
	// ToolsKey is where the selected tools are stored on submit.
	ToolsKey = "type==agent/tools"

	conditionSep = "=="
	segmentSep   = "/"
)

// schemaDocument is the on-disk shape of a schema source. It doubles as the prototype
// for the meta-schema every document is validated against before it is parsed.
type schemaDocument struct {
	ConfigSchema   configSchema   `json:"configSchema" jsonschema:"required"`
	ConfigDefaults map[string]any `json:"configDefaults,omitempty"`
}

type configSchema struct {
	Title      string           `json:"title,omitempty"`
	Properties configSchemaRoot `json:"properties" jsonschema:"required"`
}

type configSchemaRoot struct {
	Configurable configurableSchema `json:"configurable" jsonschema:"required"`
}

type configurableSchema struct {
	Properties map[string]fieldSchema `json:"properties" jsonschema:"required"`
}

type fieldSchema struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
}

var documentValidator = schemacheck.MustNew("config schema document", &schemaDocument{})

// Schema is a parsed, validated schema document. It is immutable.
type Schema struct {
	title    string
	fields   []domain.FieldDescriptor
	byPath   map[string]int
	defaults domain.ConfigTree
}

// LoadSchema parses a schema document. Documents that do not match the expected shape,
// or whose fields cannot be rendered, are rejected.
func LoadSchema(data []byte) (*Schema, error) {
	if err := documentValidator.ValidateJSON(data); err != nil {
		return nil, &domain.SchemaError{Reason: err.Error()}
	}

	var doc schemaDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.SchemaError{Reason: err.Error()}
	}

	s := &Schema{
		title:    doc.ConfigSchema.Title,
		byPath:   make(map[string]int),
		defaults: domain.ConfigTree{},
	}

	paths := make([]string, 0, len(doc.ConfigSchema.Properties.Configurable.Properties))
	for path := range doc.ConfigSchema.Properties.Configurable.Properties {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		field, err := parseField(path, doc.ConfigSchema.Properties.Configurable.Properties[path])
		if err != nil {
			return nil, err
		}
		if field.Default != nil {
			s.defaults[path] = field.Default
		}
		s.byPath[path] = len(s.fields)
		s.fields = append(s.fields, field)
	}

	if _, ok := s.byPath[TypeKey]; !ok {
		return nil, &domain.SchemaError{Path: TypeKey, Reason: "bot type field is missing"}
	}

	// Explicit defaults win over per-field defaults.
	if len(doc.ConfigDefaults) > 0 {
		raw, err := json.Marshal(doc.ConfigDefaults)
		if err != nil {
			return nil, &domain.SchemaError{Reason: err.Error()}
		}
		defaults, err := domain.UnmarshalConfig(raw)
		if err != nil {
			return nil, &domain.SchemaError{Reason: err.Error()}
		}
		for k, v := range defaults {
			s.defaults[k] = v
		}
	}

	return s, nil
}

// ParsePath splits "parent==value/name" into its condition and field name. Paths
// without "==" in their first segment have no condition.
func ParsePath(path string) (name string, cond *domain.Condition, err error) {
	segments := strings.Split(path, segmentSep)
	name = segments[len(segments)-1]
	if name == "" {
		return "", nil, fmt.Errorf("empty field name")
	}

	head := segments[0]
	if len(segments) == 1 || !strings.Contains(head, conditionSep) {
		return name, nil, nil
	}

	parent, value, _ := strings.Cut(head, conditionSep)
	if parent == "" || value == "" {
		return "", nil, fmt.Errorf("condition %q needs both a parent and a value", head)
	}
	return name, &domain.Condition{ParentPath: parent, RequiredValue: value}, nil
}

func parseField(path string, fs fieldSchema) (domain.FieldDescriptor, error) {
	name, cond, err := ParsePath(path)
	if err != nil {
		return domain.FieldDescriptor{}, &domain.SchemaError{Path: path, Reason: err.Error()}
	}

	field := domain.FieldDescriptor{
		Path:        path,
		Name:        name,
		Condition:   cond,
		Title:       fs.Title,
		Description: fs.Description,
		Default:     fs.Default,
	}
	if field.Title == "" {
		field.Title = name
	}

	kind, ok := fieldKind(path, fs)
	if !ok {
		// Unconditional fields are never rendered, so an unsupported type there is harmless.
		if cond == nil && path != TypeKey {
			return field, nil
		}
		return domain.FieldDescriptor{}, &domain.SchemaError{Path: path, Reason: fmt.Sprintf("unsupported type %q", fs.Type)}
	}
	field.Kind = kind

	switch kind {
	case domain.FieldKindEnum:
		if len(fs.Enum) == 0 {
			return domain.FieldDescriptor{}, &domain.SchemaError{Path: path, Reason: "enum field has no options"}
		}
		field.Options = append([]string(nil), fs.Enum...)
		sort.Strings(field.Options)
	case domain.FieldKindBoolean:
		field.Options = []string{BoolYes, BoolNo}
	}

	if path == TypeKey && kind != domain.FieldKindEnum {
		return domain.FieldDescriptor{}, &domain.SchemaError{Path: path, Reason: "bot type must be an enum"}
	}
	return field, nil
}

func fieldKind(path string, fs fieldSchema) (domain.FieldKind, bool) {
	switch {
	case path == ToolsKey:
		return domain.FieldKindTools, true
	case fs.Type == "string" && fs.Enum != nil:
		return domain.FieldKindEnum, true
	case fs.Type == "string":
		return domain.FieldKindString, true
	case fs.Type == "boolean":
		return domain.FieldKindBoolean, true
	default:
		return 0, false
	}
}

// Title is the schema's display title.
func (s *Schema) Title() string { return s.title }

// Fields returns every descriptor, sorted by path.
func (s *Schema) Fields() []domain.FieldDescriptor {
	return append([]domain.FieldDescriptor(nil), s.fields...)
}

// Field looks up a descriptor by path.
func (s *Schema) Field(path string) (domain.FieldDescriptor, bool) {
	i, ok := s.byPath[path]
	if !ok {
		return domain.FieldDescriptor{}, false
	}
	return s.fields[i], true
}

// TypeField returns the bot type descriptor.
func (s *Schema) TypeField() domain.FieldDescriptor {
	f, _ := s.Field(TypeKey)
	return f
}

// Defaults returns a fresh copy of the default config tree.
func (s *Schema) Defaults() domain.ConfigTree {
	return s.defaults.Clone()
}
