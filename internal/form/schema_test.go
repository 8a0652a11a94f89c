package form

import (
	"path/filepath"
	"testing"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path     string
		wantName string
		wantCond *domain.Condition
		wantErr  bool
	}{
		{path: "type", wantName: "type"},
		{path: "type==agent/tools", wantName: "tools", wantCond: &domain.Condition{ParentPath: "type", RequiredValue: "agent"}},
		{path: "a==b==c/x", wantName: "x", wantCond: &domain.Condition{ParentPath: "a", RequiredValue: "b==c"}},
		{path: "plain/nested", wantName: "nested"},
		{path: "==agent/tools", wantErr: true},
		{path: "type==/tools", wantErr: true},
		{path: "type==agent/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			name, cond, err := ParsePath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantCond, cond)
		})
	}
}

func TestLoadSchema_Default(t *testing.T) {
	s := loadDefaultSchema(t)

	assert.Equal(t, "Assistant Configuration", s.Title())

	tf := s.TypeField()
	assert.Equal(t, domain.FieldKindEnum, tf.Kind)
	assert.Equal(t, []string{"agent", "chat_retrieval", "chatbot"}, tf.Options)

	tools, ok := s.Field(ToolsKey)
	require.True(t, ok)
	assert.Equal(t, domain.FieldKindTools, tools.Kind)

	interrupt, ok := s.Field("type==agent/interrupt_before_action")
	require.True(t, ok)
	assert.Equal(t, domain.FieldKindBoolean, interrupt.Kind)
	assert.Equal(t, []string{BoolYes, BoolNo}, interrupt.Options)

	defaults := s.Defaults()
	assert.Equal(t, "chatbot", defaults["type"], "configDefaults override field defaults")
	assert.Equal(t, "You are a helpful assistant.", defaults["type==agent/system_message"])
	assert.Equal(t, false, defaults["type==agent/interrupt_before_action"])

	defaults["type"] = "agent"
	assert.Equal(t, "chatbot", s.Defaults()["type"], "Defaults returns a copy")
}

func TestLoadSchema_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{`},
		{name: "missing configSchema", doc: `{"configDefaults": {}}`},
		{name: "missing configurable", doc: `{"configSchema": {"properties": {}}}`},
		{
			name: "enum without options",
			doc: `{"configSchema": {"properties": {"configurable": {"properties": {
				"type": {"type": "string", "enum": ["agent"]},
				"type==agent/llm": {"type": "string", "enum": []}
			}}}}}`,
		},
		{
			name: "conditional field with unsupported type",
			doc: `{"configSchema": {"properties": {"configurable": {"properties": {
				"type": {"type": "string", "enum": ["agent"]},
				"type==agent/temperature": {"type": "number"}
			}}}}}`,
		},
		{
			name: "broken condition",
			doc: `{"configSchema": {"properties": {"configurable": {"properties": {
				"type": {"type": "string", "enum": ["agent"]},
				"==agent/x": {"type": "string"}
			}}}}}`,
		},
		{
			name: "missing type field",
			doc: `{"configSchema": {"properties": {"configurable": {"properties": {
				"type==agent/x": {"type": "string"}
			}}}}}`,
		},
		{
			name: "type field not an enum",
			doc: `{"configSchema": {"properties": {"configurable": {"properties": {
				"type": {"type": "string"}
			}}}}}`,
		},
		{
			name: "field type is not a string",
			doc: `{"configSchema": {"properties": {"configurable": {"properties": {
				"type": {"type": 7}
			}}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSchema([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedSchema)
		})
	}
}

func TestLoadSchema_UnconditionalUnsupportedTypeIsTolerated(t *testing.T) {
	doc := `{"configSchema": {"properties": {"configurable": {"properties": {
		"type": {"type": "string", "enum": ["agent"]},
		"recursion_limit": {"type": "integer", "default": 25}
	}}}}}`

	s, err := LoadSchema([]byte(doc))
	require.NoError(t, err)

	_, ok := s.Field("recursion_limit")
	assert.True(t, ok)
	assert.Equal(t, float64(25), s.Defaults()["recursion_limit"])
}

func TestLoadSchemaFile(t *testing.T) {
	s, err := LoadSchemaFile("")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Fields())

	_, err = LoadSchemaFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
