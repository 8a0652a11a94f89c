package form

import (
	"testing"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/stretchr/testify/require"
)

func loadDefaultSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := LoadSchema(DefaultSchema)
	require.NoError(t, err)
	return s
}

func paths(fields []domain.FieldDescriptor) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Path
	}
	return out
}

func catalogTool(id, name string, props map[string]string) domain.ToolSchema {
	ts := domain.ToolSchema{ID: id, Type: id, Name: name}
	if len(props) > 0 {
		ts.Config.Properties = make(map[string]domain.ToolConfigProperty, len(props))
		for k, def := range props {
			ts.Config.Properties[k] = domain.ToolConfigProperty{Type: "string", Default: def}
		}
	}
	return ts
}
