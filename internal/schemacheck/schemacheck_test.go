package schemacheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID    string            `json:"id" jsonschema:"required,minLength=1"`
	Count int               `json:"count,omitempty"`
	Tags  map[string]string `json:"tags,omitempty"`
}

func TestValidateJSON(t *testing.T) {
	v, err := New("widget", &widget{})
	require.NoError(t, err)

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "valid", doc: `{"id":"a","count":2}`},
		{name: "extra keys allowed", doc: `{"id":"a","other":true}`},
		{name: "missing id", doc: `{"count":2}`, wantErr: true},
		{name: "empty id", doc: `{"id":""}`, wantErr: true},
		{name: "wrong type", doc: `{"id":"a","count":"two"}`, wantErr: true},
		{name: "not json", doc: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateYAML(t *testing.T) {
	v := MustNew("widget", &widget{})

	assert.NoError(t, v.ValidateYAML([]byte("id: a\ncount: 3\ntags:\n  k: v\n")))
	assert.Error(t, v.ValidateYAML([]byte("count: 3\n")))
	assert.Error(t, v.ValidateYAML([]byte("tags:\n  k: [1\n")))
}
