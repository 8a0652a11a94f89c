package fields

import (
	"bytes"
	"testing"

	"github.com/isaacphi/gptsmith/internal/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newForm(t *testing.T) *form.Form {
	t.Helper()
	return newFormWith(t, form.Options{})
}

func newFormWith(t *testing.T, opts form.Options) *form.Form {
	t.Helper()
	schema, err := form.LoadSchema(form.DefaultSchema)
	require.NoError(t, err)
	f, err := form.New(schema, opts)
	require.NoError(t, err)
	return f
}

func TestApplyAssignments(t *testing.T) {
	f := newForm(t)

	require.NoError(t, applyAssignments(f, []string{
		"type=agent",
		"type==agent/interrupt_before_action=Yes",
		"type==agent/agent_type=GPT 4",
	}))

	tree := f.Tree()
	assert.Equal(t, form.TypeAgent, tree[form.TypeKey])
	assert.Equal(t, true, tree["type==agent/interrupt_before_action"])
	assert.Equal(t, "GPT 4", tree["type==agent/agent_type"])
}

func TestApplyAssignments_ValueWithEquals(t *testing.T) {
	f := newForm(t)

	require.NoError(t, applyAssignments(f, []string{
		"type=agent",
		"type==agent/system_message=a=b",
	}))

	assert.Equal(t, "a=b", f.Tree()["type==agent/system_message"])
}

func TestApplyAssignments_FileFields(t *testing.T) {
	assign := []string{"type=agent", "type==agent/retrieval_description=Search the handbook"}

	err := applyAssignments(newForm(t), assign)
	assert.ErrorIs(t, err, form.ErrFieldHidden)

	f := newFormWith(t, form.Options{AssumeFiles: true})
	require.NoError(t, applyAssignments(f, assign))
	assert.Equal(t, "Search the handbook", f.Tree()["type==agent/retrieval_description"])
}

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		in          string
		path, value string
		ok          bool
	}{
		{in: "type=agent", path: "type", value: "agent", ok: true},
		{in: "type=a==b", path: "type", value: "a==b", ok: true},
		{in: "type==agent/system_message=x=y", path: "type==agent/system_message", value: "x=y", ok: true},
		{in: "type==agent/system_message=", path: "type==agent/system_message", value: "", ok: true},
		{in: "type", ok: false},
		{in: "=x", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, value, ok := splitAssignment(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestApplyAssignments_Errors(t *testing.T) {
	tests := []struct {
		name   string
		assign string
		want   error
	}{
		{name: "no value", assign: "type", want: nil},
		{name: "no path", assign: "=agent", want: nil},
		{name: "condition without value", assign: "type==agent/system_message", want: nil},
		{name: "hidden field", assign: "type==agent/agent_type=GPT 4", want: form.ErrFieldHidden},
		{name: "bad choice", assign: "type==chatbot/llm_type=GPT 9", want: form.ErrInvalidValue},
		{name: "bad type", assign: "type=robot", want: form.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyAssignments(newForm(t), []string{tt.assign})
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestPrintFields(t *testing.T) {
	f := newForm(t)
	require.NoError(t, applyAssignments(f, []string{"type=agent"}))

	var buf bytes.Buffer
	require.NoError(t, printFields(&buf, f))
	out := buf.String()
	assert.Contains(t, out, "type==agent/system_message")
	assert.Contains(t, out, "type==agent/tools")
	assert.Contains(t, out, "No")
	assert.NotContains(t, out, "retrieval_description")
	assert.NotContains(t, out, "thread_id")

	buf.Reset()
	f = newFormWith(t, form.Options{AssumeFiles: true})
	require.NoError(t, applyAssignments(f, []string{"type=agent"}))
	require.NoError(t, printFields(&buf, f))
	assert.Contains(t, buf.String(), "type==agent/retrieval_description")
}
