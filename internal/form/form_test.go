package form

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm(t *testing.T, opts Options) *Form {
	t.Helper()
	f, err := New(loadDefaultSchema(t), opts)
	require.NoError(t, err)
	return f
}

func TestForm_SelectingAgentRevealsTools(t *testing.T) {
	f := newTestForm(t, Options{})
	assert.Equal(t, TypeChatbot, f.BotType().ID)
	assert.NotContains(t, paths(f.Fields()), ToolsKey)

	require.NoError(t, f.SetType(TypeAgent))

	fields := paths(f.Fields())
	assert.Contains(t, fields, ToolsKey)
	assert.Contains(t, fields, "type==agent/agent_type")
	assert.NotContains(t, fields, "type==chatbot/system_message")
	assert.NotContains(t, fields, "type==chatbot/llm_type")
}

func TestForm_SetField(t *testing.T) {
	f := newTestForm(t, Options{Existing: domain.ConfigTree{"type": "agent"}})

	require.NoError(t, f.SetField("type==agent/system_message", "Be terse."))
	require.NoError(t, f.SetField("type==agent/interrupt_before_action", BoolYes))
	require.NoError(t, f.SetField("type==agent/agent_type", "GPT 4"))

	tree := f.Tree()
	assert.Equal(t, "Be terse.", tree["type==agent/system_message"])
	assert.Equal(t, true, tree["type==agent/interrupt_before_action"])
	assert.Equal(t, "GPT 4", tree["type==agent/agent_type"])

	assert.ErrorIs(t, f.SetField("type==agent/agent_type", "GPT 9"), ErrInvalidValue)
	assert.ErrorIs(t, f.SetField("type==agent/interrupt_before_action", "maybe"), ErrInvalidValue)
	assert.ErrorIs(t, f.SetField("type==chatbot/system_message", "x"), ErrFieldHidden)
	assert.ErrorIs(t, f.SetField("thread_id", "x"), ErrFieldHidden)
	assert.ErrorIs(t, f.SetField(ToolsKey, []string{}), ErrInvalidValue)
	assert.ErrorIs(t, f.SetType("robot"), ErrInvalidValue)
}

func TestForm_SubmitMergesToolsAndClearsInFlight(t *testing.T) {
	f := newTestForm(t, Options{Existing: domain.ConfigTree{"type": "agent"}})
	_, err := f.Tools().Add(catalogTool("ddg_search", "DuckDuckGo Search", nil))
	require.NoError(t, err)
	require.NoError(t, f.SetPublic(true))

	var got Submission
	err = f.Submit(context.Background(), "  Research bot ", func(_ context.Context, name string, tree domain.ConfigTree, files []Attachment, public bool) error {
		assert.True(t, f.InFlight())
		assert.True(t, f.ReadOnly())
		got = Submission{Name: name, Tree: tree, Files: files, Public: public}
		return nil
	})
	require.NoError(t, err)

	assert.False(t, f.InFlight())
	assert.Equal(t, "Research bot", got.Name)
	assert.True(t, got.Public)
	tools, ok := got.Tree[ToolsKey].([]domain.Tool)
	require.True(t, ok)
	assert.Equal(t, []string{"ddg_search"}, toolIDs(tools))
	_, inStore := f.Tree()[ToolsKey].([]domain.Tool)
	assert.False(t, inStore, "submission works on a copy of the tree")
}

func TestForm_SubmitFailureClearsInFlight(t *testing.T) {
	f := newTestForm(t, Options{})
	boom := errors.New("boom")

	err := f.Submit(context.Background(), "bot", func(context.Context, string, domain.ConfigTree, []Attachment, bool) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, f.InFlight())
	assert.Equal(t, TypeChatbot, f.Tree()["type"], "form keeps its values for a retry")
}

func TestForm_BeginSubmit(t *testing.T) {
	f := newTestForm(t, Options{})

	_, err := f.BeginSubmit("   ")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.False(t, f.InFlight())

	_, err = f.BeginSubmit(strings.Repeat("a", 200))
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = f.BeginSubmit("bot")
	require.NoError(t, err)
	_, err = f.BeginSubmit("bot")
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.ErrorIs(t, f.SetType(TypeAgent), ErrReadOnly)

	assert.NoError(t, f.FinishSubmit(nil))
	assert.NoError(t, f.SetType(TypeAgent))
}

func TestForm_ViewIsReadOnly(t *testing.T) {
	f := newTestForm(t, Options{
		View: true,
		Existing: domain.ConfigTree{
			"type": "agent",
			ToolsKey: []any{
				map[string]any{"id": "ddg_search", "name": "DuckDuckGo Search"},
				map[string]any{"id": "retrieval"},
			},
		},
	})

	assert.True(t, f.ReadOnly())
	assert.False(t, f.AcceptsFiles())
	assert.Equal(t, []string{"ddg_search", "retrieval"}, toolIDs(f.Tools().Selected()))
	assert.ErrorIs(t, f.SetType(TypeChatbot), ErrReadOnly)
	assert.ErrorIs(t, f.SetPublic(true), ErrReadOnly)
	_, err := f.BeginSubmit("bot")
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestForm_ExistingTreeIsNotSeeded(t *testing.T) {
	existing := domain.ConfigTree{"type": TypeAgent, "type==agent/system_message": "Be terse."}

	f := newTestForm(t, Options{Existing: existing})

	assert.Equal(t, existing, f.Tree())
	assert.NotContains(t, f.Tree(), "type==agent/agent_type")
}

func TestForm_ToolSelectorFollowsReadOnly(t *testing.T) {
	t.Run("view mode", func(t *testing.T) {
		f := newTestForm(t, Options{
			View:     true,
			Existing: domain.ConfigTree{"type": TypeAgent, ToolsKey: []any{map[string]any{"id": "ddg_search"}}},
		})

		_, err := f.Tools().Remove("ddg_search")
		assert.ErrorIs(t, err, ErrReadOnly)
		_, err = f.Tools().Add(catalogTool("wikipedia", "Wikipedia", nil))
		assert.ErrorIs(t, err, ErrReadOnly)
		assert.ErrorIs(t, f.Tools().Edit("ddg_search"), ErrReadOnly)
		assert.Equal(t, []string{"ddg_search"}, toolIDs(f.Tools().Selected()))
	})

	t.Run("while a save is in flight", func(t *testing.T) {
		f := newTestForm(t, Options{Existing: domain.ConfigTree{"type": TypeAgent}})
		_, err := f.BeginSubmit("bot")
		require.NoError(t, err)

		_, err = f.Tools().Add(catalogTool("ddg_search", "DuckDuckGo Search", nil))
		assert.ErrorIs(t, err, ErrReadOnly)
		assert.Empty(t, f.Tools().Selected())

		require.NoError(t, f.FinishSubmit(nil))
		_, err = f.Tools().Add(catalogTool("ddg_search", "DuckDuckGo Search", nil))
		require.NoError(t, err)
		assert.Equal(t, []string{"ddg_search"}, toolIDs(f.Tools().Selected()))
	})
}

func TestForm_StoredToolsMustBeAList(t *testing.T) {
	_, err := New(loadDefaultSchema(t), Options{Existing: domain.ConfigTree{ToolsKey: "nope"}})
	assert.Error(t, err)
}

func TestForm_AttachFiles(t *testing.T) {
	file := Attachment{Name: "a.pdf", Size: 10, LastModified: time.UnixMilli(1)}

	t.Run("chatbot rejects files", func(t *testing.T) {
		f := newTestForm(t, Options{})
		assert.ErrorIs(t, f.AttachFiles(file), ErrFilesNotAccepted)
	})

	t.Run("rag keeps tools untouched", func(t *testing.T) {
		f := newTestForm(t, Options{Existing: domain.ConfigTree{"type": TypeChatRetrieval}})
		require.NoError(t, f.AttachFiles(file))
		assert.Len(t, f.Files(), 1)
		assert.Empty(t, f.Tools().Selected())
	})

	t.Run("agent selects retrieval and shows its description", func(t *testing.T) {
		f := newTestForm(t, Options{Existing: domain.ConfigTree{"type": TypeAgent}})
		f.SetCatalog([]domain.ToolSchema{catalogTool(RetrievalToolID, "Retrieval", nil)}, nil)
		assert.NotContains(t, paths(f.Fields()), "type==agent/retrieval_description")

		require.NoError(t, f.AttachFiles(file))
		require.NoError(t, f.AttachFiles(file))

		assert.Len(t, f.Files(), 1)
		assert.Equal(t, []string{RetrievalToolID}, toolIDs(f.Tools().Selected()))
		assert.Contains(t, paths(f.Fields()), "type==agent/retrieval_description")

		require.NoError(t, f.RemoveFile(file.Key()))
		assert.Empty(t, f.Files())
	})
}

func TestForm_Catalog(t *testing.T) {
	f := newTestForm(t, Options{})
	_, loading, _ := f.Catalog()
	assert.True(t, loading)

	f.SetCatalog(nil, errors.New("offline"))
	tools, loading, err := f.Catalog()
	assert.False(t, loading)
	assert.Empty(t, tools)
	assert.Error(t, err)
}
