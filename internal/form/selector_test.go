package form

import (
	"testing"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolIDs(tools []domain.Tool) []string {
	ids := make([]string, len(tools))
	for i, t := range tools {
		ids[i] = t.ID
	}
	return ids
}

func TestToolSelector_AddWithoutConfigSelectsImmediately(t *testing.T) {
	s := NewToolSelector(nil)

	configuring, err := s.Add(catalogTool("ddg_search", "DuckDuckGo Search", nil))

	require.NoError(t, err)
	assert.False(t, configuring)
	assert.Equal(t, SelectorIdle, s.State())
	assert.Equal(t, []string{"ddg_search"}, toolIDs(s.Selected()))

	_, err = s.Add(catalogTool("ddg_search", "DuckDuckGo Search", nil))
	require.NoError(t, err)
	assert.Len(t, s.Selected(), 1, "ids stay unique")
}

func TestToolSelector_AddWithConfigEntersConfiguring(t *testing.T) {
	s := NewToolSelector(nil)

	configuring, err := s.Add(catalogTool("tavily", "Tavily Search", map[string]string{"api_key": "", "max_results": "5"}))
	require.NoError(t, err)
	require.True(t, configuring)
	assert.Equal(t, SelectorConfiguring, s.State())
	assert.Empty(t, s.Selected())

	pending, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, map[string]string{"api_key": "", "max_results": "5"}, pending.Config)
}

func TestToolSelector_CancelLeavesSelectionUnchanged(t *testing.T) {
	s := NewToolSelector([]domain.Tool{{ID: "a", Config: map[string]string{}}})

	_, err := s.Add(catalogTool("tavily", "Tavily Search", map[string]string{"api_key": ""}))
	require.NoError(t, err)
	require.NoError(t, s.SetConfig("api_key", "secret"))
	s.Cancel()

	assert.Equal(t, SelectorIdle, s.State())
	assert.Equal(t, []string{"a"}, toolIDs(s.Selected()))
}

func TestToolSelector_SaveAppendsOnce(t *testing.T) {
	s := NewToolSelector(nil)

	_, err := s.Add(catalogTool("tavily", "Tavily Search", map[string]string{"api_key": ""}))
	require.NoError(t, err)
	require.NoError(t, s.SetConfig("api_key", "secret"))
	require.NoError(t, s.Save())
	require.NoError(t, s.Save())

	selected := s.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "secret", selected[0].Config["api_key"])
	assert.Equal(t, SelectorIdle, s.State())

	_, err = s.Add(catalogTool("tavily", "Tavily Search", map[string]string{"api_key": ""}))
	require.NoError(t, err)
	require.NoError(t, s.Save())
	selected = s.Selected()
	require.Len(t, selected, 1, "re-adding a selected tool does not duplicate it")
	assert.Equal(t, "secret", selected[0].Config["api_key"])
}

func TestToolSelector_EditReplacesConfig(t *testing.T) {
	s := NewToolSelector([]domain.Tool{
		{ID: "a", Config: map[string]string{}},
		{ID: "tavily", Config: map[string]string{"api_key": "old"}},
	})

	require.NoError(t, s.Edit("tavily"))
	require.NoError(t, s.SetConfig("api_key", "new"))

	before := s.Selected()
	assert.Equal(t, "old", before[1].Config["api_key"], "edits stay pending until saved")

	require.NoError(t, s.Save())
	after := s.Selected()
	assert.Equal(t, []string{"a", "tavily"}, toolIDs(after))
	assert.Equal(t, "new", after[1].Config["api_key"])

	assert.ErrorIs(t, s.Edit("missing"), ErrToolNotFound)
}

func TestToolSelector_SetConfig(t *testing.T) {
	s := NewToolSelector(nil)
	assert.ErrorIs(t, s.SetConfig("k", "v"), ErrNotConfiguring)

	_, err := s.Add(catalogTool("tavily", "Tavily Search", map[string]string{"api_key": ""}))
	require.NoError(t, err)
	assert.Error(t, s.SetConfig("unknown", "v"))
}

func TestToolSelector_Remove(t *testing.T) {
	s := NewToolSelector([]domain.Tool{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	snapshot := s.Selected()

	removed, err := s.Remove("b")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"a", "c"}, toolIDs(s.Selected()))
	assert.Equal(t, []string{"a", "b", "c"}, toolIDs(snapshot))

	removed, err = s.Remove("b")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, []string{"a", "c"}, toolIDs(s.Selected()))
}

func TestToolSelector_InitialDuplicatesDropped(t *testing.T) {
	s := NewToolSelector([]domain.Tool{{ID: "a"}, {ID: "a"}, {ID: "b"}})
	assert.Equal(t, []string{"a", "b"}, toolIDs(s.Selected()))
}

func TestFilterCatalog(t *testing.T) {
	catalog := []domain.ToolSchema{
		catalogTool("retrieval", "Retrieval", nil),
		catalogTool("ddg_search", "DuckDuckGo Search", nil),
		catalogTool("wikipedia", "Wikipedia", nil),
	}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"Retrieval", "DuckDuckGo Search", "Wikipedia"}},
		{query: "retrie val", want: []string{"Retrieval"}},
		{query: "RETRIEVAL", want: []string{"Retrieval"}},
		{query: "gosearch", want: []string{"DuckDuckGo Search"}},
		{query: "i", want: []string{"Retrieval", "Wikipedia"}},
		{query: "nothing", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var names []string
			for _, ts := range FilterCatalog(catalog, tt.query) {
				names = append(names, ts.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestToolSelector_ReadOnlyGate(t *testing.T) {
	locked := true
	s := NewToolSelector([]domain.Tool{{ID: "a", Config: map[string]string{"k": ""}}})
	s.readOnly = func() bool { return locked }

	_, err := s.Add(catalogTool("b", "B", nil))
	assert.ErrorIs(t, err, ErrReadOnly)
	_, err = s.Remove("a")
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, s.Edit("a"), ErrReadOnly)
	assert.ErrorIs(t, s.Ensure(domain.Tool{ID: "c"}), ErrReadOnly)
	assert.Equal(t, []string{"a"}, toolIDs(s.Selected()))

	locked = false
	require.NoError(t, s.Edit("a"))
	locked = true
	assert.ErrorIs(t, s.SetConfig("k", "v"), ErrReadOnly)
	assert.ErrorIs(t, s.Save(), ErrReadOnly)
	s.Cancel()
	assert.Equal(t, SelectorIdle, s.State())
}
