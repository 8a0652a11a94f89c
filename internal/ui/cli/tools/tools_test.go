package tools

import (
	"bytes"
	"testing"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTools(t *testing.T) {
	tools := []domain.ToolSchema{
		{ID: "ddg_search", Type: "ddg_search", Name: "DuckDuckGo Search", Description: "Search the web."},
		{
			ID:   "action_server_by_sema4ai",
			Type: "action_server_by_sema4ai",
			Name: "Action Server by Sema4.ai",
			Config: domain.ToolConfigSchema{Properties: map[string]domain.ToolConfigProperty{
				"url":     {Type: "string"},
				"api_key": {Type: "string"},
			}},
		},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printTools(&buf, tools, false))
		out := buf.String()
		assert.Contains(t, out, "DuckDuckGo Search")
		assert.Contains(t, out, "api_key, url")
		assert.NotContains(t, out, "Search the web.")
	})

	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printTools(&buf, tools, true))
		assert.Contains(t, buf.String(), "Search the web.")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printTools(&buf, nil, false))
		assert.Equal(t, "No tools found\n", buf.String())
	})
}
