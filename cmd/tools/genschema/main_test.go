package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	cfg, err := generate("config")
	require.NoError(t, err)
	assert.Equal(t, "gptsmith Configuration Schema", cfg.Title)

	tool, err := generate("tool")
	require.NoError(t, err)
	require.NotNil(t, tool.Properties)
	_, ok := tool.Properties.Get("id")
	assert.True(t, ok)

	_, err = generate("thread")
	assert.Error(t, err)
}
