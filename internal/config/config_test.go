package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Log.LogLevel)
	assert.Equal(t, "http://localhost:8100/", cfg.PublicBaseURL)
	assert.Equal(t, filepath.Join("/data", "gptsmith", "gptsmith.db"), cfg.DBPath)
	assert.Equal(t, []string{"ctrl+s"}, cfg.KeyMap.GetKeys(KeyActionSubmit))
	assert.Empty(t, cfg.MCPServers)
}

func TestLoad_MergesGlobalThenLocal(t *testing.T) {
	global := t.TempDir()
	local := t.TempDir()

	writeFile(t, global, "base.gptsmith.yaml", `
dbPath: /global.db
keyMap:
  submit: ["ctrl+s"]
mcpServers:
  fetch:
    command: uvx
    args: ["mcp-server-fetch"]
`)
	writeFile(t, local, "project.gptsmith.yaml", `
dbPath: /local.db
keyMap:
  submit: ["ctrl+w"]
mcpServers:
  git:
    command: uvx
    args: ["mcp-server-git"]
`)
	writeFile(t, local, "ignored.yaml", `dbPath: /ignored.db`)

	cfg, err := load([]string{global, local}, nil)
	require.NoError(t, err)

	assert.Equal(t, "/local.db", cfg.DBPath)
	assert.Equal(t, []string{"ctrl+s", "ctrl+w"}, cfg.KeyMap.Submit)
	require.Len(t, cfg.MCPServers, 2)
	assert.Equal(t, []string{"mcp-server-git"}, cfg.MCPServers["git"].Args)
	assert.Equal(t, "uvx", cfg.MCPServers["fetch"].Command)
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	t.Setenv("GPTSMITH_PUBLICBASEURL", "https://bots.example.com/share")
	t.Setenv("GPTSMITH_LOG_LOGLEVEL", "DEBUG")

	dbPath := "/override.db"
	cfg, err := load(nil, &RuntimeOverrides{DBPath: &dbPath})
	require.NoError(t, err)

	assert.Equal(t, "https://bots.example.com/share", cfg.PublicBaseURL)
	assert.Equal(t, "DEBUG", cfg.Log.LogLevel)
	assert.Equal(t, "/override.db", cfg.DBPath)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log:\n  logLevel: LOUD\n"},
		{"bad url", "publicBaseURL: not a url\n"},
		{"server without command", "mcpServers:\n  broken:\n    args: [x]\n"},
		{"type mismatch", "keyMap: ctrl+s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "bad.gptsmith.yaml", tt.content)
			_, err := load([]string{dir}, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "GPTSMITH_TEST_FROM_DOTENV=yes\nGPTSMITH_TEST_PRESET=file\n")
	t.Setenv("GPTSMITH_TEST_PRESET", "process")
	t.Cleanup(func() { _ = os.Unsetenv("GPTSMITH_TEST_FROM_DOTENV") })

	loadEnv(filepath.Join(dir, ".env"), filepath.Join(dir, "missing.env"))

	assert.Equal(t, "yes", os.Getenv("GPTSMITH_TEST_FROM_DOTENV"))
	assert.Equal(t, "process", os.Getenv("GPTSMITH_TEST_PRESET"))
}

func TestKnownKeys(t *testing.T) {
	known := GetKnownKeys()
	assert.True(t, IsKnownKey(known, "log.logLevel"))
	assert.True(t, IsKnownKey(known, "keyMap.submit"))
	assert.True(t, IsKnownKey(known, "mcpServers.fetch"))
	assert.True(t, IsKnownKey(known, "mcpServers.fetch.command"))
	assert.False(t, IsKnownKey(known, "models"))
}

func TestPrintConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "servers.gptsmith.yaml", `
mcpServers:
  tavily:
    command: npx
    env:
      TAVILY_API_KEY: tvly-secret
`)
	cfg, err := load([]string{dir}, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, cfg.PrintConfig(&out, "mcpServers", true))
	printed := out.String()
	assert.Contains(t, printed, "command: npx")
	assert.Contains(t, printed, "[REDACTED]")
	assert.NotContains(t, printed, "tvly-secret")
	assert.Contains(t, printed, filepath.Join(dir, "servers.gptsmith.yaml"))

	out.Reset()
	require.NoError(t, cfg.PrintConfig(&out, "log.logLevel", true))
	assert.Contains(t, out.String(), "loglevel: INFO")
	assert.Contains(t, out.String(), "# default")

	assert.Error(t, cfg.PrintConfig(&out, "nope", false))
}
