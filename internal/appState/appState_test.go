package appState

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/isaacphi/gptsmith/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := (&App{level: slog.LevelWarn}).newLogger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "id", "abc")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept id=abc")
}

func TestOpenLogFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gptsmith.log")

	file, err := openLogFile(path)
	require.NoError(t, err)
	app := &App{level: slog.LevelInfo, logFile: file}
	app.newLogger(file).Info("hello")
	require.NoError(t, file.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}

func TestQuietForTUI(t *testing.T) {
	t.Cleanup(func() { current.Store(nil) })
	before := slog.Default()
	t.Cleanup(func() { slog.SetDefault(before) })

	app := &App{Config: &config.ConfigSchema{}, level: slog.LevelInfo}
	app.Logger = app.newLogger(os.Stdout)
	install(app)

	QuietForTUI()

	quiet := Get()
	assert.NotSame(t, app, quiet)
	assert.Same(t, app.Config, quiet.Config)
	assert.NotSame(t, app.Logger, quiet.Logger)
	assert.Same(t, quiet.Logger, slog.Default())
	assert.NoError(t, Cleanup())
}

func TestGet_PanicsBeforeInitialize(t *testing.T) {
	t.Cleanup(func() { current.Store(nil) })
	current.Store(nil)
	assert.Panics(t, func() { Get() })
}
