// Package appState holds the process-wide config and logger set up by the root command.
package appState

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/isaacphi/gptsmith/internal/config"
)

// App holds the global application state
type App struct {
	Config *config.ConfigSchema
	Logger *slog.Logger

	level   slog.Level
	logFile *os.File
}

var (
	current  atomic.Pointer[App]
	initOnce sync.Once
	initErr  error
)

// Initialize loads the config and installs the default logger. Only the first call
// does any work; later calls return its result.
func Initialize(overrides *config.RuntimeOverrides) error {
	initOnce.Do(func() {
		app, err := load(overrides)
		if err != nil {
			initErr = err
			return
		}
		install(app)
	})
	return initErr
}

func load(overrides *config.RuntimeOverrides) (*App, error) {
	cfg, err := config.New(overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app := &App{Config: cfg, level: parseLevel(cfg.Log.LogLevel)}
	var out io.Writer = os.Stdout
	if cfg.Log.LogFile != "" {
		if app.logFile, err = openLogFile(cfg.Log.LogFile); err != nil {
			return nil, err
		}
		out = app.logFile
	}
	app.Logger = app.newLogger(out)
	return app, nil
}

// install publishes app and makes its logger the slog default.
func install(app *App) {
	current.Store(app)
	slog.SetDefault(app.Logger)
}

// Get returns the global app instance and panics if not initialized
func Get() *App {
	app := current.Load()
	if app == nil {
		panic("app not initialized")
	}
	return app
}

// QuietForTUI stops logging to stdout while a full-screen program owns the terminal.
// A configured log file keeps receiving records.
func QuietForTUI() {
	app := current.Load()
	if app == nil || app.logFile != nil {
		return
	}
	quiet := *app
	quiet.Logger = app.newLogger(io.Discard)
	install(&quiet)
}

// Cleanup closes the log file, if one was opened.
func Cleanup() error {
	app := current.Load()
	if app == nil || app.logFile == nil {
		return nil
	}
	return app.logFile.Close()
}

func (a *App) newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     a.level,
		AddSource: true,
	}))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

func parseLevel(name string) slog.Level {
	switch name {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
