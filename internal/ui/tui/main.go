package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/gptsmith/internal/appState"
	"github.com/isaacphi/gptsmith/internal/ui/tui/screens/assistant"
)

// Run opens the assistant form full screen and blocks until it closes. It reports
// whether the assistant was saved.
func Run(ctx context.Context, opts assistant.Options) (bool, error) {
	appState.QuietForTUI()

	p := tea.NewProgram(New(ctx, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running assistant TUI: %w", err)
	}
	m, ok := final.(*Model)
	if !ok {
		return false, nil
	}
	return m.Saved(), nil
}
