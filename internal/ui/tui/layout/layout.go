package layout

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/gptsmith/internal/ui/tui/components/help"
	"github.com/isaacphi/gptsmith/internal/ui/tui/theme"
)

// LayoutResult holds the results of layout calculations
type LayoutResult struct {
	ContentHeight int
	HelpView      string
}

// LayoutScreen creates a consistent layout with help at bottom
func LayoutScreen(width, height int, helpModel help.Model, thm *theme.Theme, status string) LayoutResult {
	helpStyle := thm.FooterStyle.Width(width)

	helpView := helpModel.View()
	if status != "" && !helpModel.ShowAll {
		helpView = status + "\n" + helpView
	}
	helpView = helpStyle.Render(helpView)

	contentHeight := height - lipgloss.Height(helpView)
	if contentHeight < 0 {
		contentHeight = 0
	}

	return LayoutResult{
		ContentHeight: contentHeight,
		HelpView:      helpView,
	}
}

// Compose stacks content above the help footer, clipping content to the space left.
func Compose(content string, result LayoutResult) string {
	content = lipgloss.NewStyle().MaxHeight(result.ContentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, content, result.HelpView)
}

// Overlay renders a dialog centered over the screen area.
func Overlay(width, height int, dialog string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}
