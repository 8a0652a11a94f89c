package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the semantic colors and styles for the application
type Theme struct {
	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor

	// Styles
	DocStyle     lipgloss.Style
	InputStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	FooterStyle  lipgloss.Style
	KeyHintStyle lipgloss.Style
	TitleStyle   lipgloss.Style

	// Form
	LabelStyle        lipgloss.Style
	FocusedLabelStyle lipgloss.Style
	DescriptionStyle  lipgloss.Style
	OptionStyle       lipgloss.Style
	ActiveOptionStyle lipgloss.Style
	TabStyle          lipgloss.Style
	ActiveTabStyle    lipgloss.Style
	DialogStyle       lipgloss.Style
	ErrorStyle        lipgloss.Style
	SuccessStyle      lipgloss.Style
	LinkStyle         lipgloss.Style
	ReadOnlyStyle     lipgloss.Style
}

// DefaultTheme creates a default theme
func DefaultTheme() *Theme {
	primary := lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	secondary := lipgloss.AdaptiveColor{Light: "#4B56FD", Dark: "#4B56FD"}
	text := lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#FFFFFF"}
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight := lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	errColor := lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4136"}
	success := lipgloss.AdaptiveColor{Light: "#00A000", Dark: "#2ECC40"}
	warning := lipgloss.AdaptiveColor{Light: "#FFA500", Dark: "#FF851B"}

	return &Theme{
		Primary:   primary,
		Secondary: secondary,
		Text:      text,
		Subtle:    subtle,
		Highlight: highlight,
		Error:     errColor,
		Success:   success,
		Warning:   warning,

		DocStyle: lipgloss.NewStyle().Padding(1, 2),

		InputStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1),

		HeaderStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1),

		FooterStyle: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 2),

		KeyHintStyle: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		TitleStyle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 0, 1, 0),

		LabelStyle: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),

		FocusedLabelStyle: lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true),

		DescriptionStyle: lipgloss.NewStyle().
			Foreground(subtle),

		OptionStyle: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		ActiveOptionStyle: lipgloss.NewStyle().
			Foreground(text).
			Background(primary).
			Padding(0, 1),

		TabStyle: lipgloss.NewStyle().
			Foreground(subtle).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),

		ActiveTabStyle: lipgloss.NewStyle().
			Foreground(text).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		DialogStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		ErrorStyle:    lipgloss.NewStyle().Foreground(errColor),
		SuccessStyle:  lipgloss.NewStyle().Foreground(success),
		LinkStyle:     lipgloss.NewStyle().Foreground(secondary).Underline(true),
		ReadOnlyStyle: lipgloss.NewStyle().Foreground(warning).Italic(true),
	}
}
