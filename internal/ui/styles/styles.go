// Package styles contains Lip Gloss style definitions shared by the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors keyed by role, resolved against the terminal background.
var (
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}
	TextHeaderColor  = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"}
	AccentColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#73F59F"}
	TextErrorColor   = lipgloss.AdaptiveColor{Light: "#CB4335", Dark: "#FF6B6B"}
	TextWarningColor = lipgloss.AdaptiveColor{Light: "#B7950B", Dark: "#F4D03F"}
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	BorderColor      = lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}
)

var (
	// Tab is an inactive tab label.
	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(TextMutedColor)

	// ActiveTab is the selected tab label.
	ActiveTab = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(AccentColor).
			Underline(true)

	// Header styles table column headers and section titles.
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextHeaderColor)

	// SelectedRow highlights the cursor row in a table.
	SelectedRow = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimaryColor)

	// Muted styles help text and secondary information.
	Muted = lipgloss.NewStyle().
		Foreground(TextMutedColor)

	// Error styles failure messages.
	Error = lipgloss.NewStyle().
		Foreground(TextErrorColor)

	// Panel wraps detail content in a rounded border.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)
)
