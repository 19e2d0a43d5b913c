// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the brand accent.
	PrimaryColor = lipgloss.Color("#E55B4D")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#10B981") // Emerald
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#EF4444") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#3B82F6") // Blue
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#6B7280") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D1D5DB")).
			Padding(1, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	ToolsIcon   = "🧰"
	FlameIcon   = "🔥"
)

// tokenColors maps the colour tokens used by flames categories to
// terminal colours.
var tokenColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("#3B82F6"),
	"red":    lipgloss.Color("#EF4444"),
	"pink":   lipgloss.Color("#EC4899"),
	"purple": lipgloss.Color("#A855F7"),
	"yellow": lipgloss.Color("#EAB308"),
	"green":  lipgloss.Color("#22C55E"),
}

// TokenColor returns the terminal colour for a colour token, or the
// subtle colour for unknown tokens.
func TokenColor(token string) lipgloss.Color {
	if c, ok := tokenColors[token]; ok {
		return c
	}
	return SubtleColor
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the tools icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(ToolsIcon + " " + title)
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}
