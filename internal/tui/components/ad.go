package components

import (
	"fmt"

	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// AdSlot identifies an ad position on the tool page.
type AdSlot struct {
	ID     string
	Format string
	Height int
}

// Tool page ad positions.
var (
	AdTop    = AdSlot{ID: "1234567890", Format: "horizontal", Height: 3}
	AdMiddle = AdSlot{ID: "9876543210", Format: "rectangle", Height: 5}
	AdBottom = AdSlot{ID: "5678901234", Format: "horizontal", Height: 3}
)

// AdConfig controls what ad slots show. Outside production, or without a
// publisher client, slots render a placeholder.
type AdConfig struct {
	Client     string
	Production bool
}

// RenderAd draws a labelled ad slot.
func RenderAd(theme themes.Theme, cfg AdConfig, slot AdSlot, width int) string {
	body := "Ad Placeholder"
	if cfg.Production && cfg.Client != "" && slot.ID != "" {
		body = fmt.Sprintf("Ad slot %s (%s, %s)", slot.ID, slot.Format, cfg.Client)
	}

	if width < 20 {
		width = 20
	}
	label := lipgloss.NewStyle().Foreground(theme.Muted).Bold(true).Render("Advertisement")
	box := theme.AdBox.
		Width(width - 2).
		Height(slot.Height).
		AlignVertical(lipgloss.Center).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}
