package components

import (
	"github.com/Veraticus/freemium-tools/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateMsg asks the app to open a route.
type NavigateMsg struct {
	Route catalog.Route
}

// ConsentMsg reports a cookie banner choice. Closed means the banner was
// dismissed without a decision.
type ConsentMsg struct {
	Accepted bool
	Closed   bool
}

func navigate(r catalog.Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: r}
	}
}
