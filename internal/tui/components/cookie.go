package components

import (
	"strings"

	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const cookieNotice = "We use cookies to enhance your experience. By continuing to browse, " +
	"you agree to our Privacy Policy. See our Cookie Policy for more information."

type bannerOption int

const (
	optionDecline bannerOption = iota
	optionAccept
	optionClose
)

var bannerLabels = [...]string{"Decline", "Accept", "Close"}

// CookieBannerModel asks the user to accept or decline cookies. While
// visible it takes every key press.
type CookieBannerModel struct {
	theme   themes.Theme
	cursor  bannerOption
	width   int
	visible bool
}

// NewCookieBannerModel creates a hidden banner.
func NewCookieBannerModel(theme themes.Theme) CookieBannerModel {
	return CookieBannerModel{theme: theme, cursor: optionAccept}
}

// Show makes the banner visible.
func (m *CookieBannerModel) Show() {
	m.visible = true
	m.cursor = optionAccept
}

// Visible reports whether the banner is showing.
func (m CookieBannerModel) Visible() bool {
	return m.visible
}

// SetTheme swaps the banner theme.
func (m *CookieBannerModel) SetTheme(theme themes.Theme) {
	m.theme = theme
}

// Resize updates the banner width.
func (m *CookieBannerModel) Resize(width int) {
	m.width = width
}

// Update handles key presses while the banner is visible.
func (m CookieBannerModel) Update(msg tea.Msg) (CookieBannerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.visible {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h", "shift+tab":
		m.cursor = (m.cursor + 2) % 3
	case "right", "l", "tab":
		m.cursor = (m.cursor + 1) % 3
	case "a":
		return m.choose(optionAccept)
	case "d":
		return m.choose(optionDecline)
	case "x", "esc":
		return m.choose(optionClose)
	case "enter", " ":
		return m.choose(m.cursor)
	}
	return m, nil
}

func (m CookieBannerModel) choose(opt bannerOption) (CookieBannerModel, tea.Cmd) {
	m.visible = false
	result := ConsentMsg{Accepted: opt == optionAccept, Closed: opt == optionClose}
	return m, func() tea.Msg { return result }
}

// View renders the banner, or nothing when hidden.
func (m CookieBannerModel) View() string {
	if !m.visible {
		return ""
	}

	buttons := make([]string, 0, len(bannerLabels))
	for i, label := range bannerLabels {
		text := "[" + label[:1] + "]" + label[1:]
		if label == "Close" {
			text = "[x] Close"
		}
		if bannerOption(i) == m.cursor {
			buttons = append(buttons, m.theme.Selected.Render(" "+text+" "))
			continue
		}
		buttons = append(buttons, " "+text+" ")
	}

	width := m.width - 2
	if width < 20 {
		width = 20
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Normal.Width(width-4).Render(cookieNotice),
		"",
		strings.Join(buttons, "  "),
	)
	return m.theme.RoundedBox.
		BorderForeground(m.theme.Primary).
		Width(width).
		Render(content)
}
