package themes

import (
	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	tokens      map[string]lipgloss.Color
	Name        string
	Header      lipgloss.Style
	Selected    lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style
	StatusOK    lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Link        lipgloss.Style
	Code        lipgloss.Style
	Box         lipgloss.Style
	BorderedBox lipgloss.Style
	RoundedBox  lipgloss.Style
	AdBox       lipgloss.Style
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Foreground  lipgloss.Color
	Background  lipgloss.Color
	Info        lipgloss.Color
	Error       lipgloss.Color
	Warning     lipgloss.Color
	Success     lipgloss.Color
	Dark        bool
}

type palette struct {
	tokens     map[string]lipgloss.Color
	primary    lipgloss.Color
	secondary  lipgloss.Color
	header     lipgloss.Color
	success    lipgloss.Color
	warning    lipgloss.Color
	errorColor lipgloss.Color
	info       lipgloss.Color
	background lipgloss.Color
	foreground lipgloss.Color
	subtle     lipgloss.Color
	border     lipgloss.Color
	muted      lipgloss.Color
	code       lipgloss.Color
	onPrimary  lipgloss.Color
}

func newTheme(name string, dark bool, p palette) Theme {
	return Theme{
		Name:       name,
		Dark:       dark,
		tokens:     p.tokens,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Success:    p.success,
		Warning:    p.warning,
		Error:      p.errorColor,
		Info:       p.info,
		Background: p.background,
		Foreground: p.foreground,
		Border:     p.border,
		Muted:      p.muted,

		Header: lipgloss.NewStyle().
			Bold(true).
			Background(p.header).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Link: lipgloss.NewStyle().
			Foreground(p.primary).
			Underline(true),
		Code: lipgloss.NewStyle().
			Background(p.code).
			Foreground(p.foreground).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.onPrimary).
			Bold(true),

		Box: lipgloss.NewStyle().
			Padding(0, 1),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		AdBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Foreground(p.muted).
			Align(lipgloss.Center),

		StatusOK: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(p.errorColor).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(p.info).
			Bold(true),
	}
}

// Light is the default theme.
var Light = newTheme(model.ThemeLight, false, palette{
	primary:    lipgloss.Color("#E55B4D"),
	secondary:  lipgloss.Color("#C54D41"),
	header:     lipgloss.Color("#E55B4D"),
	success:    lipgloss.Color("#059669"),
	warning:    lipgloss.Color("#D97706"),
	errorColor: lipgloss.Color("#DC2626"),
	info:       lipgloss.Color("#2563EB"),
	background: lipgloss.Color("#F9FAFB"),
	foreground: lipgloss.Color("#111827"),
	subtle:     lipgloss.Color("#4B5563"),
	border:     lipgloss.Color("#D1D5DB"),
	muted:      lipgloss.Color("#6B7280"),
	code:       lipgloss.Color("#F3F4F6"),
	onPrimary:  lipgloss.Color("#FFFFFF"),
	tokens: map[string]lipgloss.Color{
		"blue":   lipgloss.Color("#2563EB"),
		"red":    lipgloss.Color("#DC2626"),
		"pink":   lipgloss.Color("#DB2777"),
		"purple": lipgloss.Color("#9333EA"),
		"yellow": lipgloss.Color("#CA8A04"),
		"green":  lipgloss.Color("#16A34A"),
	},
})

// Dark mirrors Light on a dark background.
var Dark = newTheme(model.ThemeDark, true, palette{
	primary:    lipgloss.Color("#F87171"),
	secondary:  lipgloss.Color("#E55B4D"),
	header:     lipgloss.Color("#1F2937"),
	success:    lipgloss.Color("#34D399"),
	warning:    lipgloss.Color("#FBBF24"),
	errorColor: lipgloss.Color("#F87171"),
	info:       lipgloss.Color("#60A5FA"),
	background: lipgloss.Color("#111827"),
	foreground: lipgloss.Color("#F9FAFB"),
	subtle:     lipgloss.Color("#D1D5DB"),
	border:     lipgloss.Color("#374151"),
	muted:      lipgloss.Color("#9CA3AF"),
	code:       lipgloss.Color("#1F2937"),
	onPrimary:  lipgloss.Color("#111827"),
	tokens: map[string]lipgloss.Color{
		"blue":   lipgloss.Color("#60A5FA"),
		"red":    lipgloss.Color("#F87171"),
		"pink":   lipgloss.Color("#F472B6"),
		"purple": lipgloss.Color("#C084FC"),
		"yellow": lipgloss.Color("#FACC15"),
		"green":  lipgloss.Color("#4ADE80"),
	},
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(model.ThemeCatppuccinMocha, true, palette{
	primary:    lipgloss.Color("#cba6f7"),
	secondary:  lipgloss.Color("#f5c2e7"),
	header:     lipgloss.Color("#313244"),
	success:    lipgloss.Color("#a6e3a1"),
	warning:    lipgloss.Color("#f9e2af"),
	errorColor: lipgloss.Color("#f38ba8"),
	info:       lipgloss.Color("#89dceb"),
	background: lipgloss.Color("#1e1e2e"),
	foreground: lipgloss.Color("#cdd6f4"),
	subtle:     lipgloss.Color("#a6adc8"),
	border:     lipgloss.Color("#45475a"),
	muted:      lipgloss.Color("#6c7086"),
	code:       lipgloss.Color("#313244"),
	onPrimary:  lipgloss.Color("#1e1e2e"),
	tokens: map[string]lipgloss.Color{
		"blue":   lipgloss.Color("#89b4fa"),
		"red":    lipgloss.Color("#f38ba8"),
		"pink":   lipgloss.Color("#f5c2e7"),
		"purple": lipgloss.Color("#cba6f7"),
		"yellow": lipgloss.Color("#f9e2af"),
		"green":  lipgloss.Color("#a6e3a1"),
	},
})

// GetTheme returns a theme by name, falling back to Light.
func GetTheme(name string) Theme {
	switch name {
	case model.ThemeDark:
		return Dark
	case model.ThemeCatppuccinMocha:
		return CatppuccinMocha
	default:
		return Light
	}
}

// TokenColor maps a flames colour token such as "red" to this theme's
// colour. Unknown tokens render muted.
func (t Theme) TokenColor(token string) lipgloss.Color {
	if c, ok := t.tokens[token]; ok {
		return c
	}
	return t.Muted
}

// CategoryColor picks the half of a category colour pair that suits the
// theme background.
func (t Theme) CategoryColor(pair catalog.ColorPair) lipgloss.Color {
	if t.Dark && pair.Dark != "" {
		return lipgloss.Color(pair.Dark)
	}
	if pair.Light == "" {
		return t.Primary
	}
	return lipgloss.Color(pair.Light)
}
