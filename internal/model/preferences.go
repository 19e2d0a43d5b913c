// Package model holds the persisted application state types.
package model

// Theme names.
const (
	ThemeLight           = "light"
	ThemeDark            = "dark"
	ThemeCatppuccinMocha = "catppuccin-mocha"
)

// Themes lists the selectable themes. The first entry is the default.
var Themes = []string{ThemeLight, ThemeDark, ThemeCatppuccinMocha}

// ValidTheme reports whether name is a selectable theme.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Preferences is the UI state that survives restarts.
type Preferences struct {
	Theme string `json:"theme"`
	// SidebarOpen is only meaningful when SidebarSet is true.
	SidebarOpen bool `json:"sidebar_open"`
	SidebarSet  bool `json:"sidebar_set"`
}

// DefaultPreferences returns the preferences of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight}
}

// IsDark reports whether the selected theme has a dark background.
func (p Preferences) IsDark() bool {
	return p.Theme == ThemeDark || p.Theme == ThemeCatppuccinMocha
}

// SidebarVisible decides whether the sidebar starts open on a terminal of
// the given width. Wide terminals always show it; narrower ones honour the
// stored choice and otherwise fall back to what a wide terminal would do.
func (p Preferences) SidebarVisible(width, breakpoint int) bool {
	if width >= breakpoint {
		return true
	}
	if p.SidebarSet {
		return p.SidebarOpen
	}
	return true
}

// WithSidebar records an explicit sidebar choice.
func (p Preferences) WithSidebar(open bool) Preferences {
	p.SidebarOpen = open
	p.SidebarSet = true
	return p
}

// NextTheme cycles to the theme after the current one.
func (p Preferences) NextTheme() Preferences {
	for i, t := range Themes {
		if t == p.Theme {
			p.Theme = Themes[(i+1)%len(Themes)]
			return p
		}
	}
	p.Theme = Themes[0]
	return p
}
