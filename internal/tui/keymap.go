package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the app-wide keyboard shortcuts. Keys that type a
// character are ignored while a form field has focus.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Back     key.Binding
	Home     key.Binding

	// Layout
	ToggleSidebar key.Binding
	SwitchPane    key.Binding
	ToggleTheme   key.Binding

	// Pages
	Privacy key.Binding
	Terms   key.Binding
	Cookies key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous category"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next category"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "open"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("Esc", "back"),
		),
		Home: key.NewBinding(
			key.WithKeys("H", "home"),
			key.WithHelp("H", "home"),
		),

		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("Ctrl+B", "toggle sidebar"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "sidebar/content"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),

		Privacy: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "privacy policy"),
		),
		Terms: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "terms of service"),
		),
		Cookies: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "cookie policy"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.ToggleSidebar, k.ToggleTheme, k.Back, k.Quit}
}

// FullHelp returns all key bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.PageUp, k.PageDown, k.Back, k.Home},
		{k.ToggleSidebar, k.SwitchPane, k.ToggleTheme},
		{k.Privacy, k.Terms, k.Cookies},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
