package tui

import (
	"time"

	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/config"
	"github.com/Veraticus/freemium-tools/internal/service"
	"github.com/Veraticus/freemium-tools/internal/share"
	"github.com/Veraticus/freemium-tools/internal/tui/components"
)

// Config holds TUI configuration.
type Config struct {
	Store             service.PreferenceStore
	Catalog           *catalog.Catalog
	Now               func() time.Time
	Theme             string
	Route             string
	PageURL           string
	Ads               components.AdConfig
	Width             int
	Height            int
	SidebarBreakpoint int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Catalog:           catalog.Default(),
		Now:               time.Now,
		Route:             "/",
		PageURL:           share.DefaultPageURL,
		Width:             80,
		Height:            24,
		SidebarBreakpoint: config.DefaultSidebarBreakpoint,
	}
}

// WithStorage sets where preferences and consent are persisted. Without a
// store nothing survives the session.
func WithStorage(store service.PreferenceStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithCatalog replaces the embedded catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Config) {
		c.Catalog = cat
	}
}

// WithTheme forces a theme by name, overriding the stored preference
// until the user toggles it.
func WithTheme(name string) Option {
	return func(c *Config) {
		c.Theme = name
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithRoute sets the starting route, e.g. "/tool/mathematics/calculator".
func WithRoute(path string) Option {
	return func(c *Config) {
		c.Route = path
	}
}

// WithSidebarBreakpoint sets the width at which the sidebar is forced open.
func WithSidebarBreakpoint(columns int) Option {
	return func(c *Config) {
		if columns > 0 {
			c.SidebarBreakpoint = columns
		}
	}
}

// WithAds configures ad slot rendering.
func WithAds(production bool, client string) Option {
	return func(c *Config) {
		c.Ads = components.AdConfig{Production: production, Client: client}
	}
}

// WithClock overrides the time source used to stamp consent decisions.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}
