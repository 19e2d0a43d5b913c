package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/model"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyDatabasePath      = "database.path"
	KeyTheme             = "ui.theme"
	KeySidebarBreakpoint = "ui.sidebar_breakpoint"
	KeyAdsProduction     = "ads.production"
	KeyAdsClient         = "ads.client"
	KeyLogLevel          = "logging.level"
	KeyLogFormat         = "logging.format"
)

// DefaultSidebarBreakpoint is the terminal width at which the sidebar is
// always shown.
const DefaultSidebarBreakpoint = 100

// AppConfig is the resolved application configuration.
type AppConfig struct {
	DatabasePath      string
	Theme             string
	AdsClient         string
	LogLevel          string
	LogFormat         string
	SidebarBreakpoint int
	AdsProduction     bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "~/.local/share/freemium/freemium.db")
	v.SetDefault(KeySidebarBreakpoint, DefaultSidebarBreakpoint)
	v.SetDefault(KeyAdsProduction, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// LoadAppConfig reads the application configuration from the global viper
// instance.
func LoadAppConfig() (*AppConfig, error) {
	return LoadAppConfigFrom(viper.GetViper())
}

// LoadAppConfigFrom reads the application configuration from v. An empty
// ui.theme is allowed and means the stored preference decides.
func LoadAppConfigFrom(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		DatabasePath:      ExpandPath(v.GetString(KeyDatabasePath)),
		Theme:             strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
		AdsClient:         v.GetString(KeyAdsClient),
		AdsProduction:     v.GetBool(KeyAdsProduction),
		LogLevel:          v.GetString(KeyLogLevel),
		LogFormat:         v.GetString(KeyLogFormat),
		SidebarBreakpoint: v.GetInt(KeySidebarBreakpoint),
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultDatabasePath()
	}
	if cfg.SidebarBreakpoint <= 0 {
		cfg.SidebarBreakpoint = DefaultSidebarBreakpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that enumerated settings hold known values.
func (c *AppConfig) Validate() error {
	if c.Theme != "" && !model.ValidTheme(c.Theme) {
		return fmt.Errorf("%w: ui.theme must be one of %s, got %q",
			common.ErrInvalidConfig, strings.Join(model.Themes, ", "), c.Theme)
	}
	if c.AdsProduction && c.AdsClient == "" {
		return fmt.Errorf("%w: ads.client is required when ads.production is set", common.ErrMissingConfig)
	}
	return nil
}
