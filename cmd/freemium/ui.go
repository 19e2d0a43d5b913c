package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/config"
	"github.com/Veraticus/freemium-tools/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui [route]",
		Short: "Browse the tools catalog",
		Long: `Open the interactive catalog. An optional route opens a page directly:

  freemium ui /category/colors
  freemium ui /tool/mathematics/flames-calculator
  freemium ui /cookie-policy

Unknown routes open the home page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := "/"
			if len(args) == 1 {
				route = args[0]
			}
			return runUI(cmd, route)
		},
	}
}

// runUI starts the terminal UI at route. Logs go to a file next to the
// database while the alternate screen owns the terminal.
func runUI(cmd *cobra.Command, route string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}

	closeLog, err := redirectLogs(filepath.Join(filepath.Dir(cfg.DatabasePath), "freemium.log"))
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	opts := []tui.Option{
		tui.WithCatalog(cat),
		tui.WithRoute(route),
		tui.WithTheme(cfg.Theme),
		tui.WithSidebarBreakpoint(cfg.SidebarBreakpoint),
		tui.WithAds(cfg.AdsProduction, cfg.AdsClient),
	}

	store, err := initStorage(ctx)
	if err != nil {
		// The catalog still works without saved preferences.
		common.LogError(err, "preferences unavailable", common.Fields{"path": cfg.DatabasePath})
	} else {
		defer store.Close()
		opts = append(opts, tui.WithStorage(store))
	}

	err = tui.Run(ctx, opts...)
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}

func redirectLogs(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := common.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err := common.SetupLoggerTo(f, level, viper.GetString(config.KeyLogFormat)); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() {
		_ = common.SetupLogger(level, viper.GetString(config.KeyLogFormat))
		_ = f.Close()
	}, nil
}
