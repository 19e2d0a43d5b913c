package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/freemium-tools/internal/cli"
	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/model"
	"github.com/spf13/cobra"
)

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and change saved preferences",
		Long:  `Inspect or edit the theme, sidebar and cookie choices the catalog remembers between sessions.`,
	}

	cmd.AddCommand(showPrefsCmd())
	cmd.AddCommand(themePrefCmd())
	cmd.AddCommand(sidebarPrefCmd())
	cmd.AddCommand(consentPrefCmd())

	return cmd
}

func showPrefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			prefs, err := store.GetPreferences(ctx)
			if err != nil {
				return fmt.Errorf("failed to get preferences: %w", err)
			}

			sidebar := "automatic"
			if prefs.SidebarSet {
				sidebar = sidebarLabel(prefs.SidebarOpen)
			}

			consent := "not answered"
			decision, err := store.GetConsent(ctx)
			switch {
			case errors.Is(err, common.ErrNotFound):
			case err != nil:
				return fmt.Errorf("failed to get cookie consent: %w", err)
			default:
				consent = fmt.Sprintf("%s on %s", decision.Label(), decision.DecidedAt.Local().Format(time.DateTime))
			}

			body := fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %s",
				cli.SubtleStyle.Render("Theme:   "), prefs.Theme,
				cli.SubtleStyle.Render("Sidebar: "), sidebar,
				cli.SubtleStyle.Render("Cookies: "), consent,
				cli.SubtleStyle.Render("Database:"), store.Path(),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Preferences", body))
			return err
		},
	}
}

func themePrefCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme <" + strings.Join(model.Themes, "|") + ">",
		Short:     "Set the colour theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: model.Themes,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := strings.ToLower(strings.TrimSpace(args[0]))
			if !model.ValidTheme(theme) {
				return fmt.Errorf("%w: theme must be one of %s", common.ErrInvalidConfig, strings.Join(model.Themes, ", "))
			}
			return updatePreferences(cmd, func(p model.Preferences) model.Preferences {
				p.Theme = theme
				return p
			}, "Theme set to "+theme)
		},
	}
}

func sidebarPrefCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "sidebar <open|closed>",
		Short:     "Remember whether the sidebar starts open",
		Long:      `Terminals at least ui.sidebar_breakpoint columns wide always open the sidebar; narrower ones use this choice.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"open", "closed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var open bool
			switch strings.ToLower(args[0]) {
			case "open":
				open = true
			case "closed", "close":
			default:
				return fmt.Errorf("%w: sidebar must be open or closed, got %q", common.ErrInvalidConfig, args[0])
			}
			return updatePreferences(cmd, func(p model.Preferences) model.Preferences {
				return p.WithSidebar(open)
			}, "Sidebar will start "+sidebarLabel(open))
		},
	}
}

func consentPrefCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "consent <accept|decline|reset>",
		Short:     "Record or clear the cookie decision",
		Long:      `Accept or decline cookies without the banner, or reset the decision so the banner shows again.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"accept", "decline", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := strings.ToLower(args[0])
			switch action {
			case "accept", "decline", "reset":
			default:
				return fmt.Errorf("%w: expected accept, decline or reset, got %q", common.ErrInvalidConfig, args[0])
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if action == "reset" {
				if err := store.ClearConsent(ctx); err != nil {
					return fmt.Errorf("failed to clear cookie consent: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Cookie decision cleared"))
				return nil
			}

			decision := model.NewConsentDecision(action == "accept", time.Now())
			if err := store.SaveConsent(ctx, decision); err != nil {
				return fmt.Errorf("failed to save cookie consent: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Cookies "+strings.ToLower(decision.Label())))
			return nil
		},
	}
}

func updatePreferences(cmd *cobra.Command, change func(model.Preferences) model.Preferences, done string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	prefs, err := store.GetPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}
	if err := store.SavePreferences(ctx, change(prefs)); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(done))
	return err
}

func sidebarLabel(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
