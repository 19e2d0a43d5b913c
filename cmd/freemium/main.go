package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "freemium",
		Short: "🧰 Free online tools in your terminal",
		Long: `freemium-tools: a catalog of small everyday tools, from a calculator to
the FLAMES name-compatibility game, browsable in a terminal UI or usable
one command at a time.

Run without a subcommand to open the catalog.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: initConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, "/")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/freemium/config.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(uiCmd())
	root.AddCommand(flamesCmd())
	root.AddCommand(toolsCmd())
	root.AddCommand(calcCmd())
	root.AddCommand(areaCmd())
	root.AddCommand(legalCmd())
	root.AddCommand(prefsCmd())
	root.AddCommand(versionCmd())

	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, common.UserMessage(err))
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FREEMIUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

func setupLogging() error {
	level := viper.GetString(config.KeyLogLevel)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: invalid log level: %s", common.ErrInvalidConfig, level)
	}
	return common.SetupLogger(common.ParseLevel(level), viper.GetString(config.KeyLogFormat))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "freemium %s\n", version)
			slog.Debug("version requested", "version", version)
		},
	}
}
