package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds the state shared by every subcommand of one invocation
type app struct {
	settings *viper.Viper
	logger   zerolog.Logger
	cfgFile  string
}

func newRootCmd() *cobra.Command {
	a := &app{
		settings: viper.New(),
		logger:   zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:   "taxopt",
		Short: "Brazilian tax regime comparison and optimization CLI",
		Long: `taxopt compares the Simples Nacional, Lucro Presumido and Lucro Real regimes
for a company and ranks tax optimization opportunities by expected payoff.

Input files are YAML with company, financials and optional rules sections.
All money values are in centavos.`,
		PersistentPreRunE: a.initConfig,
		SilenceUsage:      true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/taxopt/config.yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.StringP("format", "f", "", "output format (command specific)")
	flags.String("rules", "", "YAML file overriding the default tax tables")

	_ = a.settings.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.settings.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.settings.BindPFlag("output.format", flags.Lookup("format"))
	_ = a.settings.BindPFlag("rules", flags.Lookup("rules"))

	root.AddCommand(a.compareCmd())
	root.AddCommand(a.regimeCmd())
	root.AddCommand(a.opportunitiesCmd())
	root.AddCommand(a.reportCmd())
	root.AddCommand(a.breakevenCmd())
	root.AddCommand(a.whatifCmd())
	root.AddCommand(a.planCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(versionCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// A missing .env is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if a.cfgFile != "" {
		a.settings.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		a.settings.AddConfigPath(filepath.Join(home, ".config", "taxopt"))
		a.settings.SetConfigName("config")
		a.settings.SetConfigType("yaml")
	}

	a.settings.SetEnvPrefix("TAXOPT")
	a.settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.settings.AutomaticEnv()

	if err := a.settings.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	logger, err := newLogger(a.settings.GetString("logging.level"), a.settings.GetString("logging.format"))
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logger = logger
	a.logger.Debug().Str("config", a.settings.ConfigFileUsed()).Msg("settings loaded")
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taxopt %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}
