// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/currency-csv/internal/config"
	"fjacquet/currency-csv/internal/container"
	"fjacquet/currency-csv/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before any subcommand runs
	AppConfig *config.Config

	// AppContainer wires the components for the subcommands
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "currency-csv",
		Short: "A CLI tool to convert the price column of CSV files between currencies.",
		Long: `currency-csv rewrites the monetary column of a delimited CSV file from one
currency to another using a fixed multiplier. Amounts are read and written
using the number formatting of each currency's locale.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				_ = AppContainer.Close()
			}
		},
	}

	// SharedFlags holds the flags accessible to all commands
	SharedFlags = CommonFlags{}

	// ConfigFile overrides the configuration search path
	ConfigFile string
	// LogLevel overrides log.level when set
	LogLevel string
	// LogFormat overrides log.format when set
	LogFormat string
	// Separator overrides csv.separator when set
	Separator string
)

// Init initializes the root command and all flags
func Init() {
	flags := Cmd.PersistentFlags()
	flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (file-name.csv or stdin)")
	flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (file-name.csv or stdout)")
	flags.StringVar(&ConfigFile, "config", "", "Config file (default searches $HOME/.currency-csv, .currency-csv and .)")
	flags.StringVar(&LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&LogFormat, "log-format", "", "Log format (text or json)")
	flags.StringVar(&Separator, "separator", "", "Cell separator (default |)")
}

func setup(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.LoadConfig(ConfigFile)
	if err != nil {
		return err
	}
	if err := ApplyOverrides(cfg); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// ApplyOverrides copies the command-line overrides onto cfg.
func ApplyOverrides(cfg *config.Config) error {
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}
	if LogFormat != "" {
		cfg.Log.Format = LogFormat
	}
	if Separator != "" {
		cfg.CSV.Separator = Separator
	}
	if LogLevel == "" && LogFormat == "" && Separator == "" {
		return nil
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid command-line flags: %w", err)
	}
	return nil
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return AppContainer, nil
}

// GetConfig returns the effective configuration, or the defaults before setup.
func GetConfig() *config.Config {
	if AppConfig == nil {
		return config.Default()
	}
	return AppConfig
}
