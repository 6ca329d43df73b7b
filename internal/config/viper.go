// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/currency-csv/internal/encoding"
	"fjacquet/currency-csv/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "CURRCSV"

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls how tables are read and written.
type CSVConfig struct {
	Separator       string `mapstructure:"separator" yaml:"separator"`
	InputEncoding   string `mapstructure:"input_encoding" yaml:"input_encoding"`
	DefaultEncoding string `mapstructure:"default_encoding" yaml:"default_encoding"`
}

// DataConfig locates input and output files.
type DataConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// DisplayConfig controls the console preview.
type DisplayConfig struct {
	MaxRows int `mapstructure:"max_rows" yaml:"max_rows"`
}

// ReportConfig controls the conversion ledger.
type ReportConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Directory string `mapstructure:"directory" yaml:"directory"`
	Format    string `mapstructure:"format" yaml:"format"`
}

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv"`
	Data    DataConfig    `mapstructure:"data" yaml:"data"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Report  ReportConfig  `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig loads configuration from configFile, or from the standard
// locations when configFile is empty. A named file must exist.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.currency-csv")
		v.AddConfigPath(".currency-csv")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless named)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration built from defaults only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.separator", "|")
	v.SetDefault("csv.input_encoding", "")
	v.SetDefault("csv.default_encoding", encoding.DefaultEncoding)

	v.SetDefault("data.directory", ".")

	v.SetDefault("display.max_rows", 5)

	v.SetDefault("report.enabled", false)
	v.SetDefault("report.directory", ".")
	v.SetDefault("report.format", "csv")
}

// Validate checks a configuration assembled outside LoadConfig.
func Validate(config *Config) error {
	return validateConfig(config)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.CSV.Separator == "" || strings.ContainsAny(config.CSV.Separator, "\r\n") {
		return fmt.Errorf("csv.separator must be non-empty and on one line, got: %q", config.CSV.Separator)
	}

	if config.CSV.InputEncoding != "" {
		if _, err := encoding.Canonical(config.CSV.InputEncoding); err != nil {
			return fmt.Errorf("csv.input_encoding: %w", err)
		}
	}
	if _, err := encoding.Canonical(config.CSV.DefaultEncoding); err != nil {
		return fmt.Errorf("csv.default_encoding: %w", err)
	}

	if config.Display.MaxRows < 1 {
		return fmt.Errorf("display.max_rows must be at least 1, got: %d", config.Display.MaxRows)
	}

	if config.Report.Format != "csv" && config.Report.Format != "json" {
		return fmt.Errorf("invalid report format: %s (must be 'csv' or 'json')", config.Report.Format)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
