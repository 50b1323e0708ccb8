// Package config loads perch settings from perch.yml and PERCH_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/perch/dialog"
	"github.com/simonhull/firebird-suite/perch/logger"
)

// FileName is the config file looked up in the working directory.
const FileName = "perch.yml"

// EnvPrefix prefixes environment overrides, e.g. PERCH_MODE=console or
// PERCH_LOGGING_LEVEL=debug.
const EnvPrefix = "PERCH"

// Config represents perch.yml
type Config struct {
	// Mode selects the prompter: auto, console or modal.
	Mode string `yaml:"mode" mapstructure:"mode"`
	// Acknowledge makes console messages wait for Enter.
	Acknowledge bool          `yaml:"acknowledge" mapstructure:"acknowledge"`
	Logging     LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Style       StyleConfig   `yaml:"style" mapstructure:"style"`
	Bank        BankConfig    `yaml:"bank" mapstructure:"bank"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// StyleConfig holds dialog colors, in any form lipgloss.Color accepts
type StyleConfig struct {
	Accent string `yaml:"accent" mapstructure:"accent"`
	Hint   string `yaml:"hint" mapstructure:"hint"`
}

// BankConfig holds settings for the bank sample
type BankConfig struct {
	Currency string `yaml:"currency" mapstructure:"currency"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Mode:        dialog.ModeAuto,
		Acknowledge: true,
		Logging:     LoggingConfig{Level: "warn"},
		Style:       StyleConfig{Accent: "cyan", Hint: "240"},
		Bank:        BankConfig{Currency: "$"},
	}
}

// Load reads path (or ./perch.yml when path is empty) and applies
// environment overrides. A missing file is not an error: defaults are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = FileName
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the mode and log level names, normalising Mode the same
// way dialog.FromMode reads it.
func (c *Config) Validate() error {
	c.Mode = dialog.NormalizeMode(c.Mode)
	switch c.Mode {
	case dialog.ModeAuto, dialog.ModeConsole, dialog.ModeModal:
	default:
		return fmt.Errorf("invalid mode %q: %w", c.Mode, dialog.ErrUnknownMode)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	return nil
}

// LogLevel returns the parsed logging level, falling back to warn.
func (c *Config) LogLevel() logger.Level {
	level, err := logger.ParseLevel(c.Logging.Level)
	if err != nil {
		return logger.LevelWarn
	}
	return level
}

// DialogOptions converts the config into prompter options.
func (c *Config) DialogOptions() *dialog.Options {
	return &dialog.Options{
		Styles:      dialog.NewStyles(c.Style.Accent, c.Style.Hint),
		Acknowledge: c.Acknowledge,
	}
}

// Save writes configuration to a YAML file
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("mode", d.Mode)
	v.SetDefault("acknowledge", d.Acknowledge)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("style.accent", d.Style.Accent)
	v.SetDefault("style.hint", d.Style.Hint)
	v.SetDefault("bank.currency", d.Bank.Currency)
}
