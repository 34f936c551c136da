//-------------------------------------------------------------------------
//
// pgEdge Agriculture Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-agrigen.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/analysis"
	"github.com/pgEdge/pgedge-agrigen/internal/asset"
	"github.com/pgEdge/pgedge-agrigen/internal/report"
)

// Config holds all configuration for pgedge-agrigen.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed feeds the random source. 0 picks a time-based seed.
	Seed uint64 `mapstructure:"seed"`

	Generate GenerateConfig `mapstructure:"generate"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Report   ReportConfig   `mapstructure:"report"`
	Export   ExportConfig   `mapstructure:"export"`
	Asset    AssetConfig    `mapstructure:"asset"`
	Server   ServerConfig   `mapstructure:"server"`
	Sink     SinkConfig     `mapstructure:"sink"`
}

// GenerateConfig overrides the built-in state and crop lists.
// Empty lists mean the built-in ones.
type GenerateConfig struct {
	States []string `mapstructure:"states"`
	Crops  []string `mapstructure:"crops"`
}

// FilterConfig is the default filter applied by generate, report and summary.
type FilterConfig struct {
	Crop  string `mapstructure:"crop"`
	State string `mapstructure:"state"`
}

// ReportConfig controls the PDF report.
type ReportConfig struct {
	Title string `mapstructure:"title"`

	// RepeatHeader repeats the column header row after each page break.
	RepeatHeader bool `mapstructure:"repeat_header"`
}

// ExportConfig controls where exported files are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// AssetConfig controls the animation asset fetch.
type AssetConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SinkConfig selects the database the load command writes to.
type SinkConfig struct {
	// Kind is "postgres" or "sqlite".
	Kind string `mapstructure:"kind"`

	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// SQLitePath is the SQLite database file.
	SQLitePath string `mapstructure:"sqlite_path"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Filter: FilterConfig{
			Crop:  analysis.AllCrops,
			State: analysis.AllStates,
		},
		Report: ReportConfig{
			Title: report.DefaultTitle,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Asset: AssetConfig{
			URL:            asset.DefaultURL,
			TimeoutSeconds: 10,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Sink: SinkConfig{
			Kind:       "sqlite",
			SQLitePath: "agrigen.db",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-agrigen.yaml
// 3. ~/.config/pgedge-agrigen/pgedge-agrigen.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-agrigen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-agrigen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings shared by every command.
func (c *Config) Validate() error {
	for _, s := range c.Generate.States {
		if s == "" {
			return fmt.Errorf("generate.states must not contain empty names")
		}
	}
	for _, crop := range c.Generate.Crops {
		if crop == "" {
			return fmt.Errorf("generate.crops must not contain empty names")
		}
	}
	return nil
}

// ValidateFilter checks that the filter selects values the table can contain.
func (c *Config) ValidateFilter() error {
	if err := c.Validate(); err != nil {
		return err
	}
	states := c.Generate.States
	if len(states) == 0 {
		states = agri.States()
	}
	crops := c.Generate.Crops
	if len(crops) == 0 {
		crops = agri.Crops()
	}

	f := analysis.Filter{Crop: c.Filter.Crop, State: c.Filter.State}
	if f.CropSelected() && !slices.Contains(crops, f.Crop) {
		return fmt.Errorf("unknown crop %q", f.Crop)
	}
	if f.StateSelected() && !slices.Contains(states, f.State) {
		return fmt.Errorf("unknown state %q", f.State)
	}
	return nil
}

// ValidateServe checks configuration required for the serve command.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server address is required")
	}
	if c.Asset.TimeoutSeconds < 1 {
		return fmt.Errorf("asset timeout_seconds must be at least 1")
	}
	return nil
}

// ValidateLoad checks configuration required for the load command.
func (c *Config) ValidateLoad() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.Sink.Kind {
	case "postgres":
		if c.Sink.Connection == "" {
			return fmt.Errorf("connection string is required for the postgres sink")
		}
	case "sqlite":
		if c.Sink.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite sink")
		}
	default:
		return fmt.Errorf("sink kind must be 'postgres' or 'sqlite'")
	}
	return nil
}
