//-------------------------------------------------------------------------
//
// pgEdge Agriculture Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-agrigen.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-agrigen/internal/analysis"
	"github.com/pgEdge/pgedge-agrigen/internal/config"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
	"github.com/pgEdge/pgedge-agrigen/internal/report"
	"github.com/pgEdge/pgedge-agrigen/internal/session"
	"github.com/pgEdge/pgedge-agrigen/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
	seed     uint64

	// Filter flags shared by generate, report, summary and charts
	filterCrop  string
	filterState string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-agrigen",
		Short: "Synthetic US agriculture data generator",
		Long: `pgedge-agrigen synthesizes a production table for every US state and
major crop, then filters, aggregates and exports it as CSV, XLSX, PDF
reports or PNG charts. It can also load the table into PostgreSQL or
SQLite, or serve it over a small HTTP API.

All figures are randomly generated. Use --seed to reproduce a table.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-agrigen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"random seed (0 = time based)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(tickerCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(serveCmd)
}

// addFilterFlags registers --crop and --state on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&filterCrop, "crop", "",
		`crop to keep (default: all crops, "All Crops" also means all)`)
	cmd.Flags().StringVar(&filterState, "state", "",
		`state to keep (default: all states, "All States" also means all)`)
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if filterCrop != "" {
		cfg.Filter.Crop = filterCrop
	}
	if filterState != "" {
		cfg.Filter.State = filterState
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

func newSession() *session.Session {
	return session.New(session.Config{
		Seed:   cfg.Seed,
		States: cfg.Generate.States,
		Crops:  cfg.Generate.Crops,
	})
}

func currentFilter() analysis.Filter {
	return analysis.Filter{Crop: cfg.Filter.Crop, State: cfg.Filter.State}
}

func reportOptions() report.Options {
	return report.Options{
		Title:        cfg.Report.Title,
		RepeatHeader: cfg.Report.RepeatHeader,
	}
}

// writeOutput writes body to path, or to out when path is "-". An empty
// path selects name inside the configured export directory.
func writeOutput(out io.Writer, path, name string, body []byte) (string, error) {
	if path == "-" {
		_, err := out.Write(body)
		return "stdout", err
	}
	if path == "" {
		path = filepath.Join(cfg.Export.Dir, name)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
