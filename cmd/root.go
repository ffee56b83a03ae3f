// =============================================================================
// 13F to XLSX Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (13fconv)
//   ├── convertCmd (13fconv convert)
//   └── versionCmd (13fconv version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Initializing structured logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug-level logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "13fconv",
	Short: "13F to XLSX Converter - Extract the SEC 13F securities list from PDF into a spreadsheet",

	Long: `13F to XLSX Converter reads the quarterly 13F securities list PDF published
by the SEC and exports the holding records into an XLSX workbook.

The table structure of the PDF is lost during text extraction, so the tool
reconstructs the five columns (CUSIP, option flag, issuer description, issue
description, add/delete status) with a positional pattern match and two
curated keyword lists. The split is best effort: rows that cannot be divided
carry a note in the Issue column, and the workbook includes a count check
against the total reported inside the PDF itself.

Example Usage:
  13fconv convert                          # Convert all PDFs in the input directory
  13fconv convert --file 13flist2021q2.pdf # Convert a single file
  13fconv convert --config ./my.yaml       # Use a custom configuration file`,

	// Run prints the help message when no subcommand is provided.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},

	// PersistentPreRun configures logging before any subcommand executes.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initLogging installs the default slog handler before the configuration is
// available. The --verbose flag lowers the level to debug.
func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	setLogHandler(level)
}

// applyLogLevel resets the handler to the configured level once the config
// file has been loaded. --verbose always wins.
func applyLogLevel(configured string) {
	if verbose {
		return
	}

	level := slog.LevelInfo
	switch configured {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	setLogHandler(level)
}

func setLogHandler(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// init sets up the global flags available to all subcommands.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	// The tool runs with built-in defaults when the file does not exist.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
