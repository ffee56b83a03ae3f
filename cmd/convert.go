// =============================================================================
// 13F to XLSX Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which runs the extraction
// pipeline for one or more 13F PDF files.
//
// COMMAND USAGE:
//   13fconv convert [flags]
//
// FLAGS:
//   --file     : Convert a single PDF instead of scanning the input directory
//   --out      : Output workbook path (only valid together with --file)
//   --dry-run  : Parse and report without writing any files
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Discover PDF files (or take the single --file argument)
//   3. For each file, sequentially:
//      a. Extract the text and split it into lines
//      b. Classify holding lines and track the reported total count
//      c. Split combined descriptions into Description and Issue
//      d. Write the workbook and apply the formatting pass
//      e. Archive the processed PDF
//   4. Write the error log (when record warnings were collected)
//   5. Print a summary
//
// Files are processed one after another: each conversion is a single-pass,
// fully synchronous run over one document.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/config"
	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/converter"
	"github.com/ginjaninja78/13F-to-XLSX-conversion/pkg/utils"
)

// singleFile is the path to one PDF to convert (empty = scan the input dir).
var singleFile string

// outputFile overrides the generated output path (requires --file).
var outputFile string

// dryRun parses and reports without writing output files.
var dryRun bool

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert 13F PDF files into XLSX workbooks",
	Long: `The convert command extracts the securities list from 13F PDF files and
exports it as XLSX workbooks with the columns CUSIP, Option, Description,
Issue and Status.

Without flags, every PDF in the configured input directory is converted and
archived on success. With --file, a single PDF is converted in place.

Rows whose issuer and issue could not be divided carry the note
"See description column for issue type" in the Issue column. Each workbook
also contains a Total Count Check panel comparing the number of exported
rows against the total the PDF reports for itself; the difference is meant
for manual review, the export is never filtered by it.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert()
	},
}

// init registers the convert command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(
		&singleFile,
		"file",
		"",
		"Convert a single PDF file instead of scanning the input directory",
	)

	convertCmd.Flags().StringVar(
		&outputFile,
		"out",
		"",
		"Output workbook path (only valid together with --file)",
	)

	convertCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Parse and report without writing output files",
	)
}

// runConvert orchestrates the conversion run.
func runConvert() error {
	startTime := time.Now()

	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLogLevel(cfg.LogLevel)

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir)

	inputFiles, err := gatherInputFiles(fm)
	if err != nil {
		return err
	}
	if len(inputFiles) == 0 {
		fmt.Println("No PDF files found in the input directory.")
		return nil
	}

	fmt.Println("=== 13F to XLSX Converter ===")
	fmt.Printf("Found %d file(s) to convert\n", len(inputFiles))

	var successCount, errorCount, unsplitTotal int
	var logEntries []utils.ErrorLogEntry

	for _, file := range inputFiles {
		outPath := outputFile
		if outPath == "" {
			outPath = fm.GenerateOutputFileName(file, cfg.OutputNameFormat)
		}

		result := converter.New(file, outPath, cfg).WithDryRun(dryRun).Run()
		unsplitTotal += result.Stats.UnsplitRows

		for _, w := range result.Warnings {
			logEntries = append(logEntries, utils.ErrorLogEntry{
				FileName:   filepath.Base(file),
				SourceLine: w.SourceLine,
				FieldName:  w.Field,
				FieldValue: w.Value,
				Message:    w.Message,
			})
		}

		if !result.Success {
			errorCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), result.Error)
			continue
		}
		successCount++

		if dryRun {
			fmt.Printf("  ✓ %s (%d rows, dry run)\n", filepath.Base(file), result.Stats.RowsExtracted)
			continue
		}

		fmt.Printf("  ✓ %s -> %s (%d rows, reported %d)\n",
			filepath.Base(file), result.OutputFile,
			result.Stats.RowsExtracted, result.Stats.ReportedTotal)

		if !cfg.KeepInputs {
			if _, err := fm.ArchiveInputFile(file); err != nil {
				fmt.Printf("    warning: %v\n", err)
			}
		}
	}

	var logPath string
	if !dryRun {
		logPath, err = fm.WriteErrorLog(logEntries)
		if err != nil {
			fmt.Printf("  warning: %v\n", err)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Conversion Complete ===")
	fmt.Printf("Total files:   %d\n", len(inputFiles))
	fmt.Printf("Successful:    %d\n", successCount)
	fmt.Printf("Errors:        %d\n", errorCount)
	fmt.Printf("Unsplit rows:  %d (flagged in the Issue column)\n", unsplitTotal)
	if logPath != "" {
		fmt.Printf("Error log:     %s\n", logPath)
	}
	fmt.Printf("Time elapsed:  %s\n", elapsed)

	return nil
}

// gatherInputFiles resolves the list of PDFs to convert, either the single
// --file argument or the contents of the input directory.
//
// A missing --file path is rejected up front; the file-open would fail later
// anyway, but the explicit check gives a usable error instead of a failure
// deep inside the extraction library.
func gatherInputFiles(fm *utils.FileManager) ([]string, error) {
	if singleFile != "" {
		if _, err := os.Stat(singleFile); err != nil {
			return nil, fmt.Errorf("input file %s: %w", singleFile, err)
		}

		// The single-file path skips the input-directory scan, but the
		// output still needs somewhere to land.
		outDir := fm.OutputDir
		if outputFile != "" {
			outDir = filepath.Dir(outputFile)
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
		}

		return []string{singleFile}, nil
	}

	if outputFile != "" {
		return nil, fmt.Errorf("--out requires --file")
	}

	if err := fm.EnsureDirectories(); err != nil {
		return nil, err
	}

	return fm.DiscoverInputFiles()
}
