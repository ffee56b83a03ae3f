// =============================================================================
// 13F to XLSX Converter - Converter Module
// =============================================================================
//
// This module contains the per-file conversion pipeline. For one PDF it runs:
//
//   1. Extract the text blob and split it into non-blank lines
//   2. Scan every line: classify holding records, track the reported total
//   3. Split each combined description into Description and Issue
//   4. Collect record warnings (never fatal)
//   5. Write the workbook, then apply the cosmetic formatting pass
//
// The pipeline is strictly sequential and single-pass: every line is
// processed independently, the only cross-line state being the accumulated
// result table and the running "Total Count" value (last one wins).
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/classifier"
	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/config"
	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/pdfparser"
	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/splitter"
	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/types"
	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/validation"
	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/xlsxwriter"
)

// Result represents the outcome of converting a single file.
type Result struct {
	// FilePath is the path to the input PDF that was processed.
	FilePath string

	// OutputFile is the path to the generated workbook.
	// This is empty if processing failed or ran dry.
	OutputFile string

	// Success indicates whether the conversion was successful.
	Success bool

	// Error contains the error if conversion failed, nil otherwise.
	Error error

	// Stats contains processing statistics.
	Stats Stats

	// Warnings holds the record warnings collected while parsing, for the
	// run's error log. Stats.Warnings is their count.
	Warnings []validation.Warning
}

// Stats contains statistics about one conversion run.
type Stats struct {
	// LinesScanned is the number of non-blank text lines examined.
	LinesScanned int

	// RowsExtracted is the number of holding records classified.
	RowsExtracted int

	// UnsplitRows is the number of rows left with the fallback note in the
	// Issue column. These are the rows a human still has to divide.
	UnsplitRows int

	// ReportedTotal is the row count the PDF claims for itself
	// (0 when no usable "Total Count" line was found).
	ReportedTotal int

	// Warnings is the number of record warnings collected.
	Warnings int

	// ProcessingTime is the time taken to convert the file.
	ProcessingTime time.Duration
}

// Converter converts a single 13F PDF into an XLSX workbook.
type Converter struct {
	pdfPath    string
	outputPath string
	extractor  pdfparser.TextExtractor
	split      *splitter.Splitter
	dryRun     bool
}

// New creates a Converter for one input/output pair. The splitter is built
// from the built-in word lists plus any extras from the configuration.
func New(pdfPath, outputPath string, cfg *config.MainConfig) *Converter {
	return &Converter{
		pdfPath:    pdfPath,
		outputPath: outputPath,
		extractor:  pdfparser.NewPDFExtractor(),
		split:      splitter.New(cfg.ExtraStarterWords, cfg.ExtraEndWords),
	}
}

// WithExtractor substitutes the text-extraction boundary. Tests use it to
// run the pipeline against fixture text instead of a real PDF.
func (c *Converter) WithExtractor(e pdfparser.TextExtractor) *Converter {
	c.extractor = e
	return c
}

// WithDryRun parses and reports but skips all file writes.
func (c *Converter) WithDryRun(dryRun bool) *Converter {
	c.dryRun = dryRun
	return c
}

// Run executes the conversion pipeline for the file.
func (c *Converter) Run() Result {
	start := time.Now()

	result := Result{FilePath: c.pdfPath}

	holdings, stats, warnings, err := c.parse()
	if err != nil {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}
	result.Stats = stats
	result.Warnings = warnings

	if c.dryRun {
		slog.Info("dry run, skipping workbook write",
			slog.String("file", c.pdfPath),
			slog.Int("rows", len(holdings)))
		result.Success = true
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}

	if err := xlsxwriter.WriteHoldings(c.outputPath, holdings); err != nil {
		result.Error = fmt.Errorf("failed to write workbook: %w", err)
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}

	if err := xlsxwriter.FormatWorkbook(c.outputPath, stats.ReportedTotal, len(holdings)); err != nil {
		result.Error = fmt.Errorf("failed to format workbook: %w", err)
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}

	result.OutputFile = c.outputPath
	result.Success = true
	result.Stats.ProcessingTime = time.Since(start)
	return result
}

// parse runs the in-memory part of the pipeline: extraction, classification,
// count reconciliation, column splitting and validation.
func (c *Converter) parse() ([]types.Holding, Stats, []validation.Warning, error) {
	var stats Stats

	text, err := c.extractor.ExtractText(c.pdfPath)
	if err != nil {
		return nil, stats, nil, fmt.Errorf("failed to extract text: %w", err)
	}

	lines := pdfparser.SplitLines(text)
	stats.LinesScanned = len(lines)

	var holdings []types.Holding
	for i, line := range lines {
		// The reported total is tracked across the whole document; the
		// last "Total Count" line encountered wins.
		if count, ok := classifier.ParseTotalCount(line); ok {
			stats.ReportedTotal = count
		}

		classified, ok := classifier.ClassifyLine(line)
		if !ok {
			continue
		}

		description, issue := c.split.Split(classified.CombinedDescription)
		if issue == types.FallbackIssueNote {
			stats.UnsplitRows++
		}

		holdings = append(holdings, types.Holding{
			CUSIP:       classified.CUSIP,
			Option:      classified.Option,
			Description: description,
			Issue:       issue,
			Status:      classified.Status,
			SourceLine:  i + 1,
		})
	}
	stats.RowsExtracted = len(holdings)

	warnings := validation.CheckHoldings(holdings)
	stats.Warnings = len(warnings)
	for _, w := range warnings {
		slog.Warn("record warning",
			slog.String("file", c.pdfPath),
			slog.String("warning", w.String()))
	}

	slog.Info("parsed 13F list",
		slog.String("file", c.pdfPath),
		slog.Int("lines_scanned", stats.LinesScanned),
		slog.Int("rows_extracted", stats.RowsExtracted),
		slog.Int("unsplit_rows", stats.UnsplitRows),
		slog.Int("reported_total", stats.ReportedTotal))

	return holdings, stats, warnings, nil
}
