// =============================================================================
// 13F to XLSX Converter - XLSX Writer
// =============================================================================
//
// This module writes the final workbook. The write is two-pass, matching the
// tool's output contract:
//
//   DATA PASS:
//     Sheet1 gets one header row (CUSIP | Option | Description | Issue |
//     Status) and one row per holding, in source order. No row index, no
//     sorting, no deduplication.
//
//   COSMETIC PASS (file reopened and mutated in place):
//     - Count-check side panel in G1:H4. H4 holds the formula H2-H3, so
//       the spreadsheet itself computes the difference between the count
//       the PDF reports and the rows actually exported. A mismatch is
//       surfaced to the user, never "fixed".
//     - Comma [0] number style on the panel figures.
//     - An autofilter spanning all data rows and the five data columns.
//     - Column widths sized to the longest string present in each column.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/types"
)

// SheetName is the sheet holding the exported table.
const SheetName = "Sheet1"

// Headers is the exported column schema. Order matters and is part of the
// output contract.
var Headers = []string{"CUSIP", "Option", "Description", "Issue", "Status"}

// numFmtComma is the builtin "Comma [0]" number format (#,##0).
const numFmtComma = 3

// WriteHoldings writes the data pass: header row plus one row per holding,
// in order, to a new workbook at path.
func WriteHoldings(path string, holdings []types.Holding) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, h := range holdings {
		row := []interface{}{h.CUSIP, h.Option, h.Description, h.Issue, h.Status}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// FormatWorkbook applies the cosmetic pass to an already-written workbook:
// count-check panel, number styles, autofilter and column widths.
//
// reportedTotal is the count the PDF claims for itself (0 when no usable
// "Total Count" line was found - the resulting large Difference is the
// intended signal that something is off). rowCount is the number of data
// rows actually written.
func FormatWorkbook(path string, reportedTotal, rowCount int) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to reopen workbook: %w", err)
	}
	defer f.Close()

	// Count-check panel.
	panel := map[string]interface{}{
		"G1": "Total Count Check:",
		"G2": "Per 13F PDF file:",
		"G3": "Per Converted Excel Here:",
		"G4": "Difference:",
		"H2": reportedTotal,
		"H3": rowCount,
	}
	for cell, value := range panel {
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}

	// The workbook computes the difference itself.
	if err := f.SetCellFormula(SheetName, "H4", "H2-H3"); err != nil {
		return fmt.Errorf("failed to set difference formula: %w", err)
	}

	// Comma style on the panel figures.
	styleID, err := f.NewStyle(&excelize.Style{NumFmt: numFmtComma})
	if err != nil {
		return fmt.Errorf("failed to create comma style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "H1", "H4", styleID); err != nil {
		return fmt.Errorf("failed to apply comma style: %w", err)
	}

	// Filter over header plus all data rows, five data columns.
	filterRange := fmt.Sprintf("A1:E%d", rowCount+1)
	if err := f.AutoFilter(SheetName, filterRange, nil); err != nil {
		return fmt.Errorf("failed to add autofilter: %w", err)
	}

	if err := autoSizeColumns(f); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// autoSizeColumns sets each populated column's width to the length of its
// longest cell value. Plain max-length measurement, nothing content-aware.
func autoSizeColumns(f *excelize.File) error {
	rows, err := f.GetRows(SheetName)
	if err != nil {
		return fmt.Errorf("failed to read workbook back: %w", err)
	}

	widths := make(map[int]int)
	for _, row := range rows {
		for i, cell := range row {
			if cell == "" {
				continue
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(SheetName, col, col, float64(width)); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	return nil
}
