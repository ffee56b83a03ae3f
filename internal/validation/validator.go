// =============================================================================
// 13F to XLSX Converter - Record Validation
// =============================================================================
//
// This module inspects classified holdings and collects warnings for rows
// that look suspicious. The 13F layout is fixed, so the checks are few:
//   - CUSIP span length (the printed 6-2-1 layout is always 11 characters)
//   - rows the splitter left unsplit (fallback note in the Issue column)
//   - unexpected status value
//
// ERROR HANDLING:
//   Warnings are collected, never thrown. The tool's contract is to export
//   every row that classified and let the user review the workbook; a
//   warning only tells them where to look first.
//
// =============================================================================

package validation

import (
	"fmt"

	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/types"
)

// cusipSpanLength is the printed width of the identifier: nine CUSIP
// characters plus the two internal spaces of the 6-2-1 layout.
const cusipSpanLength = 11

// Warning flags a single suspicious holding. It never blocks export.
type Warning struct {
	// SourceLine is the 1-indexed line number in the extracted text.
	SourceLine int

	// Field is the name of the exported column the warning refers to.
	Field string

	// Value is the actual value that triggered the warning.
	Value string

	// Message is a human-readable description.
	Message string
}

// String renders the warning for log output.
func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s %q: %s", w.SourceLine, w.Field, w.Value, w.Message)
}

// CheckHoldings inspects every holding and returns the collected warnings,
// in row order.
func CheckHoldings(holdings []types.Holding) []Warning {
	var warnings []Warning

	for _, h := range holdings {
		if len(h.CUSIP) != cusipSpanLength {
			warnings = append(warnings, Warning{
				SourceLine: h.SourceLine,
				Field:      "CUSIP",
				Value:      h.CUSIP,
				Message:    fmt.Sprintf("span is %d characters, expected %d", len(h.CUSIP), cusipSpanLength),
			})
		}

		if h.Issue == types.FallbackIssueNote {
			warnings = append(warnings, Warning{
				SourceLine: h.SourceLine,
				Field:      "Issue",
				Value:      h.Description,
				Message:    "could not split issuer and issue, review by hand",
			})
		}

		switch h.Status {
		case types.StatusAdded, types.StatusDeleted, "":
		default:
			warnings = append(warnings, Warning{
				SourceLine: h.SourceLine,
				Field:      "Status",
				Value:      h.Status,
				Message:    "unexpected status value",
			})
		}
	}

	return warnings
}
