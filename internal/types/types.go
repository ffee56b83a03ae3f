// =============================================================================
// 13F to XLSX Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - classifier
//   - splitter
//   - validation
//   - xlsxwriter
//   - converter
//
// =============================================================================

package types

// FallbackIssueNote is written to the Issue column when neither keyword scan
// can divide a combined description. The row is kept and a human resolves it
// from the Description column.
const FallbackIssueNote = "See description column for issue type"

// Status values carried in the rightmost column of the 13F table. A holding
// with neither suffix has an empty status.
const (
	StatusAdded   = "ADDED"
	StatusDeleted = "DELETED"
)

// Holding represents one security-holding row of the 13F list.
//
// The field order mirrors the exported column order exactly:
// CUSIP | Option | Description | Issue | Status.
type Holding struct {
	// CUSIP is the full matched identifier span as printed in the PDF,
	// including the two internal spaces of the 6-2-1 layout
	// (e.g. "G8827W 10 3"). Always non-empty for any exported row.
	CUSIP string

	// Option is "*" when the row is an option listing, otherwise "".
	Option string

	// Description is the issuer name portion of the flattened description.
	Description string

	// Issue is the issue-type portion, or FallbackIssueNote when the
	// split could not be made. Never empty on an exported row.
	Issue string

	// Status is StatusAdded, StatusDeleted, or "" when the row carries
	// no quarter-over-quarter change marker.
	Status string

	// SourceLine is the 1-indexed position of the originating line in the
	// extracted text. Used for warnings, never exported.
	SourceLine int
}
