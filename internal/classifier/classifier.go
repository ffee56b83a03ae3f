// =============================================================================
// 13F to XLSX Converter - Line Classifier
// =============================================================================
//
// This module decides, line by line, whether a flattened text line encodes a
// holding record, and slices a matching line into its fields.
//
// RECORD LAYOUT:
//   A record line starts with the CUSIP as printed in the 13F list: nine
//   identifier characters in a 6-2-1 layout with a space between each group,
//   e.g. "G8827W 10 3". The positional pattern below matches exactly that
//   span. Everything that fails the pattern (page headers, footers, the
//   column legend) is dropped silently - most lines of the document are
//   expected to fail it.
//
// FIELD SLICING (on a matching line):
//   CUSIP   = the matched span.
//   Option  = "*" when the character one past the span is "*".
//   Rest    = between the CUSIP/option region and the trailing status token,
//             trimmed. This is the combined issuer+issue description that the
//             splitter divides afterwards.
//   Status  = "ADDED" or "DELETED" when the line ends with one of them
//             (checked in that order; the suffixes are mutually exclusive).
//
// The classifier also hosts the count reconciler: the document reports its
// own row total on a "Total Count" line, which is parsed for the workbook's
// count-check panel and never used to gate rows.
//
// =============================================================================

package classifier

import (
	"regexp"
	"strconv"
	"strings"
)

// recordPattern matches the CUSIP span at the start of a holding line:
// any character, one digit, any four characters, whitespace, any two
// characters, whitespace, any one character. The span covers eleven
// characters: the nine CUSIP characters plus the two internal spaces.
var recordPattern = regexp.MustCompile(`^.\d.{4}\s.{2}\s.`)

// totalCountMarker identifies the line carrying the document's self-reported
// row total.
const totalCountMarker = "Total Count"

// Classified is the partial record produced from one matching line. The
// combined description still holds both the issuer name and the issue type;
// the splitter divides it in a later pass.
type Classified struct {
	// CUSIP is the matched identifier span, exactly as printed.
	CUSIP string

	// Option is "*" or "".
	Option string

	// CombinedDescription is the flattened issuer+issue text, trimmed.
	CombinedDescription string

	// Status is "ADDED", "DELETED", or "".
	Status string
}

// ClassifyLine reports whether line encodes a holding record and, if so,
// returns its sliced fields.
//
// A line matching the pattern but too short to carry anything after the
// CUSIP span is skipped rather than treated as fatal: a truncated line
// cannot be a holding, and one malformed line must not abort a run.
func ClassifyLine(line string) (Classified, bool) {
	loc := recordPattern.FindStringIndex(line)
	if loc == nil {
		return Classified{}, false
	}
	spanEnd := loc[1]

	// The character directly after the span is a column separator; the star
	// check looks one past it. Lines that end inside that region are
	// truncated and carry no description.
	if len(line) <= spanEnd+1 {
		return Classified{}, false
	}

	c := Classified{CUSIP: line[loc[0]:spanEnd]}

	descStart := spanEnd + 1
	if line[spanEnd+1] == '*' {
		c.Option = "*"
		// Skip over "* " to the description text.
		descStart = spanEnd + 3
	}
	if descStart > len(line) {
		return Classified{}, false
	}

	rest := line[descStart:]
	if strings.HasSuffix(rest, "ADDED") {
		c.Status = "ADDED"
		rest = strings.TrimSuffix(rest, "ADDED")
	} else if strings.HasSuffix(rest, "DELETED") {
		c.Status = "DELETED"
		rest = strings.TrimSuffix(rest, "DELETED")
	}
	c.CombinedDescription = strings.TrimSpace(rest)

	return c, true
}

// ParseTotalCount reports whether line is a "Total Count" line and, if so,
// returns the reported row total.
//
// The total sits in the last six characters of the line, printed with a
// thousands separator. A line that carries the marker but no parseable
// number is not a hit: the reported count simply stays at its previous
// value, and the workbook's Difference cell surfaces the gap to the user.
func ParseTotalCount(line string) (int, bool) {
	if !strings.Contains(line, totalCountMarker) {
		return 0, false
	}

	tail := line
	if len(line) > 6 {
		tail = line[len(line)-6:]
	}
	tail = strings.ReplaceAll(strings.TrimSpace(tail), ",", "")

	count, err := strconv.Atoi(tail)
	if err != nil {
		return 0, false
	}
	return count, true
}
