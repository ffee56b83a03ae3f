// =============================================================================
// 13F to XLSX Converter - Column Splitter
// =============================================================================
//
// This module divides the flattened issuer+issue description of a holding
// into the Description and Issue columns. The PDF's column boundary is gone
// after text extraction, so the split point is recovered with two ordered
// keyword scans:
//
//   1. Starter scan: words known to BEGIN an issue-type description
//      ("SPONS ADR", "COM", "CL A", ...).
//   2. End scan: words known to END an issuer name ("INC", "CORP", "LTD",
//      ...), only consulted when the starter scan finds nothing.
//   3. Fallback: a fixed note in the Issue column asking the reader to split
//      the row by hand.
//
// LIST ORDER IS LOAD-BEARING. The lists are priority-ranked rule tables:
// the FIRST token in list order that occurs in the description wins, which
// is how "SPONS ADR" takes precedence over the "ADR" it contains. They must
// stay ordered slices - a map or set would silently break the precedence.
//
// The split point is the LAST occurrence of the winning token in the
// description. That is the right call when the token belongs to the issue
// text and the wrong one when the issuer name itself repeats it late; the
// trade-off is intentional and kept as is. Accuracy is improved by extending
// the word lists (config appends to the end of each), not by new mechanism.
//
// =============================================================================

package splitter

import (
	"strings"

	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/types"
)

// starterWords are tokens that begin issue-type descriptions, in priority
// order. Multi-word entries precede the shorter tokens they contain.
var starterWords = []string{
	"CALL", "PUT", "DEBT", "NAMEN", "*W", "ORDINARY", "RIGHT", "WBI",
	"NOTE", "USD ORD", "ORD SHS", "ORD SH", "USD MFC", "REG SHS", "SPONS ADR", "SPONS ADS", "SPON ADR",
	"SPON ADS", "SPONS ADS", "SPONSORD ADS", "SPONSORED", "SPONDS", "PHYSCL", "PRTNRSP", "PARTNERSHP",
	"SHS CL", "COM CL", "COM CLASS", " ORD", "COM STK", "COM UNIT", "CL A", "USD ORD", "ORD SH", "SHS CLASS",
	"UNIT COM", "ADR", "ADS", "COM", "UNIT", "ORD", "SHS", "CLASS", "S&P",
}

// endWords are tokens that end issuer names, in priority order.
var endWords = []string{
	"CORP N", "CORP NEW", "INC N", "INC NEW", "PLC", "LTD", "INC", "CORP", "HLDGS I", "HLDGS II", "HLDGS III",
	"HLDGS", "FD TR", "ETF TR", "BRH", "L P", " LP", "S A", "TR I", "TR II", "TR III", "FD I", "FD II",
	"FD III", "ETF TR", "FD T", "TRADED FD", "FD I", "FD II", "FD III", "TR", "FDS", "FD", "TRUST",
}

// Splitter divides combined descriptions using the built-in word lists,
// optionally extended with extra words appended after them.
type Splitter struct {
	starters []string
	ends     []string
}

// New creates a Splitter. extraStarters and extraEnds are appended to the
// END of the respective built-in lists, so they can only add coverage,
// never shadow a built-in token.
func New(extraStarters, extraEnds []string) *Splitter {
	s := &Splitter{
		starters: append(append([]string{}, starterWords...), extraStarters...),
		ends:     append(append([]string{}, endWords...), extraEnds...),
	}
	return s
}

// Split divides a combined description into (issuer description, issue
// description). When neither scan finds a token, the issuer text is returned
// uncorrected and the issue column carries types.FallbackIssueNote.
func (s *Splitter) Split(combined string) (description, issue string) {
	if starter, ok := s.checkStarter(combined); ok {
		return splitAtStarter(combined, starter)
	}
	if end, ok := s.checkEnd(combined); ok {
		return splitAtEnd(combined, end)
	}
	return combined, types.FallbackIssueNote
}

// checkStarter returns the first starter word (in list order) that occurs in
// the description preceded by a space.
func (s *Splitter) checkStarter(des string) (string, bool) {
	for _, starter := range s.starters {
		if strings.Contains(des, " "+starter) {
			return starter, true
		}
	}
	return "", false
}

// checkEnd returns the first end word (in list order) that occurs in the
// description as a standalone word. Both the description and the candidate
// are reversed and the reversed token is required to be surrounded by
// spaces, which makes this a whole-word scan over the tail region: "TR"
// matches the token "TR" but never the suffix of "PRINTING".
func (s *Splitter) checkEnd(des string) (string, bool) {
	reverseDes := reverse(des)

	for _, end := range s.ends {
		if strings.Contains(reverseDes, " "+reverse(end)+" ") {
			return strings.TrimSpace(end), true
		}
	}
	return "", false
}

// splitAtStarter cuts at the LAST occurrence of the starter: everything from
// there on is the issue, everything before it (minus the separating space)
// is the issuer.
func splitAtStarter(des, starter string) (string, string) {
	idx := strings.LastIndex(des, starter)
	issue := strings.TrimSpace(des[idx:])
	description := strings.TrimSpace(des[:idx-1])
	return description, issue
}

// splitAtEnd cuts after the LAST occurrence of "end ": the issuer keeps the
// end word, the remainder is the issue.
func splitAtEnd(des, end string) (string, string) {
	idx := strings.LastIndex(des, end+" ")
	issue := strings.TrimSpace(des[idx+len(end):])
	description := strings.TrimSpace(des[:idx+len(end)])
	return description, issue
}

// reverse returns s with its bytes in reverse order. The 13F list is plain
// ASCII, so byte reversal is sufficient for the reversed-containment scan.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
