package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/13F-to-XLSX-conversion/internal/types"
)

func TestSplit(t *testing.T) {
	s := New(nil, nil)

	tests := []struct {
		name        string
		combined    string
		description string
		issue       string
	}{
		{
			name:        "common stock via starter word",
			combined:    "APPLE INC COM",
			description: "APPLE INC",
			issue:       "COM",
		},
		{
			name:        "multi-word starter wins over the ADR it contains",
			combined:    "ACME WIDGETS PLC SPONS ADR",
			description: "ACME WIDGETS PLC",
			issue:       "SPONS ADR",
		},
		{
			name:        "class shares",
			combined:    "ALPHABET INC CL A",
			description: "ALPHABET INC",
			issue:       "CL A",
		},
		{
			name:        "end word used when no starter matches",
			combined:    "ACME WIDGETS INC 7.5% NT",
			description: "ACME WIDGETS INC",
			issue:       "7.5% NT",
		},
		{
			name:        "standalone TR end word",
			combined:    "SELECT SECTOR TR XYZ",
			description: "SELECT SECTOR TR",
			issue:       "XYZ",
		},
		{
			name:        "no token at all falls back to the note",
			combined:    "ZYXWV QRSTU",
			description: "ZYXWV QRSTU",
			issue:       types.FallbackIssueNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			description, issue := s.Split(tt.combined)
			assert.Equal(t, tt.description, description)
			assert.Equal(t, tt.issue, issue)
		})
	}
}

// An end word must only match as a standalone word. "TRACTOR" contains "TR"
// but is no reason to split; the row falls through to the note instead.
func TestSplitEndWordIsWholeWord(t *testing.T) {
	s := New(nil, nil)

	description, issue := s.Split("CENTRAL TRACTOR")
	assert.Equal(t, "CENTRAL TRACTOR", description)
	assert.Equal(t, types.FallbackIssueNote, issue)
}

// The split point is the LAST occurrence of the winning token, so an issuer
// name that itself contains the token does not truncate the row early.
func TestSplitUsesLastOccurrence(t *testing.T) {
	s := New(nil, nil)

	description, issue := s.Split("ADR MASTERS ADR")
	assert.Equal(t, "ADR MASTERS", description)
	assert.Equal(t, "ADR", issue)
}

// For the non-fallback starter path, rejoining the halves with the single
// separator consumed at the split point reconstructs the input.
func TestSplitRoundTrip(t *testing.T) {
	s := New(nil, nil)

	for _, combined := range []string{
		"APPLE INC COM",
		"ACME WIDGETS PLC SPONS ADR",
		"ALPHABET INC CL A",
	} {
		description, issue := s.Split(combined)
		assert.Equal(t, combined, description+" "+issue)
	}
}

// Splitting an already-split issuer again must not change it: by
// construction it carries no starter or end token belonging to the issue
// side, so the second pass lands in the fallback and leaves it alone.
func TestSplitIdempotentOnIssuer(t *testing.T) {
	s := New(nil, nil)

	description, _ := s.Split("APPLE INC COM")
	again, issue := s.Split(description)
	assert.Equal(t, description, again)
	assert.Equal(t, types.FallbackIssueNote, issue)
}

func TestSplitExtraWords(t *testing.T) {
	s := New([]string{"WTS"}, []string{"GMBH"})

	// Extra starter word extends coverage.
	description, issue := s.Split("ACME HOLDINGS WTS")
	assert.Equal(t, "ACME HOLDINGS", description)
	assert.Equal(t, "WTS", issue)

	// Extra end word extends coverage.
	description, issue = s.Split("MUSTERMANN GMBH NPV")
	assert.Equal(t, "MUSTERMANN GMBH", description)
	assert.Equal(t, "NPV", issue)

	// Extras sit after the built-ins and cannot shadow them.
	description, issue = s.Split("ACME INC COM WTS")
	assert.Equal(t, "COM WTS", issue)
	assert.Equal(t, "ACME INC", description)
}
