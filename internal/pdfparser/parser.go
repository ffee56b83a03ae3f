// =============================================================================
// 13F to XLSX Converter - PDF Text Extraction
// =============================================================================
//
// This module is the input boundary of the pipeline. Text extraction itself
// is delegated to the ledongthuc/pdf library; all this package adds is:
//   - A TextExtractor interface, so the pipeline can be tested without
//     real PDF files.
//   - Line splitting of the extracted blob, discarding blank lines.
//
// The 13F list is a fixed-format government filing. Once flattened to text,
// the table structure is gone and every downstream step works on raw lines.
//
// =============================================================================

package pdfparser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor extracts the full plain-text content of a document.
// The production implementation wraps ledongthuc/pdf; tests substitute a
// fixture-backed implementation.
type TextExtractor interface {
	// ExtractText returns the text content of the file at path as one blob.
	ExtractText(path string) (string, error)
}

// PDFExtractor implements TextExtractor using ledongthuc/pdf.
type PDFExtractor struct{}

// NewPDFExtractor creates the production extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText extracts plain text from a PDF file.
func (e *PDFExtractor) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text := buf.String()
	if text == "" {
		return "", fmt.Errorf("no text extracted from PDF")
	}

	return text, nil
}

// StaticExtractor implements TextExtractor with a fixed blob. It backs tests
// and lets the pipeline run against pre-extracted text dumps.
type StaticExtractor struct {
	Text string
	Err  error
}

// ExtractText returns the configured blob or error, ignoring the path.
func (e *StaticExtractor) ExtractText(path string) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	return e.Text, nil
}

// SplitLines breaks an extracted text blob into lines, dropping lines that
// are empty after trimming. The surviving lines keep their original content;
// trimming is only applied to decide whether a line is blank.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
