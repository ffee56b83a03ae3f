// =============================================================================
// 13F to XLSX Converter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the converter:
//   - Input discovery (PDF files in the input directory)
//   - Output file naming
//   - Archival of processed PDFs
//   - Directory management
//   - Error log generation (record warnings collected during a run)
//
// ARCHIVAL STRATEGY:
//   - Input PDFs are moved to the input archive after successful conversion
//   - Failed files remain in their original location
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileManager handles file operations for the converter.
type FileManager struct {
	// InputDir is the directory scanned for input PDFs.
	InputDir string

	// OutputDir is the directory where workbooks are placed.
	OutputDir string

	// InputArchiveDir is the directory for archived input PDFs.
	InputArchiveDir string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(inputDir, outputDir, inputArchiveDir string) *FileManager {
	return &FileManager{
		InputDir:        inputDir,
		OutputDir:       outputDir,
		InputArchiveDir: inputArchiveDir,
	}
}

// EnsureDirectories creates all required directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{
		fm.InputDir,
		fm.OutputDir,
		fm.InputArchiveDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// DiscoverInputFiles returns the PDF files in the input directory, sorted by
// name. The scan is flat; the drop directory is not nested.
func (fm *FileManager) DiscoverInputFiles() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(fm.InputDir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("failed to list input files: %w", err)
	}

	// Windows drops tend to arrive upper-cased.
	upper, err := filepath.Glob(filepath.Join(fm.InputDir, "*.PDF"))
	if err != nil {
		return nil, fmt.Errorf("failed to list input files: %w", err)
	}
	files = append(files, upper...)
	sort.Strings(files)

	return files, nil
}

// GenerateOutputFileName builds the workbook name for an input file from the
// configured format. Supported placeholders:
//
//	{name}      - input file name without extension
//	{timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//	{uuid}      - a random UUID
func (fm *FileManager) GenerateOutputFileName(inputPath, format string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	out := format
	out = strings.ReplaceAll(out, "{name}", name)
	out = strings.ReplaceAll(out, "{timestamp}", time.Now().Format("20060102_150405"))
	out = strings.ReplaceAll(out, "{uuid}", uuid.New().String())

	return filepath.Join(fm.OutputDir, out)
}

// ArchiveInputFile moves a processed PDF into the input archive. When a file
// with the same name is already archived, a numeric suffix is appended
// rather than overwriting the earlier copy.
func (fm *FileManager) ArchiveInputFile(inputPath string) (string, error) {
	target := filepath.Join(fm.InputArchiveDir, filepath.Base(inputPath))
	target = uniquePath(target)

	if err := moveFile(inputPath, target); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", inputPath, err)
	}

	return target, nil
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// ErrorLogEntry represents a single entry in the run's error log. Entries
// flag rows that need manual review, they never block the export.
type ErrorLogEntry struct {
	FileName   string
	SourceLine int
	FieldName  string
	FieldValue string
	Message    string
}

// WriteErrorLog writes the collected record warnings to a timestamped log
// file in the output directory and returns its path. No file is written
// when there are no entries.
func (fm *FileManager) WriteErrorLog(entries []ErrorLogEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	logName := fmt.Sprintf("error_log_%s.txt", time.Now().Format("20060102_150405"))
	logPath := filepath.Join(fm.OutputDir, logName)

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	fmt.Fprintf(writer, "13F to XLSX Converter - Error Log\n"+
		"Generated: %s\n"+
		"Total Warnings: %d\n"+
		"================================================================================\n\n",
		time.Now().Format("2006-01-02 15:04:05"),
		len(entries))

	for i, entry := range entries {
		fmt.Fprintf(writer, "Warning #%d\n", i+1)
		fmt.Fprintf(writer, "  File:    %s\n", entry.FileName)
		fmt.Fprintf(writer, "  Line:    %d\n", entry.SourceLine)
		fmt.Fprintf(writer, "  Field:   %s\n", entry.FieldName)
		fmt.Fprintf(writer, "  Value:   %s\n", entry.FieldValue)
		fmt.Fprintf(writer, "  Message: %s\n\n", entry.Message)
	}

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}

	return logPath, nil
}

// uniquePath returns path, or path with "_1", "_2", ... inserted before the
// extension until the name is unused.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// moveFile renames src to dst, falling back to copy-and-delete when the
// rename crosses file systems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
