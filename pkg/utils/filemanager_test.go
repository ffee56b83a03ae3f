package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileManager(t *testing.T) *FileManager {
	t.Helper()
	root := t.TempDir()
	fm := NewFileManager(
		filepath.Join(root, "input"),
		filepath.Join(root, "output"),
		filepath.Join(root, "input_archive"),
	)
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0644))
}

func TestEnsureDirectories(t *testing.T) {
	fm := newTestFileManager(t)

	for _, dir := range []string{fm.InputDir, fm.OutputDir, fm.InputArchiveDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestDiscoverInputFiles(t *testing.T) {
	fm := newTestFileManager(t)

	touch(t, filepath.Join(fm.InputDir, "13flist2021q2.pdf"))
	touch(t, filepath.Join(fm.InputDir, "13FLIST2021Q3.PDF"))
	touch(t, filepath.Join(fm.InputDir, "notes.txt"))

	files, err := fm.DiscoverInputFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.NotContains(t, f, "notes.txt")
	}
}

// The two glob passes (.pdf and .PDF) must come back as one name-ordered
// list, not as two concatenated lists.
func TestDiscoverInputFilesSortedByName(t *testing.T) {
	fm := newTestFileManager(t)

	touch(t, filepath.Join(fm.InputDir, "13flist2021q2.pdf"))
	touch(t, filepath.Join(fm.InputDir, "13FLIST2020Q4.PDF"))
	touch(t, filepath.Join(fm.InputDir, "13flist2021q3.pdf"))

	files, err := fm.DiscoverInputFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(fm.InputDir, "13FLIST2020Q4.PDF"),
		filepath.Join(fm.InputDir, "13flist2021q2.pdf"),
		filepath.Join(fm.InputDir, "13flist2021q3.pdf"),
	}, files)
}

func TestGenerateOutputFileName(t *testing.T) {
	fm := newTestFileManager(t)

	out := fm.GenerateOutputFileName("/somewhere/13flist2021q2.pdf", "{name}.xlsx")
	assert.Equal(t, filepath.Join(fm.OutputDir, "13flist2021q2.xlsx"), out)

	out = fm.GenerateOutputFileName("/somewhere/13flist2021q2.pdf", "{name}_{timestamp}_{uuid}.xlsx")
	base := filepath.Base(out)
	assert.True(t, strings.HasPrefix(base, "13flist2021q2_"))
	assert.True(t, strings.HasSuffix(base, ".xlsx"))
	assert.NotContains(t, base, "{")
	assert.NotContains(t, base, "}")
}

func TestWriteErrorLog(t *testing.T) {
	fm := newTestFileManager(t)

	entries := []ErrorLogEntry{
		{
			FileName:   "13flist2021q2.pdf",
			SourceLine: 40,
			FieldName:  "Issue",
			FieldValue: "See description column for issue type",
			Message:    "could not split issuer and issue, review by hand",
		},
		{
			FileName:   "13flist2021q2.pdf",
			SourceLine: 52,
			FieldName:  "Status",
			FieldValue: "REMOVED",
			Message:    "unexpected status value",
		},
	}

	logPath, err := fm.WriteErrorLog(entries)
	require.NoError(t, err)
	assert.Equal(t, fm.OutputDir, filepath.Dir(logPath))
	assert.True(t, strings.HasPrefix(filepath.Base(logPath), "error_log_"))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "Total Warnings: 2")
	assert.Contains(t, text, "Warning #1")
	assert.Contains(t, text, "Line:    40")
	assert.Contains(t, text, "could not split issuer and issue, review by hand")
	assert.Contains(t, text, "REMOVED")
}

// A clean run leaves no log file behind.
func TestWriteErrorLogNoEntries(t *testing.T) {
	fm := newTestFileManager(t)

	logPath, err := fm.WriteErrorLog(nil)
	require.NoError(t, err)
	assert.Empty(t, logPath)

	matches, err := filepath.Glob(filepath.Join(fm.OutputDir, "error_log_*.txt"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestArchiveInputFile(t *testing.T) {
	fm := newTestFileManager(t)

	src := filepath.Join(fm.InputDir, "13flist2021q2.pdf")
	touch(t, src)

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.NoFileExists(t, src)
	assert.FileExists(t, archived)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "13flist2021q2.pdf"), archived)
}

// Archiving a second file with the same name must not overwrite the first.
func TestArchiveInputFileDoesNotOverwrite(t *testing.T) {
	fm := newTestFileManager(t)

	src := filepath.Join(fm.InputDir, "13flist2021q2.pdf")
	touch(t, src)
	first, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	touch(t, src)
	second, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.FileExists(t, first)
	assert.FileExists(t, second)
	assert.Contains(t, filepath.Base(second), "_1")
}
