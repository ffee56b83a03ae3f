package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/13F-to-XLSX-conversion/pkg/utils"
)

// setConvertFlags sets the convert command's flag variables for the duration
// of one test and restores them afterwards.
func setConvertFlags(t *testing.T, file, out string) {
	t.Helper()
	prevFile, prevOut := singleFile, outputFile
	singleFile, outputFile = file, out
	t.Cleanup(func() { singleFile, outputFile = prevFile, prevOut })
}

func testFileManager(root string) *utils.FileManager {
	return utils.NewFileManager(
		filepath.Join(root, "input"),
		filepath.Join(root, "output"),
		filepath.Join(root, "input_archive"),
	)
}

// Converting a single file must create the output directory the workbook
// lands in, just like the directory-scan path does.
func TestGatherInputFilesSingleFileCreatesOutputDir(t *testing.T) {
	root := t.TempDir()
	pdf := filepath.Join(root, "13flist2021q2.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("stub"), 0644))

	setConvertFlags(t, pdf, "")
	fm := testFileManager(root)

	files, err := gatherInputFiles(fm)
	require.NoError(t, err)
	assert.Equal(t, []string{pdf}, files)
	assert.DirExists(t, fm.OutputDir)
}

func TestGatherInputFilesOutFlagCreatesParentDir(t *testing.T) {
	root := t.TempDir()
	pdf := filepath.Join(root, "13flist2021q2.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("stub"), 0644))

	out := filepath.Join(root, "reports", "q2", "13flist2021q2.xlsx")
	setConvertFlags(t, pdf, out)
	fm := testFileManager(root)

	_, err := gatherInputFiles(fm)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Dir(out))
}

func TestGatherInputFilesMissingFile(t *testing.T) {
	root := t.TempDir()
	setConvertFlags(t, filepath.Join(root, "nope.pdf"), "")

	_, err := gatherInputFiles(testFileManager(root))
	assert.Error(t, err)
}

func TestGatherInputFilesOutWithoutFile(t *testing.T) {
	root := t.TempDir()
	setConvertFlags(t, "", filepath.Join(root, "out.xlsx"))

	_, err := gatherInputFiles(testFileManager(root))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out requires --file")
}
