package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImport(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, ImportDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	rbc, err := os.ReadFile("../../testdata/rbc_chequing.csv")
	require.NoError(t, err)

	writeImport(t, root, "rbc.csv", string(rbc))
	writeImport(t, root, "TANGERINE.CSV", tangerineHeaderLine+"\n")
	writeImport(t, root, "unknown.csv", "Foo,Bar\n")
	writeImport(t, root, "empty.csv", "")
	writeImport(t, root, "notes.txt", "not a statement")
	require.NoError(t, os.MkdirAll(filepath.Join(root, processedDir), 0o755))

	files, err := Scan(root, nil)
	require.NoError(t, err)
	require.Len(t, files, 4)

	byName := make(map[string]FileInfo)
	for _, f := range files {
		byName[f.Name] = f
	}
	assert.Equal(t, "rbc", byName["rbc.csv"].Format)
	assert.Equal(t, int64(len(rbc)), byName["rbc.csv"].Size)
	assert.Equal(t, filepath.Join(root, ImportDir, "rbc.csv"), byName["rbc.csv"].Path)
	assert.Equal(t, "tangerine", byName["TANGERINE.CSV"].Format)
	assert.Empty(t, byName["unknown.csv"].Format)
	assert.Empty(t, byName["empty.csv"].Format)
}

func TestScan_NoImportDir(t *testing.T) {
	files, err := Scan(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	root := t.TempDir()
	writeImport(t, root, "stmt.csv", tangerineHeaderLine+"\n")

	require.NoError(t, MarkProcessed(root, "stmt.csv"))

	_, err := os.Stat(filepath.Join(root, ImportDir, "stmt.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, processedDir, "stmt.csv"))
	assert.NoError(t, err)

	files, err := Scan(root, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMarkProcessed_Missing(t *testing.T) {
	err := MarkProcessed(t.TempDir(), "nope.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moving nope.csv")
}

func TestDetectFormat(t *testing.T) {
	format, err := DetectFormat("../../testdata/chase_checking.csv", nil)
	require.NoError(t, err)
	assert.Equal(t, "chase", format)

	_, err = DetectFormat("../../testdata/missing.csv", nil)
	assert.Error(t, err)
}
