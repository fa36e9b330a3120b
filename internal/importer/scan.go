package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ImportDir is the subdirectory that holds statements waiting to be imported.
const ImportDir = "import"

// processedDir receives statements once they are in the ledger.
const processedDir = "import/processed"

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name   string
	Path   string
	Size   int64
	Format string // "" when no registered parser matches the header
}

// Scan returns CSV files in <repoRoot>/import/, with the bank format each
// one's header matches in registry.
func Scan(repoRoot string, registry *Registry) ([]FileInfo, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	dir := filepath.Join(repoRoot, ImportDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		path := filepath.Join(dir, e.Name())
		format, err := DetectFormat(path, registry)
		if err != nil {
			return nil, err
		}
		files = append(files, FileInfo{
			Name:   e.Name(),
			Path:   path,
			Size:   info.Size(),
			Format: format,
		})
	}
	return files, nil
}

// DetectFormat returns the format whose header matches the first row of the
// file at path, or "" when none does.
func DetectFormat(path string, registry *Registry) (string, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		// Empty or unreadable files simply have no format.
		return "", nil
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	if p := registry.Match(trimFields(header)); p != nil {
		return p.Format(), nil
	}
	return "", nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(repoRoot, fileName string) error {
	src := filepath.Join(repoRoot, ImportDir, fileName)
	dstDir := filepath.Join(repoRoot, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
