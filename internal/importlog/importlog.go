// Package importlog records every imported statement file in a CSV audit log
// kept next to the ledger.
package importlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one imported file.
type Entry struct {
	RunID        uuid.UUID // shared by every file of one import command
	Timestamp    time.Time
	File         string
	Format       string
	Transactions int
	CommitHash   string // empty when the import was not committed
}

// Header is the CSV header for import-log.csv.
const Header = "run_id,timestamp,file,format,transactions,commit_hash"

const (
	numFields       = 6
	logDir          = "logs"
	logFile         = "logs/import-log.csv"
	colRunID        = 0
	colTimestamp    = 1
	colFile         = 2
	colFormat       = 3
	colTransactions = 4
	colCommitHash   = 5
)

// NewRunID returns a fresh identifier for one import run.
func NewRunID() uuid.UUID { return uuid.New() }

// Path returns the log location inside repoRoot.
func Path(repoRoot string) string { return filepath.Join(repoRoot, logFile) }

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID.String()
	row[colTimestamp] = e.Timestamp.UTC().Format(time.RFC3339)
	row[colFile] = e.File
	row[colFormat] = e.Format
	row[colTransactions] = strconv.Itoa(e.Transactions)
	row[colCommitHash] = e.CommitHash
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := uuid.Parse(record[colRunID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing run id %q: %w", record[colRunID], err)
	}
	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	n, err := strconv.Atoi(record[colTransactions])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing transaction count %q: %w", record[colTransactions], err)
	}

	return Entry{
		RunID:        id,
		Timestamp:    ts,
		File:         record[colFile],
		Format:       record[colFormat],
		Transactions: n,
		CommitHash:   record[colCommitHash],
	}, nil
}

// Append writes entries to <repoRoot>/logs/import-log.csv, creating the file
// and header if needed.
func Append(repoRoot string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Join(repoRoot, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := Path(repoRoot)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <repoRoot>/logs/import-log.csv. A missing
// file yields no entries.
func Read(repoRoot string) ([]Entry, error) {
	f, err := os.Open(Path(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
