// Package importer turns bank CSV exports into ledger transactions.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/beanport/internal/journal"
	"github.com/cleared-dev/beanport/internal/model"
	"github.com/cleared-dev/beanport/internal/rules"
)

// State is the lifecycle stage of an Importer.
type State int

const (
	StateReady State = iota
	StateReading
	StateDone
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateReading:
		return "reading"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures an import.
type Options struct {
	Account   model.Account   // the statement's own account
	Commodity model.Commodity // currency of the statement
	Rules     *rules.Tables   // nil uses rules.Default()
	Registry  *Registry       // nil uses DefaultRegistry()
}

// ImportedTransaction pairs a built transaction with the bank's raw text.
type ImportedTransaction struct {
	Transaction         model.Transaction
	OriginalDescription string
}

// Importer reads one CSV file sequentially and builds a ledger from it.
type Importer struct {
	cr       *csv.Reader
	header   []string
	parser   Parser
	account  model.Account
	currency model.Commodity
	rules    *rules.Tables
	state    State
	row      int
	imported []ImportedTransaction
}

// utf8BOM prefixes some bank exports.
const utf8BOM = "\ufeff"

// Open reads the header row of r and selects the bank parser whose header
// matches it exactly. Returns ErrUnsupportedFormat when none does.
func Open(r io.Reader, opts Options) (*Importer, error) {
	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}
	tables := opts.Rules
	if tables == nil {
		tables = rules.Default()
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	header = trimFields(header)

	p := registry.Match(header)
	if p == nil {
		return nil, fmt.Errorf("%w: header %q", ErrUnsupportedFormat, header)
	}
	if cp, ok := p.(CommodityParser); ok {
		p = cp.ForCommodity(opts.Commodity)
	}

	return &Importer{
		cr:       cr,
		header:   header,
		parser:   p,
		account:  opts.Account,
		currency: opts.Commodity,
		rules:    tables,
		state:    StateReady,
		row:      1,
	}, nil
}

// Format returns the selected parser's format name.
func (im *Importer) Format() string { return im.parser.Format() }

// State returns the current lifecycle state.
func (im *Importer) State() State { return im.state }

// Imported returns the transactions of a successful Import together with the
// raw bank descriptions they came from.
func (im *Importer) Imported() []ImportedTransaction { return im.imported }

// Import reads every remaining row and returns the ledger in row order. The
// first malformed row aborts the whole import and no transactions are
// returned. An Importer can only be run once.
func (im *Importer) Import() (*model.Ledger, error) {
	if im.state == StateDone {
		return nil, ErrImportFinished
	}

	ledger := model.NewLedger()
	var imported []ImportedTransaction
	for {
		rec, err := im.cr.Read()
		if errors.Is(err, io.EOF) {
			im.state = StateDone
			im.imported = imported
			return ledger, nil
		}
		im.state = StateReading
		im.row++
		if err != nil {
			im.state = StateDone
			return nil, fmt.Errorf("row %d: reading %s CSV: %w", im.row, im.parser.Format(), err)
		}

		txn, original, err := im.parseRecord(rec)
		if err != nil {
			im.state = StateDone
			return nil, err
		}
		ledger.Add(txn)
		imported = append(imported, ImportedTransaction{Transaction: txn, OriginalDescription: original})
	}
}

func (im *Importer) parseRecord(rec []string) (model.Transaction, string, error) {
	raw, err := im.parser.ParseRow(im.rowFor(rec))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Row = im.row
			return model.Transaction{}, "", fe
		}
		return model.Transaction{}, "", fmt.Errorf("row %d: %w", im.row, err)
	}

	description := im.rules.Normalizer().Normalize(raw.Description)
	resolved := im.rules.Resolve(description, raw.PayeeHint)
	return journal.Build(raw, resolved, im.account, im.currency), raw.Description, nil
}

func (im *Importer) rowFor(rec []string) Row {
	row := make(Row, len(im.header))
	for i, col := range im.header {
		if i < len(rec) {
			row[col] = strings.TrimSpace(rec[i])
		}
	}
	return row
}

func trimFields(rec []string) []string {
	out := make([]string, len(rec))
	for i, f := range rec {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
