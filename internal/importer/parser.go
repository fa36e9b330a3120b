package importer

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/beanport/internal/model"
)

// Parser converts one row of a bank's CSV export into a RawLine.
type Parser interface {
	// Format is the short bank name ("rbc", "tangerine").
	Format() string
	// Header is the exact, ordered header row that identifies the bank.
	Header() []string
	// ParseRow parses one data row. Date and amount failures are *FormatError.
	ParseRow(row Row) (model.RawLine, error)
}

// CommodityParser is implemented by parsers whose column layout depends on
// the commodity being imported.
type CommodityParser interface {
	Parser
	ForCommodity(c model.Commodity) Parser
}

// Row maps column names to trimmed values for one CSV record.
type Row map[string]string

// Get returns the value for column, or "" if the record was short.
func (r Row) Get(column string) string { return r[column] }

// Locale describes how a bank writes numbers.
type Locale struct {
	Decimal rune
	Group   rune
}

var (
	// LocaleEnCA writes 1,234.56.
	LocaleEnCA = Locale{Decimal: '.', Group: ','}
	// LocaleEnUS writes 1,234.56.
	LocaleEnUS = Locale{Decimal: '.', Group: ','}
)

var errEmpty = errors.New("empty value")

// ParseAmount parses a signed decimal written in loc.
func (loc Locale) ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errEmpty
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case loc.Group:
			return -1
		case loc.Decimal:
			return '.'
		}
		return r
	}, s)
	s = strings.TrimPrefix(s, "+")
	return decimal.NewFromString(s)
}

func parseDate(row Row, column, layout string) (time.Time, error) {
	v := row.Get(column)
	d, err := time.Parse(layout, v)
	if err != nil {
		return time.Time{}, &FormatError{Kind: "date", Column: column, Value: v, Err: err}
	}
	return d, nil
}

func parseAmount(row Row, column string, loc Locale) (decimal.Decimal, error) {
	v := row.Get(column)
	amt, err := loc.ParseAmount(v)
	if err != nil {
		return decimal.Decimal{}, &FormatError{Kind: "amount", Column: column, Value: v, Err: err}
	}
	return amt, nil
}
