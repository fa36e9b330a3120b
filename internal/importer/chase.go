package importer

import (
	"github.com/cleared-dev/beanport/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseColDate    = "Posting Date"
	chaseColDesc    = "Description"
	chaseColAmount  = "Amount"
)

var chaseHeader = []string{"Details", chaseColDate, chaseColDesc, chaseColAmount, "Type", "Balance", "Check or Slip #"}

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Header returns the Chase export header.
func (p *ChaseParser) Header() []string { return chaseHeader }

// ParseRow reads the single description column as-is.
func (p *ChaseParser) ParseRow(row Row) (model.RawLine, error) {
	date, err := parseDate(row, chaseColDate, chaseDateFormat)
	if err != nil {
		return model.RawLine{}, err
	}

	amount, err := parseAmount(row, chaseColAmount, LocaleEnUS)
	if err != nil {
		return model.RawLine{}, err
	}

	return model.RawLine{
		Date:        date,
		Description: row.Get(chaseColDesc),
		Amount:      amount,
	}, nil
}

var _ Parser = (*ChaseParser)(nil)
