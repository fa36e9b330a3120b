package importer

import (
	"github.com/cleared-dev/beanport/internal/model"
)

// RBCParser parses RBC bank account and credit card CSV exports.
type RBCParser struct {
	// AmountColumn is the per-currency amount column; "" means CAD$.
	AmountColumn string
}

const (
	rbcDateFormat   = "1/2/2006"
	rbcColDate      = "Transaction Date"
	rbcColDesc1     = "Description 1"
	rbcColDesc2     = "Description 2"
	rbcColCAD       = "CAD$"
	rbcColUSD       = "USD$"
	rbcMonthlyFee   = "MONTHLY FEE "
	rbcFeePayeeHint = "RBC"
)

var rbcHeader = []string{
	"Account Type", "Account Number", rbcColDate, "Cheque Number",
	rbcColDesc1, rbcColDesc2, rbcColCAD, rbcColUSD,
}

// Format returns the parser name.
func (p *RBCParser) Format() string { return "rbc" }

// Header returns the RBC export header.
func (p *RBCParser) Header() []string { return rbcHeader }

// ForCommodity reads USD$ for USD imports and CAD$ otherwise.
func (p *RBCParser) ForCommodity(c model.Commodity) Parser {
	if c == "USD" {
		return &RBCParser{AmountColumn: rbcColUSD}
	}
	return &RBCParser{AmountColumn: rbcColCAD}
}

// ParseRow joins both description columns. A bare monthly fee row is
// attributed to RBC directly.
func (p *RBCParser) ParseRow(row Row) (model.RawLine, error) {
	date, err := parseDate(row, rbcColDate, rbcDateFormat)
	if err != nil {
		return model.RawLine{}, err
	}

	col := p.AmountColumn
	if col == "" {
		col = rbcColCAD
	}
	amount, err := parseAmount(row, col, LocaleEnCA)
	if err != nil {
		return model.RawLine{}, err
	}

	line := model.RawLine{
		Date:        date,
		Description: row.Get(rbcColDesc1) + " " + row.Get(rbcColDesc2),
		Amount:      amount,
	}
	if line.Description == rbcMonthlyFee {
		line.PayeeHint = rbcFeePayeeHint
		line.Description = ""
	}
	return line, nil
}

var _ CommodityParser = (*RBCParser)(nil)
