package importer

import (
	"github.com/cleared-dev/beanport/internal/model"
)

// TangerineParser parses Tangerine account CSV exports.
type TangerineParser struct{}

const (
	tangerineDateFormat    = "1/2/2006"
	tangerineColDate       = "Date"
	tangerineColName       = "Name"
	tangerineColMemo       = "Memo"
	tangerineColAmount     = "Amount"
	tangerineInterestName  = "Interest Paid"
	tangerineInterestPayee = "Tangerine"
)

var tangerineHeader = []string{tangerineColDate, "Transaction", tangerineColName, tangerineColMemo, tangerineColAmount}

// Format returns the parser name.
func (p *TangerineParser) Format() string { return "tangerine" }

// Header returns the Tangerine export header.
func (p *TangerineParser) Header() []string { return tangerineHeader }

// ParseRow uses the memo as description, except for interest rows which are
// attributed to Tangerine with no description.
func (p *TangerineParser) ParseRow(row Row) (model.RawLine, error) {
	date, err := parseDate(row, tangerineColDate, tangerineDateFormat)
	if err != nil {
		return model.RawLine{}, err
	}

	amount, err := parseAmount(row, tangerineColAmount, LocaleEnCA)
	if err != nil {
		return model.RawLine{}, err
	}

	line := model.RawLine{Date: date, Amount: amount}
	if row.Get(tangerineColName) == tangerineInterestName {
		line.PayeeHint = tangerineInterestPayee
	} else {
		line.Description = row.Get(tangerineColMemo)
	}
	return line, nil
}

var _ Parser = (*TangerineParser)(nil)
