package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawLine represents one parsed bank CSV row before normalization.
type RawLine struct {
	Date        time.Time
	Description string          // raw bank text, possibly empty
	Amount      decimal.Decimal // negative = money out of the statement account
	PayeeHint   string          // set when the bank row identifies the payee directly
}
