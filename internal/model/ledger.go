package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flag marks the state of a transaction.
type Flag string

const (
	FlagComplete   Flag = "*"
	FlagIncomplete Flag = "!"
)

// DefaultDecimalDigits is the display precision for imported amounts.
const DefaultDecimalDigits = 2

// Commodity is the unit an amount is denominated in (CAD, USD, ...).
type Commodity string

// Amount is a number in a commodity with a display precision.
type Amount struct {
	Number        decimal.Decimal
	Commodity     Commodity
	DecimalDigits int
}

// NewAmount returns an amount with the default two decimal digits.
func NewAmount(number decimal.Decimal, commodity Commodity) Amount {
	return Amount{Number: number, Commodity: commodity, DecimalDigits: DefaultDecimalDigits}
}

// Neg returns the amount with the number negated.
func (a Amount) Neg() Amount {
	a.Number = a.Number.Neg()
	return a
}

// String renders "45.67 CAD".
func (a Amount) String() string {
	return a.Number.StringFixed(int32(a.DecimalDigits)) + " " + string(a.Commodity)
}

// Posting is one leg of a transaction.
type Posting struct {
	Account Account
	Amount  Amount
}

// Transaction is a dated double-entry transaction. Postings are owned by the
// transaction and kept in insertion order.
type Transaction struct {
	Date      time.Time
	Payee     string
	Narration string
	Flag      Flag
	Tags      []string
	Postings  []Posting
}

// Balance returns the sum of all posting numbers.
func (t Transaction) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range t.Postings {
		sum = sum.Add(p.Amount.Number)
	}
	return sum
}

// Accounts returns the distinct accounts referenced by the postings, in order.
func (t Transaction) Accounts() []Account {
	seen := make(map[Account]bool, len(t.Postings))
	var out []Account
	for _, p := range t.Postings {
		if !seen[p.Account] {
			seen[p.Account] = true
			out = append(out, p.Account)
		}
	}
	return out
}

// Ledger is an ordered, append-only sequence of transactions.
type Ledger struct {
	Transactions []Transaction
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends a transaction.
func (l *Ledger) Add(t Transaction) {
	l.Transactions = append(l.Transactions, t)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Transactions)
}

// Accounts returns the distinct accounts used across the ledger, in first-use order.
func (l *Ledger) Accounts() []Account {
	seen := make(map[Account]bool)
	var out []Account
	for _, t := range l.Transactions {
		for _, a := range t.Accounts() {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

// FirstDate returns the earliest transaction date, or the zero time for an empty ledger.
func (l *Ledger) FirstDate() time.Time {
	var first time.Time
	for i, t := range l.Transactions {
		if i == 0 || t.Date.Before(first) {
			first = t.Date
		}
	}
	return first
}
