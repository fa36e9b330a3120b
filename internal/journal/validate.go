package journal

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/beanport/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Index       int // 0-based transaction index in the ledger
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [txn %d]: %s", e.Invariant, e.Index+1, e.Description)
}

// ValidateLedger enforces the invariants of imported transactions:
//  1. exactly two postings
//  2. postings balance to exactly zero
//  3. both postings share one commodity
//  4. every posting names an account
//  5. no amount has more decimal places than it declares
//  6. the flag is complete or incomplete
func ValidateLedger(l *model.Ledger) []ValidationError {
	var errs []ValidationError
	for i, t := range l.Transactions {
		errs = append(errs, validateTransaction(i, t)...)
	}
	return errs
}

// Validate runs ValidateLedger and joins every violation into one error.
func Validate(l *model.Ledger) error {
	verrs := ValidateLedger(l)
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

func validateTransaction(i int, t model.Transaction) []ValidationError {
	var errs []ValidationError
	add := func(inv int, format string, args ...any) {
		errs = append(errs, ValidationError{Invariant: inv, Index: i, Description: fmt.Sprintf(format, args...)})
	}

	if len(t.Postings) != 2 {
		add(1, "expected 2 postings, got %d", len(t.Postings))
	}

	if bal := t.Balance(); !bal.IsZero() {
		add(2, "postings sum to %s", bal.String())
	}

	commodities := make(map[model.Commodity]bool)
	for _, p := range t.Postings {
		commodities[p.Amount.Commodity] = true
	}
	if len(commodities) > 1 {
		add(3, "postings use %d commodities", len(commodities))
	}

	for j, p := range t.Postings {
		if p.Account == "" {
			add(4, "posting %d has no account", j+1)
		}
		digits := int32(p.Amount.DecimalDigits)
		if !p.Amount.Number.Equal(p.Amount.Number.Truncate(digits)) {
			add(5, "posting %d amount %s has more than %d decimal places", j+1, p.Amount.Number, digits)
		}
	}

	if t.Flag != model.FlagComplete && t.Flag != model.FlagIncomplete {
		add(6, "unknown flag %q", t.Flag)
	}
	return errs
}
