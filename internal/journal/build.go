// Package journal builds balanced transactions and reads and writes the
// beancount ledger file.
package journal

import (
	"github.com/cleared-dev/beanport/internal/model"
	"github.com/cleared-dev/beanport/internal/rules"
)

// Build turns a parsed row and its categorization into a two-posting
// transaction: the statement account gets the row amount, the category
// account gets its exact negation.
func Build(raw model.RawLine, resolved rules.Categorization, statement model.Account, commodity model.Commodity) model.Transaction {
	category := resolved.Account
	if category == "" {
		category = model.UncategorizedAccount
	}
	amount := model.NewAmount(raw.Amount, commodity)
	return model.Transaction{
		Date:      raw.Date,
		Payee:     resolved.Payee,
		Narration: resolved.Description,
		Flag:      model.FlagComplete,
		Postings: []model.Posting{
			{Account: statement, Amount: amount},
			{Account: category, Amount: amount.Neg()},
		},
	}
}
