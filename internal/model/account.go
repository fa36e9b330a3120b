package model

import "strings"

// AccountType is the root segment of an account name.
type AccountType string

const (
	AccountTypeAssets      AccountType = "Assets"
	AccountTypeLiabilities AccountType = "Liabilities"
	AccountTypeEquity      AccountType = "Equity"
	AccountTypeIncome      AccountType = "Income"
	AccountTypeExpenses    AccountType = "Expenses"
)

// accountSeparator joins the segments of a hierarchical account name.
const accountSeparator = ":"

// UncategorizedAccount is the placeholder used when no rule maps a payee.
const UncategorizedAccount Account = "TODO"

// Account is a hierarchical account name like "Expenses:Food:Groceries".
type Account string

// Name returns the full account name.
func (a Account) Name() string { return string(a) }

// Segments splits the name on ":".
func (a Account) Segments() []string {
	if a == "" {
		return nil
	}
	return strings.Split(string(a), accountSeparator)
}

// Type returns the root segment as an AccountType, or "" if it is not one of
// the five standard roots.
func (a Account) Type() AccountType {
	segs := a.Segments()
	if len(segs) == 0 {
		return ""
	}
	switch t := AccountType(segs[0]); t {
	case AccountTypeAssets, AccountTypeLiabilities, AccountTypeEquity, AccountTypeIncome, AccountTypeExpenses:
		return t
	}
	return ""
}
