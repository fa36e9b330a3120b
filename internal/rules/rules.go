// Package rules resolves a normalized description into a payee, narration and
// category account using fixed exact-match tables.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cleared-dev/beanport/internal/model"
	"github.com/cleared-dev/beanport/internal/normalize"
)

// Categorization is the resolver's answer for one row.
type Categorization struct {
	Payee       string
	Description string
	Account     model.Account
}

// Tables holds the rename map, known-payee set and payee -> account map.
// It is built once and never mutated.
type Tables struct {
	normalizer    *normalize.Normalizer
	rename        map[string]string
	payees        map[string]struct{}
	accounts      map[string]model.Account
	uncategorized model.Account
}

// New builds Tables from the file form, compiling its strip patterns.
func New(f File) (*Tables, error) {
	n, err := normalize.Compile(f.StripPatterns)
	if err != nil {
		return nil, fmt.Errorf("strip patterns: %w", err)
	}

	t := &Tables{
		normalizer:    n,
		rename:        make(map[string]string, len(f.Rename)),
		payees:        make(map[string]struct{}, len(f.Payees)),
		accounts:      make(map[string]model.Account, len(f.Accounts)),
		uncategorized: model.UncategorizedAccount,
	}
	for k, v := range f.Rename {
		t.rename[k] = v
	}
	for _, p := range f.Payees {
		t.payees[p] = struct{}{}
	}
	for payee, acct := range f.Accounts {
		if strings.TrimSpace(acct) == "" {
			return nil, fmt.Errorf("payee %q maps to an empty account", payee)
		}
		t.accounts[payee] = model.Account(acct)
	}
	if f.UncategorizedAccount != "" {
		t.uncategorized = model.Account(f.UncategorizedAccount)
	}
	return t, nil
}

// Normalizer returns the description normalizer built from the strip patterns.
func (t *Tables) Normalizer() *normalize.Normalizer { return t.normalizer }

// Uncategorized returns the placeholder account for unmatched payees.
func (t *Tables) Uncategorized() model.Account { return t.uncategorized }

// WithUncategorized returns a copy of t using acct as the placeholder account.
// The maps are shared since neither copy mutates them.
func (t *Tables) WithUncategorized(acct model.Account) *Tables {
	c := *t
	c.uncategorized = acct
	return &c
}

// Resolve categorizes an already normalized description. hint is the payee
// the bank row supplied directly, if any. Rename hits win over known payees;
// when neither matches the hint is kept and the description becomes the
// narration.
func (t *Tables) Resolve(description, hint string) Categorization {
	c := Categorization{Payee: hint, Description: description}
	if renamed, ok := t.rename[description]; ok {
		c.Payee = renamed
		c.Description = ""
	} else if _, ok := t.payees[description]; ok {
		c.Payee = description
		c.Description = ""
	}
	c.Account = t.CategoryAccount(c.Payee)
	return c
}

// CategoryAccount returns the account for payee, or the uncategorized
// placeholder when no rule exists.
func (t *Tables) CategoryAccount(payee string) model.Account {
	if acct, ok := t.accounts[payee]; ok {
		return acct
	}
	return t.uncategorized
}

// Categorize normalizes raw and resolves it in one step.
func (t *Tables) Categorize(raw, hint string) Categorization {
	return t.Resolve(t.normalizer.Normalize(raw), hint)
}

// File returns the tables in their file form, with payees sorted.
func (t *Tables) File() File {
	f := File{
		StripPatterns:        t.normalizer.Patterns(),
		Rename:               make(map[string]string, len(t.rename)),
		Accounts:             make(map[string]string, len(t.accounts)),
		UncategorizedAccount: string(t.uncategorized),
	}
	for k, v := range t.rename {
		f.Rename[k] = v
	}
	for p := range t.payees {
		f.Payees = append(f.Payees, p)
	}
	sort.Strings(f.Payees)
	for k, v := range t.accounts {
		f.Accounts[k] = string(v)
	}
	return f
}
