// Package accounts tracks which accounts a ledger file has already opened.
package accounts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"github.com/cleared-dev/beanport/internal/model"
)

// openLine matches "2017-06-08 open Expenses:Food:Groceries [CAD]".
var openLine = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s+open\s+(\S+)`)

// Service provides in-memory lookup over the opened accounts.
type Service struct {
	byName map[model.Account]bool
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	s := &Service{byName: make(map[model.Account]bool, len(accounts))}
	for _, a := range accounts {
		s.Add(a)
	}
	return s
}

// Load reads the open directives of a ledger file. A missing file yields an
// empty Service.
func Load(ledgerPath string) (*Service, error) {
	f, err := os.Open(ledgerPath)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	accts, err := ReadOpen(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", ledgerPath, err)
	}
	return NewService(accts), nil
}

// ReadOpen returns the accounts of every open directive in r, in file order.
func ReadOpen(r io.Reader) ([]model.Account, error) {
	var out []model.Account
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if m := openLine.FindStringSubmatch(sc.Text()); m != nil {
			out = append(out, model.Account(m[1]))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add records an account as open. Adding twice is a no-op.
func (s *Service) Add(a model.Account) {
	s.byName[a] = true
}

// Exists reports whether an account is open.
func (s *Service) Exists(a model.Account) bool {
	return s.byName[a]
}

// Missing returns the accounts used by l that are not open yet, in first-use
// order. Accounts outside the five standard roots, such as the TODO
// placeholder, are not valid beancount accounts and are never returned.
func (s *Service) Missing(l *model.Ledger) []model.Account {
	var out []model.Account
	for _, a := range l.Accounts() {
		if a.Type() != "" && !s.Exists(a) {
			out = append(out, a)
		}
	}
	return out
}
