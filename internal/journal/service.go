package journal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/beanport/internal/accounts"
	"github.com/cleared-dev/beanport/internal/model"
)

// Service appends imported transactions to a beancount ledger file.
type Service struct {
	path string
}

// NewService creates a journal Service for the ledger at path.
func NewService(path string) *Service {
	return &Service{path: path}
}

// Path returns the ledger file path.
func (s *Service) Path() string { return s.path }

// Append validates l and appends it to the ledger file, preceded by open
// directives for accounts the file has not opened yet. Nothing is written if
// validation fails. Returns the accounts that were opened.
func (s *Service) Append(l *model.Ledger) ([]model.Account, error) {
	if l.Len() == 0 {
		return nil, nil
	}

	if err := Validate(l); err != nil {
		return nil, err
	}

	opened, err := accounts.Load(s.path)
	if err != nil {
		return nil, err
	}
	missing := opened.Missing(l)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	needsSeparator := false
	if info, err := os.Stat(s.path); err == nil && info.Size() > 0 {
		needsSeparator = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if needsSeparator {
		if _, err := fmt.Fprintln(f); err != nil {
			return nil, fmt.Errorf("writing ledger: %w", err)
		}
	}
	if len(missing) > 0 {
		if err := WriteOpen(f, l.FirstDate(), missing); err != nil {
			return nil, fmt.Errorf("writing open directives: %w", err)
		}
		if _, err := fmt.Fprintln(f); err != nil {
			return nil, fmt.Errorf("writing ledger: %w", err)
		}
	}
	if err := Write(f, l); err != nil {
		return nil, fmt.Errorf("writing transactions: %w", err)
	}
	return missing, f.Close()
}
