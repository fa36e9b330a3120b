package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cleared-dev/beanport/internal/config"
	"github.com/cleared-dev/beanport/internal/logging"
	"github.com/cleared-dev/beanport/internal/model"
	"github.com/cleared-dev/beanport/internal/rules"
)

// project is a ledger repository with its config and rule tables loaded.
type project struct {
	root  string
	cfg   *config.Config
	rules *rules.Tables
	log   *slog.Logger
}

// loadProject reads beanport.yaml (or $BEANPORT_CONFIG) and the rule file it
// names. A repo without a config runs on the defaults. Log lines carry system.
func loadProject(root string, logOut io.Writer, system string) (*project, error) {
	cfgPath := config.PathFromEnv(filepath.Join(root, config.FileName))
	cfg, err := config.Load(cfgPath)
	missing := errors.Is(err, os.ErrNotExist)
	switch {
	case missing:
		cfg = config.Default()
	case err != nil:
		return nil, err
	}
	cfg.ApplyEnv()

	log := logging.NewLoggerWithSystem(logOut, cfg.Logging, system)
	if missing {
		log.Debug("no config file, using defaults", "path", cfgPath)
	}

	tables, err := rules.LoadOrDefault(resolve(root, cfg.Rules.Path))
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	if acct := cfg.Ledger.UncategorizedAccount; acct != "" {
		tables = tables.WithUncategorized(model.Account(acct))
	}

	return &project{root: root, cfg: cfg, rules: tables, log: log}, nil
}

// ledgerPath returns the configured ledger file, or out when set.
func (p *project) ledgerPath(out string) string {
	if out != "" {
		return out
	}
	return resolve(p.root, p.cfg.Ledger.Path)
}

// resolve makes path absolute against root unless it already is.
func resolve(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func absRepo(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}
