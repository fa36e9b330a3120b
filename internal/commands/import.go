package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/beanport/internal/gitops"
	"github.com/cleared-dev/beanport/internal/importer"
	"github.com/cleared-dev/beanport/internal/importlog"
	"github.com/cleared-dev/beanport/internal/journal"
	"github.com/cleared-dev/beanport/internal/model"
)

type importOptions struct {
	repo      string
	account   string
	commodity string
	out       string
	format    string
	dryRun    bool
}

func newImportCommand() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Import bank CSV statements into the ledger",
		Long: "Import the given CSV files, or every CSV file waiting in import/ when none\n" +
			"are given. Files from import/ are moved to import/processed/ afterwards.\n" +
			"A malformed row aborts the whole run before anything is written.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.repo, "repo", ".", "repository directory")
	cmd.Flags().StringVar(&opts.account, "account", "", "statement account, overrides the configured bank account")
	cmd.Flags().StringVar(&opts.commodity, "commodity", "", "statement commodity, overrides the configured one")
	cmd.Flags().StringVar(&opts.format, "format", "", "only import statements in this format")
	cmd.Flags().StringVar(&opts.out, "out", "", "ledger file to append to, overrides ledger.path")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the transactions without writing anything")

	return cmd
}

// statement is one CSV file selected for import.
type statement struct {
	path    string
	name    string
	format  string
	scanned bool // found in import/ rather than named on the command line
}

// batch is a statement after a successful import.
type batch struct {
	statement
	ledger        *model.Ledger
	uncategorized int
}

func runImport(out, errOut io.Writer, opts importOptions, files []string) error {
	root, err := absRepo(opts.repo)
	if err != nil {
		return err
	}
	p, err := loadProject(root, errOut, "import")
	if err != nil {
		return err
	}
	log := p.log
	registry := importer.DefaultRegistry()

	stmts, err := collectStatements(p, registry, opts.format, files)
	if err != nil {
		return err
	}
	if len(stmts) == 0 {
		fmt.Fprintln(out, "Nothing to import")
		return nil
	}

	// Parse everything first so one bad file leaves the ledger untouched.
	batches := make([]batch, 0, len(stmts))
	for _, s := range stmts {
		b, err := p.importStatement(s, registry, opts)
		if err != nil {
			return fmt.Errorf("importing %s: %w", s.name, err)
		}
		log.Debug("parsed statement", "file", s.name, "format", s.format, "transactions", b.ledger.Len())
		batches = append(batches, b)
	}

	if opts.dryRun {
		for _, b := range batches {
			fmt.Fprintf(out, "; %s (%s)\n", b.name, b.format)
			if err := journal.Write(out, b.ledger); err != nil {
				return err
			}
		}
		return nil
	}

	for _, b := range batches {
		if err := journal.Validate(b.ledger); err != nil {
			return fmt.Errorf("importing %s: %w", b.name, err)
		}
	}

	svc := journal.NewService(p.ledgerPath(opts.out))
	total := 0
	for _, b := range batches {
		opened, err := svc.Append(b.ledger)
		if err != nil {
			return fmt.Errorf("writing %s to ledger: %w", b.name, err)
		}
		for _, a := range opened {
			log.Info("opened account", "account", a)
		}
		total += b.ledger.Len()
		fmt.Fprintf(out, "Imported %d transactions from %s (%s), %d uncategorized\n",
			b.ledger.Len(), b.name, b.format, b.uncategorized)
	}

	for _, b := range batches {
		if !b.scanned {
			continue
		}
		if err := importer.MarkProcessed(root, b.name); err != nil {
			return err
		}
	}

	hash := p.commitImport(svc.Path(), total, len(batches))

	runID := importlog.NewRunID()
	now := time.Now()
	entries := make([]importlog.Entry, len(batches))
	for i, b := range batches {
		entries[i] = importlog.Entry{
			RunID:        runID,
			Timestamp:    now,
			File:         b.name,
			Format:       b.format,
			Transactions: b.ledger.Len(),
			CommitHash:   hash,
		}
	}
	if err := importlog.Append(root, entries); err != nil {
		log.Warn("failed to write import log", "error", err)
	}
	log.Info("import finished", "run", runID, "files", len(batches), "transactions", total, "ledger", svc.Path())
	return nil
}

// collectStatements resolves the files to import, or scans import/ when none
// are given. A non-empty format restricts the run to that parser.
func collectStatements(p *project, registry *importer.Registry, format string, files []string) ([]statement, error) {
	if format != "" {
		parser := registry.Get(format)
		if parser == nil {
			return nil, fmt.Errorf("unknown format %q, see beanport formats", format)
		}
		format = parser.Format()
	}

	var stmts []statement
	if len(files) > 0 {
		for _, f := range files {
			path, err := filepath.Abs(f)
			if err != nil {
				return nil, fmt.Errorf("resolving path: %w", err)
			}
			detected, err := importer.DetectFormat(path, registry)
			if err != nil {
				return nil, err
			}
			name := filepath.Base(path)
			if detected == "" {
				return nil, fmt.Errorf("%s: %w", name, importer.ErrUnsupportedFormat)
			}
			if format != "" && detected != format {
				return nil, fmt.Errorf("%s: header is %s, not %s: %w", name, detected, format, importer.ErrUnsupportedFormat)
			}
			stmts = append(stmts, statement{path: path, name: name, format: detected})
		}
		return stmts, nil
	}

	scanned, err := importer.Scan(p.root, registry)
	if err != nil {
		return nil, err
	}
	for _, fi := range scanned {
		if fi.Format == "" {
			p.log.Warn("skipping file with unknown header", "file", fi.Name)
			continue
		}
		if format != "" && fi.Format != format {
			p.log.Debug("skipping file in another format", "file", fi.Name, "format", fi.Format)
			continue
		}
		stmts = append(stmts, statement{path: fi.Path, name: fi.Name, format: fi.Format, scanned: true})
	}
	return stmts, nil
}

func (p *project) importStatement(s statement, registry *importer.Registry, opts importOptions) (batch, error) {
	account := model.Account(opts.account)
	if account == "" {
		var ok bool
		if account, ok = p.cfg.AccountFor(s.format); !ok {
			return batch{}, fmt.Errorf("no account configured for format %q: add it to banks or pass --account", s.format)
		}
	}
	commodity := model.Commodity(opts.commodity)
	if commodity == "" {
		commodity = p.cfg.CommodityFor(s.format)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return batch{}, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	im, err := importer.Open(f, importer.Options{
		Account:   account,
		Commodity: commodity,
		Rules:     p.rules,
		Registry:  registry,
	})
	if err != nil {
		return batch{}, err
	}
	l, err := im.Import()
	if err != nil {
		return batch{}, err
	}

	b := batch{statement: s, ledger: l}
	for _, it := range im.Imported() {
		if it.Transaction.Postings[1].Account == p.rules.Uncategorized() {
			b.uncategorized++
			p.log.Debug("uncategorized", "file", s.name, "description", it.OriginalDescription)
		}
	}
	return b, nil
}

// commitImport commits the ledger and import directory when auto-commit is
// on. Returns the short hash, or "" when nothing was committed.
func (p *project) commitImport(ledgerPath string, transactions, files int) string {
	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.root) {
		return ""
	}

	var paths []string
	if _, err := os.Stat(filepath.Join(p.root, importer.ImportDir)); err == nil {
		paths = append(paths, importer.ImportDir)
	}
	if rel, err := filepath.Rel(p.root, ledgerPath); err == nil && !strings.HasPrefix(rel, "..") {
		paths = append(paths, rel)
	}

	if len(paths) == 0 {
		return ""
	}
	changed, err := gitops.HasChanges(p.root, paths...)
	if err != nil {
		p.log.Warn("failed to check for changes", "error", err)
		return ""
	}
	if !changed {
		p.log.Debug("nothing to commit", "paths", paths)
		return ""
	}

	sig := gitops.Signature{Name: p.cfg.Git.AuthorName, Email: p.cfg.Git.AuthorEmail}
	msg := fmt.Sprintf("import: %d transactions from %d files", transactions, files)
	hash, err := gitops.Commit(p.root, msg, sig, paths...)
	if err != nil {
		p.log.Warn("failed to commit import", "error", err)
		return ""
	}
	return hash
}
