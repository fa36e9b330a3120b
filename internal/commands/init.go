package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/beanport/internal/config"
	"github.com/cleared-dev/beanport/internal/gitops"
	"github.com/cleared-dev/beanport/internal/importer"
	"github.com/cleared-dev/beanport/internal/rules"
)

func newInitCommand() *cobra.Command {
	var commodity string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := absRepo(dir)
			if err != nil {
				return err
			}

			if err := runInit(absDir, commodity, !noGit); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized beanport ledger at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&commodity, "commodity", "CAD", "default commodity of the ledger")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "do not create a git repository")

	return cmd
}

func runInit(dir, commodity string, withGit bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	dirs := []string{
		"rules",
		"logs",
		importer.ImportDir,
		filepath.Join(importer.ImportDir, "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default()
	cfg.Ledger.Commodity = commodity
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Ship the built-in tables so they can be edited in place.
	if err := rules.Save(filepath.Join(dir, cfg.Rules.Path), rules.Default()); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	ledger := fmt.Sprintf("option \"operating_currency\" %q\n", commodity)
	if err := os.WriteFile(filepath.Join(dir, cfg.Ledger.Path), []byte(ledger), 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(".env\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, importer.ImportDir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if !withGit {
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}

	sig := gitops.Signature{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	if _, err := gitops.Commit(dir, "init: Initialize beanport ledger", sig, "."); err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	return nil
}
