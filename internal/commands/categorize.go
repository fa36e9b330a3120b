package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategorizeCommand() *cobra.Command {
	var repo, hint string

	cmd := &cobra.Command{
		Use:   "categorize <description>",
		Short: "Show how a raw bank description is normalized and categorized",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := absRepo(repo)
			if err != nil {
				return err
			}
			p, err := loadProject(root, cmd.ErrOrStderr(), "categorize")
			if err != nil {
				return err
			}

			raw := strings.Join(args, " ")
			normalized := p.rules.Normalizer().Normalize(raw)
			c := p.rules.Resolve(normalized, hint)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "normalized: %s\n", normalized)
			fmt.Fprintf(w, "payee:      %s\n", c.Payee)
			fmt.Fprintf(w, "narration:  %s\n", c.Description)
			fmt.Fprintf(w, "account:    %s\n", c.Account)
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", ".", "repository directory")
	cmd.Flags().StringVar(&hint, "hint", "", "payee supplied by the bank row")

	return cmd
}
