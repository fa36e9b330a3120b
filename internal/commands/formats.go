package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/beanport/internal/importer"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported bank CSV formats and their headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range importer.DefaultRegistry().All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", p.Format(), strings.Join(p.Header(), ","))
			}
			return nil
		},
	}
}
