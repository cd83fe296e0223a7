package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/productdevbook/fdinspect/cli/internal/column"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the available output columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, id := range column.All() {
			fmt.Fprintf(w, "%s\t%s\n", id, id.Help())
		}
		return w.Flush()
	},
}
