package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/productdevbook/fdinspect/cli/internal/column"
	"github.com/productdevbook/fdinspect/cli/internal/scanner"
)

var showCmd = &cobra.Command{
	Use:   "show <pid> <fd>",
	Short: "Show every column of a single descriptor",
	Long:  `Show every column of one descriptor of a process, one column per line.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid <= 0 {
		return fmt.Errorf("invalid pid: %s", args[0])
	}
	fd, err := strconv.Atoi(args[1])
	if err != nil || fd < 0 {
		return fmt.Errorf("invalid file descriptor: %s", args[1])
	}

	cols := column.All()
	rows, err := newScanner().Scan(scanner.Options{Columns: cols, PIDs: []int{pid}})
	if err != nil {
		return fmt.Errorf("failed to scan descriptors: %w", err)
	}

	assocIdx := slices.Index(cols, column.Assoc)

	// Find the descriptor by its association
	assoc := strconv.Itoa(fd)
	var target *scanner.Row
	for i := range rows {
		if rows[i].Cells[assocIdx] == assoc {
			target = &rows[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no descriptor %d found in process %d", fd, pid)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for i, id := range cols {
		fmt.Fprintf(w, "%s:\t%s\n", id, target.Cells[i])
	}
	return w.Flush()
}
