package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open file descriptors",
	Long:  `List the open file descriptors of all processes, or of the processes given with --pid.`,
	RunE:  runList,
}
