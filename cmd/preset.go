package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/productdevbook/fdinspect/cli/internal/column"
	"github.com/productdevbook/fdinspect/cli/internal/config"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved column presets",
}

var presetAddCmd = &cobra.Command{
	Use:   "add <name> <columns>",
	Short: "Save a column list under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := column.ParseList(args[1])
		if err != nil {
			return err
		}
		return updateConfig(func(cfg *config.Config) error {
			p := cfg.AddPreset(args[0], column.Names(ids))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %s: %s\n", p.Name, strings.Join(p.Columns, ","))
			return nil
		})
	},
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newStore().Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if len(cfg.Presets) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No presets saved.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOLUMNS")
		for _, p := range cfg.Presets {
			name := p.Name
			if strings.Join(p.Columns, ",") == strings.Join(cfg.Columns, ",") {
				name += " (default)"
			}
			fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(p.Columns, ","))
		}
		return w.Flush()
	},
}

var presetRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove"},
	Short:   "Delete a saved preset",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(func(cfg *config.Config) error {
			if !cfg.RemovePreset(args[0]) {
				return fmt.Errorf("no such preset: %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed preset %s\n", args[0])
			return nil
		})
	},
}

var presetUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make a preset the default column list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(func(cfg *config.Config) error {
			p, ok := cfg.FindPreset(args[0])
			if !ok {
				return fmt.Errorf("no such preset: %s", args[0])
			}
			cfg.Columns = append([]string(nil), p.Columns...)
			fmt.Fprintf(cmd.OutOrStdout(), "Default columns: %s\n", strings.Join(cfg.Columns, ","))
			return nil
		})
	},
}

func init() {
	presetCmd.AddCommand(presetAddCmd, presetListCmd, presetRemoveCmd, presetUseCmd)
}

func updateConfig(fn func(cfg *config.Config) error) error {
	store := newStore()
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := fn(cfg); err != nil {
		return err
	}
	if err := store.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
