package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/productdevbook/fdinspect/cli/internal/column"
	"github.com/productdevbook/fdinspect/cli/internal/config"
	"github.com/productdevbook/fdinspect/cli/internal/logging"
	"github.com/productdevbook/fdinspect/cli/internal/scanner"
	"github.com/productdevbook/fdinspect/cli/internal/tui"
)

var (
	version = "0.1.0"

	columnList  string
	presetName  string
	pids        []int
	socketsOnly bool
	includeMaps bool
	jsonOutput  bool
	noHeadings  bool
	interactive bool

	// env overlay: FDINSPECT_COLUMNS, FDINSPECT_FORMAT, FDINSPECT_LOG_LEVEL, ...
	settings = viper.New()

	newStore   = config.NewStore
	newScanner = scanner.New
)

var rootCmd = &cobra.Command{
	Use:   "fdinspect",
	Short: "List open file descriptors of running processes",
	Long: `fdinspect lists the files, sockets, pipes and devices held open by running processes.
Sockets are annotated with the protocol name reported by the kernel.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runList,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "Output in JSON format (same as --format json)")
	pf.String("format", "table", "Output format: table, json or plist")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.String("log-format", "text", "Log format: text or json")

	for _, c := range []*cobra.Command{rootCmd, listCmd} {
		addScanFlags(c)
	}

	settings.SetEnvPrefix("FDINSPECT")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	_ = settings.BindPFlag("format", pf.Lookup("format"))
	_ = settings.BindPFlag("log-level", pf.Lookup("log-level"))
	_ = settings.BindPFlag("log-format", pf.Lookup("log-format"))
	_ = settings.BindEnv("columns")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.Version = version
}

func addScanFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&columnList, "output-columns", "o", "", "Comma separated list of columns to print")
	f.StringVar(&presetName, "preset", "", "Use the columns of a saved preset")
	f.IntSliceVarP(&pids, "pid", "p", nil, "Only show descriptors of these PIDs")
	f.BoolVar(&socketsOnly, "sockets", false, "Only show sockets")
	f.BoolVar(&includeMaps, "maps", false, "Also show memory-mapped files")
	f.BoolVarP(&noHeadings, "no-headings", "n", false, "Don't print headings")
	f.BoolVarP(&interactive, "interactive", "i", false, "Browse descriptors interactively")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logging.Init(settings.GetString("log-format"), settings.GetString("log-level"), cmd.ErrOrStderr())
	return nil
}

// resolveColumns picks the column list: --output-columns, then --preset,
// then $FDINSPECT_COLUMNS, then the config file, then the built-in default.
func resolveColumns(cmd *cobra.Command) ([]column.ID, error) {
	if cmd.Flags().Changed("output-columns") {
		return column.ParseList(columnList)
	}

	if presetName != "" || settings.GetString("columns") == "" {
		cfg, err := newStore().Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if presetName != "" {
			p, ok := cfg.FindPreset(presetName)
			if !ok {
				return nil, fmt.Errorf("no such preset: %s", presetName)
			}
			return column.ParseList(strings.Join(p.Columns, ","))
		}
		if len(cfg.Columns) > 0 {
			return column.ParseList(strings.Join(cfg.Columns, ","))
		}
		return column.Default(), nil
	}

	return column.ParseList(settings.GetString("columns"))
}

func outputFormat() string {
	if jsonOutput {
		return "json"
	}
	return strings.ToLower(settings.GetString("format"))
}

func runList(cmd *cobra.Command, args []string) error {
	cols, err := resolveColumns(cmd)
	if err != nil {
		return err
	}

	opts := scanner.Options{
		Columns:     cols,
		PIDs:        pids,
		SocketsOnly: socketsOnly,
		IncludeMaps: includeMaps,
	}
	s := newScanner()

	if interactive {
		return tui.Run(func() ([]scanner.Row, error) { return s.Scan(opts) }, cols)
	}

	rows, err := s.Scan(opts)
	if err != nil {
		return fmt.Errorf("failed to scan descriptors: %w", err)
	}

	// Sort by PID, keeping descriptor order within a process
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PID < rows[j].PID
	})

	w := cmd.OutOrStdout()
	switch format := outputFormat(); format {
	case "json":
		return printJSON(w, rows, cols)
	case "plist":
		return printPlist(w, rows, cols)
	case "table", "":
		if len(rows) == 0 {
			fmt.Fprintln(w, "No open descriptors found.")
			return nil
		}
		return printTable(w, rows, cols, !noHeadings)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
