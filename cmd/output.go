package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"howett.net/plist"

	"github.com/productdevbook/fdinspect/cli/internal/column"
	"github.com/productdevbook/fdinspect/cli/internal/scanner"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	// tabs and newlines in file names would break the layout
	cellEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`)
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func records(rows []scanner.Row, cols []column.ID) []map[string]string {
	out := make([]map[string]string, len(rows))
	for i, r := range rows {
		out[i] = r.Fields(cols)
	}
	return out
}

func printJSON(w io.Writer, rows []scanner.Row, cols []column.ID) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(rows, cols))
}

func printPlist(w io.Writer, rows []scanner.Row, cols []column.ID) error {
	enc := plist.NewEncoder(w)
	enc.Indent("\t")
	if err := enc.Encode(records(rows, cols)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func printTable(w io.Writer, rows []scanner.Row, cols []column.ID, headings bool) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	if headings {
		fmt.Fprintln(tw, strings.Join(column.Names(cols), "\t"))
	}
	for _, r := range rows {
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			cells[i] = cellEscaper.Replace(c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	out := buf.String()
	if headings && isTerminal(w) {
		head, rest, _ := strings.Cut(out, "\n")
		out = headingStyle.Render(strings.TrimRight(head, " ")) + "\n" + rest
	}
	_, err := io.WriteString(w, out)
	return err
}
