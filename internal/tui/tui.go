// Package tui is the interactive descriptor browser behind "fdinspect -i".
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/productdevbook/fdinspect/cli/internal/column"
	"github.com/productdevbook/fdinspect/cli/internal/logging"
	"github.com/productdevbook/fdinspect/cli/internal/scanner"
)

var log = logging.L("tui")

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// ScanFunc produces a fresh set of rows.
type ScanFunc func() ([]scanner.Row, error)

type scanMsg struct {
	rows []scanner.Row
	err  error
}

type model struct {
	scan      ScanFunc
	columns   []column.ID
	rows      []scanner.Row
	table     table.Model
	filter    textinput.Model
	filtering bool
	err       error
}

func newModel(scan ScanFunc, cols []column.ID) model {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 64
	ti.Width = 30

	t := table.New(
		table.WithColumns(tableColumns(cols, nil)),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)

	return model{scan: scan, columns: cols, table: t, filter: ti}
}

// Run starts the browser and blocks until the user quits.
func Run(scan ScanFunc, cols []column.ID) error {
	_, err := tea.NewProgram(newModel(scan, cols), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return m.rescan()
}

func (m model) rescan() tea.Cmd {
	scan := m.scan
	return func() tea.Msg {
		rows, err := scan()
		return scanMsg{rows: rows, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanMsg:
		m.err = msg.err
		if msg.err != nil {
			log.Warn("rescan failed", "error", msg.err)
			return m, nil
		}
		m.rows = msg.rows
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		if h := msg.Height - 6; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.table.Focus()
				m.refresh()
				return m, nil
			case "enter":
				m.filtering = false
				m.filter.Blur()
				m.table.Focus()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.refresh()
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.table.Blur()
			return m, m.filter.Focus()
		case "r":
			return m, m.rescan()
		}
	}

	var cmd tea.Cmd
	if m.filtering {
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// refresh re-applies the filter and pushes the visible rows to the table.
func (m *model) refresh() {
	visible := filterRows(m.rows, m.filter.Value())
	m.table.SetRows(nil)
	m.table.SetColumns(tableColumns(m.columns, visible))
	m.table.SetRows(toTableRows(visible))
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("scan failed: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d descriptors  /: filter  r: rescan  q: quit", len(m.rows))))
	return b.String()
}

// filterRows keeps the rows whose cells fuzzily match query, best match
// first. An empty query keeps everything in scan order.
func filterRows(rows []scanner.Row, query string) []scanner.Row {
	query = strings.TrimSpace(query)
	if query == "" {
		return rows
	}
	source := make([]string, len(rows))
	for i, r := range rows {
		source[i] = strings.Join(r.Cells, " ")
	}
	matches := fuzzy.Find(query, source)
	out := make([]scanner.Row, 0, len(matches))
	for _, match := range matches {
		out = append(out, rows[match.Index])
	}
	return out
}

// tableColumns sizes each column to its widest cell, capped at 48.
func tableColumns(cols []column.ID, rows []scanner.Row) []table.Column {
	out := make([]table.Column, len(cols))
	for i, id := range cols {
		w := len(id.String())
		for _, r := range rows {
			if i < len(r.Cells) && len(r.Cells[i]) > w {
				w = len(r.Cells[i])
			}
		}
		out[i] = table.Column{Title: id.String(), Width: min(w, 48)}
	}
	return out
}

func toTableRows(rows []scanner.Row) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row(r.Cells)
	}
	return out
}
