package scanner

import (
	"errors"

	"github.com/productdevbook/fdinspect/cli/internal/column"
	"github.com/productdevbook/fdinspect/cli/internal/fdfile"
	"github.com/productdevbook/fdinspect/cli/internal/logging"
)

// ErrUnsupported is returned on platforms without /proc and sockfs xattrs.
var ErrUnsupported = errors.New("descriptor scanning is only supported on Linux")

var log = logging.L("scanner")

// Options selects what a scan reports
type Options struct {
	Columns     []column.ID
	PIDs        []int
	SocketsOnly bool
	IncludeMaps bool
}

// Row is one rendered descriptor. Cells line up with the scanned columns.
type Row struct {
	PID   int      `json:"pid"`
	Cells []string `json:"cells"`
}

// Fields maps column names to cell values for export formats
func (r Row) Fields(cols []column.ID) map[string]string {
	m := make(map[string]string, len(cols))
	for i, id := range cols {
		if i < len(r.Cells) {
			m[id.String()] = r.Cells[i]
		}
	}
	return m
}

// Scanner interface for platform-specific implementations
type Scanner interface {
	Scan(opts Options) ([]Row, error)
}

// New returns a platform-specific scanner
func New() Scanner {
	return newPlatformScanner()
}

// renderRow renders every column of f and releases it. f must not be used
// afterwards.
func renderRow(proc *fdfile.Process, f fdfile.File, cols []column.ID) Row {
	defer f.Release()

	cells := make([]string, len(cols))
	for i, id := range cols {
		cells[i] = fdfile.Render(proc, f, id)
	}
	return Row{PID: proc.PID, Cells: cells}
}

func columnsOrDefault(cols []column.ID) []column.ID {
	if len(cols) == 0 {
		return column.Default()
	}
	return cols
}
