package fdfile

import (
	"strconv"

	"github.com/productdevbook/fdinspect/cli/internal/column"
)

// Render produces the cell for id. The record's own renderer runs first;
// when it declines, the base-record default applies. Columns nobody knows
// render as an empty cell.
func Render(proc *Process, f File, id column.ID) string {
	if v, ok := f.RenderColumn(id); ok {
		return v
	}

	switch id {
	case column.Assoc:
		if f.FD() >= 0 {
			return strconv.Itoa(f.FD())
		}
		if f.Map() != nil {
			return "mem"
		}
	case column.Command:
		if proc != nil {
			return proc.Command
		}
	case column.PID:
		if proc != nil {
			return strconv.Itoa(proc.PID)
		}
	case column.User:
		if proc != nil {
			return proc.User
		}
	case column.Type:
		return KindFromMode(f.Stat().Mode).String()
	case column.Inode:
		return strconv.FormatUint(f.Stat().Inode, 10)
	case column.MajMin:
		st := f.Stat()
		return strconv.FormatUint(uint64(st.DevMajor), 10) + ":" + strconv.FormatUint(uint64(st.DevMinor), 10)
	case column.Name:
		return f.Name()
	}
	return ""
}
