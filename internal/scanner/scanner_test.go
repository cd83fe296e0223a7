package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/productdevbook/fdinspect/cli/internal/column"
	"github.com/productdevbook/fdinspect/cli/internal/fdfile"
)

type releaseCounter struct {
	*fdfile.Base
	released int
}

func (r *releaseCounter) Release() { r.released++ }

func TestRenderRowReleasesRecord(t *testing.T) {
	proc := &fdfile.Process{PID: 7, Command: "cat"}
	f := &releaseCounter{Base: fdfile.NewFile(nil, fdfile.Stat{Inode: 9}, "/etc/hosts", nil, 3)}

	row := renderRow(proc, f, []column.ID{column.Command, column.Assoc, column.Inode, column.Name})

	assert.Equal(t, 1, f.released)
	assert.Equal(t, 7, row.PID)
	assert.Equal(t, []string{"cat", "3", "9", "/etc/hosts"}, row.Cells)
}

func TestRowFields(t *testing.T) {
	row := Row{PID: 1, Cells: []string{"SOCK", "TCP"}}
	got := row.Fields([]column.ID{column.Type, column.ProtoName, column.Name})
	assert.Equal(t, map[string]string{"TYPE": "SOCK", "PROTONAME": "TCP"}, got)
}
