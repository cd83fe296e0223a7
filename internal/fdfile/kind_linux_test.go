//go:build linux

package fdfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/productdevbook/fdinspect/cli/internal/column"
)

func TestKindFromMode(t *testing.T) {
	assert.Equal(t, KindRegular, KindFromMode(unix.S_IFREG|0644))
	assert.Equal(t, KindDir, KindFromMode(unix.S_IFDIR|0755))
	assert.Equal(t, KindChar, KindFromMode(unix.S_IFCHR|0620))
	assert.Equal(t, KindBlock, KindFromMode(unix.S_IFBLK|0660))
	assert.Equal(t, KindFIFO, KindFromMode(unix.S_IFIFO|0600))
	assert.Equal(t, KindLink, KindFromMode(unix.S_IFLNK|0777))
	assert.Equal(t, KindSock, KindFromMode(unix.S_IFSOCK|0777))
	assert.Equal(t, KindUnknown, KindFromMode(0))
}

func TestRenderTypeFromMode(t *testing.T) {
	f := NewFile(nil, Stat{Mode: unix.S_IFIFO | 0600}, "pipe:[88]", nil, 1)
	assert.Equal(t, "FIFO", Render(nil, f, column.Type))
}
