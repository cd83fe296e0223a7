package fdfile

import (
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/productdevbook/fdinspect/cli/internal/column"
)

type xattrCall struct {
	path string
	attr string
	size int
}

func stubXattr(t *testing.T, value string, err error) *[]xattrCall {
	t.Helper()
	var calls []xattrCall
	saved := getxattr
	getxattr = func(path, attr string, dest []byte) (int, error) {
		calls = append(calls, xattrCall{path: path, attr: attr, size: len(dest)})
		if err != nil {
			return -1, err
		}
		return copy(dest, value), nil
	}
	t.Cleanup(func() { getxattr = saved })
	return &calls
}

var sockStat = Stat{DevMajor: 0, DevMinor: 8, Inode: 12345, Mode: 0140777}

func TestNewSocketReadsProtoName(t *testing.T) {
	calls := stubXattr(t, "TCP\x00", nil)

	s := NewSocket(nil, sockStat, "socket:[12345]", nil, 7, &Process{PID: 4242})

	require.Len(t, *calls, 1)
	assert.Equal(t, "/proc/4242/fd/7", (*calls)[0].path)
	assert.Equal(t, "system.sockprotoname", (*calls)[0].attr)
	assert.Equal(t, 255, (*calls)[0].size)

	proto, ok := s.ProtoName()
	assert.True(t, ok)
	assert.Equal(t, "TCP", proto)
	assert.Same(t, SocketClass, s.Class())
	assert.Equal(t, 7, s.FD())
}

func TestNewSocketValueWithoutTerminator(t *testing.T) {
	stubXattr(t, "UNIX", nil)

	s := NewSocket(nil, sockStat, "socket:[1]", nil, 3, &Process{PID: 1})
	proto, ok := s.ProtoName()
	assert.True(t, ok)
	assert.Equal(t, "UNIX", proto)
}

func TestNewSocketLookupFailureLeavesProtoNameUnset(t *testing.T) {
	for name, tc := range map[string]struct {
		value string
		err   error
	}{
		"error":     {err: errors.New("operation not supported")},
		"zero":      {value: ""},
		"too large": {err: syscall.ERANGE},
	} {
		t.Run(name, func(t *testing.T) {
			stubXattr(t, tc.value, tc.err)

			s := NewSocket(nil, sockStat, "socket:[12345]", nil, 3, &Process{PID: 1})
			_, ok := s.ProtoName()
			assert.False(t, ok)
		})
	}
}

func TestNewSocketWithoutDescriptorSkipsLookup(t *testing.T) {
	calls := stubXattr(t, "TCP", nil)

	s := NewSocket(nil, sockStat, "socket:[12345]", &MapData{}, -1, &Process{PID: 1})

	assert.Empty(t, *calls)
	_, ok := s.ProtoName()
	assert.False(t, ok)
}

func TestNewSocketKeepsClassOverride(t *testing.T) {
	stubXattr(t, "", nil)
	unix := &Class{Name: "unix", Super: SocketClass}

	s := NewSocket(unix, sockStat, "socket:[1]", nil, -1, nil)
	assert.Same(t, unix, s.Class())
}

func TestSocketRenderColumn(t *testing.T) {
	stubXattr(t, "TCP", nil)
	s := NewSocket(nil, sockStat, "socket:[12345]", nil, 3, &Process{PID: 1})

	cases := []struct {
		id   column.ID
		want string
		ok   bool
	}{
		{column.Type, "SOCK", true},
		{column.ProtoName, "TCP", true},
		{column.Name, "TCP:[12345]", true},
		{column.DevName, "nodev:sockfs", true},
		{column.Inode, "", false},
		{column.PID, "", false},
		{column.ID(99), "", false},
	}
	for _, tc := range cases {
		got, ok := s.RenderColumn(tc.id)
		assert.Equal(t, tc.ok, ok, tc.id.String())
		assert.Equal(t, tc.want, got, tc.id.String())
	}
}

func TestSocketRenderWithoutProtoName(t *testing.T) {
	stubXattr(t, "", errors.New("no data"))
	s := NewSocket(nil, sockStat, "socket:[12345]", nil, 3, &Process{PID: 1})

	v, ok := s.RenderColumn(column.Type)
	assert.True(t, ok)
	assert.Equal(t, "SOCK", v)

	_, ok = s.RenderColumn(column.ProtoName)
	assert.False(t, ok)
	_, ok = s.RenderColumn(column.Name)
	assert.False(t, ok)

	v, ok = s.RenderColumn(column.DevName)
	assert.True(t, ok)
	assert.Equal(t, "nodev:sockfs", v)
}

func TestSocketNameNeedsPrefix(t *testing.T) {
	stubXattr(t, "TCP", nil)
	s := NewSocket(nil, sockStat, "anon_inode:[eventpoll]", nil, 3, &Process{PID: 1})

	_, ok := s.RenderColumn(column.Name)
	assert.False(t, ok)
	_, ok = s.RenderColumn(column.DevName)
	assert.False(t, ok)

	v, _ := s.RenderColumn(column.ProtoName)
	assert.Equal(t, "TCP", v)
}

func TestSocketDevNameNeedsMajorZero(t *testing.T) {
	stubXattr(t, "TCP", nil)
	st := sockStat
	st.DevMajor = 8
	s := NewSocket(nil, st, "socket:[12345]", nil, 3, &Process{PID: 1})

	_, ok := s.RenderColumn(column.DevName)
	assert.False(t, ok)
}

func TestSocketReleaseIsIdempotent(t *testing.T) {
	stubXattr(t, "UDP", nil)
	s := NewSocket(nil, sockStat, "socket:[9]", nil, 3, &Process{PID: 1})

	s.Release()
	_, ok := s.ProtoName()
	assert.False(t, ok)

	assert.NotPanics(t, s.Release)
	_, ok = s.RenderColumn(column.ProtoName)
	assert.False(t, ok)
	v, _ := s.RenderColumn(column.Type)
	assert.Equal(t, "SOCK", v)
}

func TestNewSocketEmptyValueIsKept(t *testing.T) {
	stubXattr(t, "\x00", nil)
	s := NewSocket(nil, sockStat, "socket:[12345]", nil, 3, &Process{PID: 1})

	proto, ok := s.ProtoName()
	assert.True(t, ok)
	assert.Equal(t, "", proto)

	v, ok := s.RenderColumn(column.Name)
	assert.True(t, ok)
	assert.Equal(t, ":[12345]", v)
}

func TestNewSocketKeepsFullBuffer(t *testing.T) {
	long := strings.Repeat("P", protoNameMax)
	stubXattr(t, long, nil)
	s := NewSocket(nil, sockStat, "socket:[1]", nil, 3, &Process{PID: 1})

	proto, ok := s.ProtoName()
	assert.True(t, ok)
	assert.Len(t, proto, 255)
	assert.Equal(t, long, proto)
}
