package fdfile

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/productdevbook/fdinspect/cli/internal/column"
)

const (
	socketPrefix  = "socket:"
	protoNameAttr = "system.sockprotoname"
	// protoNameMax bounds the xattr read; longer values fail with ERANGE
	// and are treated as absent.
	protoNameMax = 255
)

// Socket is a descriptor pointing into sockfs.
type Socket struct {
	*Base
	protoName *string
}

// NewSocket builds a socket record. When fd refers to a live descriptor of
// proc, the protocol name is looked up once from the system.sockprotoname
// extended attribute; any failure just leaves it unset.
func NewSocket(class *Class, st Stat, name string, mapData *MapData, fd int, proc *Process) *Socket {
	if class == nil {
		class = SocketClass
	}
	s := &Socket{Base: NewFile(class, st, name, mapData, fd)}
	if fd >= 0 && proc != nil {
		s.protoName = lookupProtoName(proc.PID, fd)
	}
	return s
}

func newSocketFile(class *Class, st Stat, name string, mapData *MapData, fd int, proc *Process) File {
	return NewSocket(class, st, name, mapData, fd, proc)
}

func lookupProtoName(pid, fd int) *string {
	path := "/proc/" + strconv.Itoa(pid) + "/fd/" + strconv.Itoa(fd)
	buf := make([]byte, protoNameMax)
	n, err := getxattr(path, protoNameAttr, buf)
	if err != nil || n <= 0 {
		return nil
	}
	if n > len(buf) {
		n = len(buf)
	}
	// sockfs includes the terminating NUL in the value.
	val := buf[:n]
	if i := bytes.IndexByte(val, 0); i >= 0 {
		val = val[:i]
	}
	proto := string(val)
	return &proto
}

// ProtoName returns the protocol label, e.g. "TCP" or "UNIX".
func (s *Socket) ProtoName() (string, bool) {
	if s.protoName == nil {
		return "", false
	}
	return *s.protoName, true
}

func (s *Socket) RenderColumn(id column.ID) (string, bool) {
	switch id {
	case column.Type:
		return "SOCK", true
	case column.ProtoName:
		return s.ProtoName()
	case column.Name:
		proto, ok := s.ProtoName()
		if !ok {
			return "", false
		}
		suffix, found := strings.CutPrefix(s.Name(), socketPrefix)
		if !found {
			return "", false
		}
		return proto + ":" + suffix, true
	case column.DevName:
		if s.Stat().DevMajor == 0 && strings.HasPrefix(s.Name(), socketPrefix) {
			return "nodev:sockfs", true
		}
		return "", false
	}
	return "", false
}

func (s *Socket) Release() {
	s.protoName = nil
	s.Base.Release()
}
