// Package fdfile models the files a process holds open. Every descriptor
// becomes a File record whose class decides how its columns are rendered.
package fdfile

import (
	"github.com/productdevbook/fdinspect/cli/internal/column"
)

// Class is the immutable kind tag of a record.
type Class struct {
	Name  string
	Super *Class
}

var (
	FileClass   = &Class{Name: "file"}
	SocketClass = &Class{Name: "sock", Super: FileClass}
)

// Stat is the stat(2) snapshot taken when the descriptor was discovered.
type Stat struct {
	DevMajor uint32
	DevMinor uint32
	Inode    uint64
	Mode     uint32
	Size     int64
}

// MapData describes a memory-mapped association from /proc/<pid>/maps.
type MapData struct {
	Start  uint64
	End    uint64
	Perms  string
	Offset uint64
}

// Process is the process a record was found in. Records never keep it.
type Process struct {
	PID     int
	Command string
	User    string
}

// File is the per-kind dispatch contract.
type File interface {
	Class() *Class
	Stat() Stat
	Name() string
	FD() int
	Map() *MapData

	// RenderColumn returns the cell for id, or ok=false to let the
	// generic renderer supply a default.
	RenderColumn(id column.ID) (value string, ok bool)

	// Release drops state owned by the record. Calling it twice is safe.
	Release()
}

// Base holds the fields common to every kind.
type Base struct {
	class *Class
	stat  Stat
	name  string
	fd    int
	mapd  *MapData
}

// NewFile builds a generic record. A nil class means FileClass.
func NewFile(class *Class, st Stat, name string, mapData *MapData, fd int) *Base {
	if class == nil {
		class = FileClass
	}
	return &Base{
		class: class,
		stat:  st,
		name:  name,
		fd:    fd,
		mapd:  mapData,
	}
}

func (b *Base) Class() *Class { return b.class }
func (b *Base) Stat() Stat    { return b.stat }
func (b *Base) Name() string  { return b.name }
func (b *Base) FD() int       { return b.fd }
func (b *Base) Map() *MapData { return b.mapd }

// RenderColumn declines everything; Render supplies the defaults.
func (b *Base) RenderColumn(column.ID) (string, bool) { return "", false }

func (b *Base) Release() {}
