package column

import (
	"fmt"
	"strings"
)

// ID identifies an output column. The same IDs are shared by every file
// kind; a kind renders the columns it knows and declines the rest.
type ID int

const (
	Assoc ID = iota
	Command
	DevName
	Inode
	MajMin
	Name
	PID
	ProtoName
	Type
	User
	numColumns
)

type info struct {
	name string
	help string
}

var infos = [numColumns]info{
	Assoc:     {"ASSOC", "association between file and process (fd number or mem)"},
	Command:   {"COMMAND", "command of the process opening the file"},
	DevName:   {"DEVNAME", "device name"},
	Inode:     {"INODE", "inode number"},
	MajMin:    {"MAJ:MIN", "device ID of the file system holding the file"},
	Name:      {"NAME", "name of the file"},
	PID:       {"PID", "PID of the process opening the file"},
	ProtoName: {"PROTONAME", "protocol name of the socket"},
	Type:      {"TYPE", "file type"},
	User:      {"USER", "user of the process"},
}

var defaultColumns = []ID{Command, PID, User, Assoc, Type, DevName, Inode, Name}

func (id ID) String() string {
	if id < 0 || id >= numColumns {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return infos[id].name
}

// Help returns the one-line description shown by "fdinspect columns".
func (id ID) Help() string {
	if id < 0 || id >= numColumns {
		return ""
	}
	return infos[id].help
}

// All returns every known column in declaration order.
func All() []ID {
	ids := make([]ID, numColumns)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Default returns the columns printed when none are requested.
func Default() []ID {
	return append([]ID(nil), defaultColumns...)
}

// Parse looks up a column by name, ignoring case.
func Parse(name string) (ID, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for i, in := range infos {
		if in.name == want {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown column: %q", name)
}

// ParseList parses a comma separated column list such as "PID,TYPE,NAME".
func ParseList(list string) ([]ID, error) {
	var ids []ID
	seen := make(map[ID]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := Parse(part)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate column: %s", id)
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty column list")
	}
	return ids, nil
}

// Names converts ids back to their printable names.
func Names(ids []ID) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
