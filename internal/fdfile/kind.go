package fdfile

// Kind is the coarse type of the object a descriptor points at.
type Kind int

const (
	KindUnknown Kind = iota
	KindRegular
	KindDir
	KindChar
	KindBlock
	KindFIFO
	KindLink
	KindSock
)

var kindNames = map[Kind]string{
	KindUnknown: "UNKN",
	KindRegular: "REG",
	KindDir:     "DIR",
	KindChar:    "CHR",
	KindBlock:   "BLK",
	KindFIFO:    "FIFO",
	KindLink:    "LINK",
	KindSock:    "SOCK",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// Factory builds the record for one discovered descriptor. fd is -1 for
// associations without a live descriptor (memory maps).
type Factory func(class *Class, st Stat, name string, mapData *MapData, fd int, proc *Process) File

var factories = map[Kind]Factory{
	KindSock: newSocketFile,
}

// FactoryFor returns the factory for kind, falling back to the generic record.
func FactoryFor(kind Kind) Factory {
	if f, ok := factories[kind]; ok {
		return f
	}
	return newGeneric
}

func newGeneric(class *Class, st Stat, name string, mapData *MapData, fd int, _ *Process) File {
	return NewFile(class, st, name, mapData, fd)
}
