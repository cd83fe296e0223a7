package scanner

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/productdevbook/fdinspect/cli/internal/fdfile"
)

// mapEntry is a file-backed line of /proc/<pid>/maps.
type mapEntry struct {
	path string
	data fdfile.MapData
	// stat as far as the maps line tells it; the mode is unknown
	stat fdfile.Stat
}

// parseMaps returns one entry per distinct mapped path, in file order.
func parseMaps(r io.Reader) ([]mapEntry, error) {
	var entries []mapEntry
	seen := make(map[string]bool)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		e, ok := parseMapsLine(sc.Text())
		if !ok || seen[e.path] {
			continue
		}
		seen[e.path] = true
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

// parseMapsLine parses
//
//	7f2c1a000000-7f2c1a022000 r--p 00000000 fd:01 1234567    /usr/lib/libc.so.6
//
// Anonymous and pseudo mappings ([heap], [vdso], ...) are rejected.
func parseMapsLine(line string) (mapEntry, bool) {
	rest := line
	next := func() string {
		rest = strings.TrimLeft(rest, " \t")
		tok, r, _ := strings.Cut(rest, " ")
		rest = r
		return tok
	}
	addr, perms, off, dev, ino := next(), next(), next(), next(), next()
	path := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(path, "/") {
		return mapEntry{}, false
	}

	lo, hi, ok := strings.Cut(addr, "-")
	if !ok {
		return mapEntry{}, false
	}
	start, err := strconv.ParseUint(lo, 16, 64)
	if err != nil {
		return mapEntry{}, false
	}
	end, err := strconv.ParseUint(hi, 16, 64)
	if err != nil {
		return mapEntry{}, false
	}
	offset, err := strconv.ParseUint(off, 16, 64)
	if err != nil {
		return mapEntry{}, false
	}
	majStr, minStr, ok := strings.Cut(dev, ":")
	if !ok {
		return mapEntry{}, false
	}
	major, err := strconv.ParseUint(majStr, 16, 32)
	if err != nil {
		return mapEntry{}, false
	}
	minor, err := strconv.ParseUint(minStr, 16, 32)
	if err != nil {
		return mapEntry{}, false
	}
	inode, err := strconv.ParseUint(ino, 10, 64)
	if err != nil || inode == 0 {
		return mapEntry{}, false
	}

	return mapEntry{
		path: path,
		data: fdfile.MapData{Start: start, End: end, Perms: perms, Offset: offset},
		stat: fdfile.Stat{DevMajor: uint32(major), DevMinor: uint32(minor), Inode: inode},
	}, true
}
