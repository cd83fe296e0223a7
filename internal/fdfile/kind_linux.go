//go:build linux

package fdfile

import "golang.org/x/sys/unix"

// KindFromMode classifies the st_mode of a stat snapshot.
func KindFromMode(mode uint32) Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return KindRegular
	case unix.S_IFDIR:
		return KindDir
	case unix.S_IFCHR:
		return KindChar
	case unix.S_IFBLK:
		return KindBlock
	case unix.S_IFIFO:
		return KindFIFO
	case unix.S_IFLNK:
		return KindLink
	case unix.S_IFSOCK:
		return KindSock
	}
	return KindUnknown
}
