//go:build linux

package fdfile

import "golang.org/x/sys/unix"

var getxattr = unix.Getxattr
