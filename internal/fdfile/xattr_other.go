//go:build !linux

package fdfile

import "errors"

var getxattr = func(string, string, []byte) (int, error) {
	return 0, errors.ErrUnsupported
}
