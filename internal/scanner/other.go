//go:build !linux

package scanner

type unsupportedScanner struct{}

func newPlatformScanner() Scanner {
	return unsupportedScanner{}
}

func (unsupportedScanner) Scan(Options) ([]Row, error) {
	return nil, ErrUnsupported
}
