//go:build !linux

package fdfile

// KindFromMode always reports KindUnknown off Linux.
func KindFromMode(uint32) Kind {
	return KindUnknown
}
