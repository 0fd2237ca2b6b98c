//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

// IsTerminal reports whether fd refers to a terminal. Terminal detection is
// not supported on this platform.
func IsTerminal(fd uintptr) bool {
	return false
}
