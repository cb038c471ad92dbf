//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package report

// isTerminal is not detected on this platform; auto color stays off.
func isTerminal(int) bool {
	return false
}
