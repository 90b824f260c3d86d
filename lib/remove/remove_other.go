//go:build windows || plan9

package remove

// isBusy always reports false on platforms without an EBUSY errno we
// can check for. Removal errors there surface on the first attempt.
func isBusy(err error) bool {
	return false
}
