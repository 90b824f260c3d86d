//go:build !windows && !plan9

package remove

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isBusy reports whether err means the path is in use and worth
// retrying, eg a mount point or a file open with mandatory locking.
func isBusy(err error) bool {
	return errors.Is(err, unix.EBUSY)
}
