// Package remove deletes paths recursively, tolerating paths which are
// already gone and retrying paths which are temporarily busy.
package remove

import (
	"context"
	"fmt"
	"os"
	"time"
)

// BusyRetries is how many times a removal is attempted before a
// "resource busy" error is surfaced to the caller.
const BusyRetries = 6

// busyWait is the pause between retries of a busy path.
const busyWait = 50 * time.Millisecond

// removeAll does the actual deletion, swappable so the retry policy
// can be tested without a genuinely busy filesystem.
var removeAll = os.RemoveAll

// All removes path and everything under it. A path which does not
// exist is not an error. Busy paths are retried up to BusyRetries
// times before the error is surfaced.
func All(path string) error {
	return AllContext(context.Background(), path)
}

// AllContext is like All but gives up between retries if ctx is
// cancelled. The removal attempt itself is not interruptible.
func AllContext(ctx context.Context, path string) error {
	var err error
	for try := 1; ; try++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = removeAll(path)
		if err == nil || !isBusy(err) || try >= BusyRetries {
			break
		}
		select {
		case <-time.After(time.Duration(try) * busyWait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err != nil {
		return fmt.Errorf("remove %q: %w", path, err)
	}
	return nil
}
