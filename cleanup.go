package nanotemp

import (
	"context"
	"errors"

	"github.com/gameroman/nanotemp/lib/errcount"
)

// ErrNotTracking is returned by every cleanup operation when tracking
// has been disabled with SetTracking(false).
var ErrNotTracking = errors.New("not tracking temporary paths")

// Counts reports how many tracked paths a cleanup pass removed.
type Counts struct {
	Files int
	Dirs  int
}

// CleanupFilesSync removes every tracked file, oldest first, blocking
// until the registry is empty. Every entry leaves the registry whether
// or not its removal succeeds, so a failed path is not retried by a
// later pass. A path already gone from disk counts as removed.
//
// Returns how many entries were removed and an error summarising any
// failures, with the first failure wrapped.
func (t *Tracker) CleanupFilesSync() (int, error) {
	return t.drainSync(&t.files, "files")
}

// CleanupDirsSync is CleanupFilesSync for tracked directories.
func (t *Tracker) CleanupDirsSync() (int, error) {
	return t.drainSync(&t.dirs, "dirs")
}

// CleanupSync drains files then directories. The counts cover both
// passes; the error is the file pass error if there was one, else the
// directory pass error.
func (t *Tracker) CleanupSync() (Counts, error) {
	var c Counts
	var err error
	c.Files, err = t.CleanupFilesSync()
	if errors.Is(err, ErrNotTracking) {
		return Counts{}, err
	}
	var dirErr error
	c.Dirs, dirErr = t.CleanupDirsSync()
	if err == nil {
		err = dirErr
	}
	return c, err
}

func (t *Tracker) drainSync(list *[]string, what string) (int, error) {
	if !t.Tracking() {
		return 0, ErrNotTracking
	}
	n := 0
	ec := errcount.New()
	for {
		t.mu.Lock()
		if len(*list) == 0 {
			t.mu.Unlock()
			break
		}
		path := (*list)[0]
		*list = (*list)[1:]
		t.mu.Unlock()
		if err := t.removeAll(path); err != nil {
			ec.Add(err)
			continue
		}
		n++
	}
	return n, ec.Err("cleanup " + what)
}

// CleanupFiles removes every tracked file concurrently, one removal in
// flight per entry, and returns when all of them have reported or as
// soon as one fails. On failure the count covers the removals which
// had already completed; the outcome of the rest is discarded, though
// their removals keep running to completion.
//
// The registry is emptied up front, so paths recorded while the drain
// is in flight are untouched and wait for a future cleanup.
func (t *Tracker) CleanupFiles(ctx context.Context) (int, error) {
	return t.drain(ctx, &t.files)
}

// CleanupDirs is CleanupFiles for tracked directories.
func (t *Tracker) CleanupDirs(ctx context.Context) (int, error) {
	return t.drain(ctx, &t.dirs)
}

// Cleanup drains files and then, only if every file removal
// succeeded, directories. Either stage's error is returned with
// whatever counts had accumulated by then.
func (t *Tracker) Cleanup(ctx context.Context) (Counts, error) {
	var c Counts
	var err error
	c.Files, err = t.CleanupFiles(ctx)
	if err != nil {
		return c, err
	}
	c.Dirs, err = t.CleanupDirs(ctx)
	return c, err
}

func (t *Tracker) drain(ctx context.Context, list *[]string) (int, error) {
	if !t.Tracking() {
		return 0, ErrNotTracking
	}
	t.mu.Lock()
	paths := *list
	*list = nil
	t.mu.Unlock()
	if len(paths) == 0 {
		return 0, nil
	}

	// Buffered to the number of workers so the ones whose results are
	// discarded after a failure can still finish and exit.
	results := make(chan error, len(paths))
	for _, path := range paths {
		path := path
		go func() {
			results <- t.removeAllContext(ctx, path)
		}()
	}

	n := 0
	for range paths {
		if err := <-results; err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
