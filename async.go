package nanotemp

import (
	"context"
	"os"
)

// Callback variants for callers which prefer completion callbacks to
// blocking calls. Each one runs its blocking counterpart in a new
// goroutine and delivers the result to cb exactly once. Passing a nil
// callback panics immediately.

// NewDirAsync creates a temporary directory like NewDir and hands the
// result to cb.
func (t *Tracker) NewDirAsync(opts *Options, cb func(path string, err error)) {
	if cb == nil {
		panic("nanotemp: nil completion callback")
	}
	go func() {
		cb(t.NewDir(opts))
	}()
}

// NewFileAsync creates a temporary file like NewFile and hands the
// result to cb.
func (t *Tracker) NewFileAsync(opts *Options, cb func(f *os.File, err error)) {
	if cb == nil {
		panic("nanotemp: nil completion callback")
	}
	go func() {
		cb(t.NewFile(opts))
	}()
}

// CleanupFilesAsync drains tracked files like CleanupFiles and hands
// the result to cb.
func (t *Tracker) CleanupFilesAsync(ctx context.Context, cb func(n int, err error)) {
	if cb == nil {
		panic("nanotemp: nil completion callback")
	}
	go func() {
		cb(t.CleanupFiles(ctx))
	}()
}

// CleanupDirsAsync drains tracked directories like CleanupDirs and
// hands the result to cb.
func (t *Tracker) CleanupDirsAsync(ctx context.Context, cb func(n int, err error)) {
	if cb == nil {
		panic("nanotemp: nil completion callback")
	}
	go func() {
		cb(t.CleanupDirs(ctx))
	}()
}

// CleanupAsync drains everything like Cleanup and hands the result to
// cb.
func (t *Tracker) CleanupAsync(ctx context.Context, cb func(c Counts, err error)) {
	if cb == nil {
		panic("nanotemp: nil completion callback")
	}
	go func() {
		cb(t.Cleanup(ctx))
	}()
}
