// Package nanotemp creates uniquely named temporary files, directories
// and write streams, and removes them again when the process shuts
// down gracefully, unless told to keep them.
//
// Basic use:
//
//	f, err := nanotemp.NewFile(&nanotemp.Options{Prefix: "report-", Suffix: ".csv"})
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//	// f is gone from disk once atexit.Run fires (or Cleanup is called)
//
// Every created path is recorded in a process-wide registry whose
// first entry installs an exit hook (see lib/atexit). SetTracking(false)
// turns the registry off, after which creations behave like plain
// mktemp calls and the cleanup operations fail with ErrNotTracking.
//
// Removal on exit covers graceful shutdown only: a return from main
// paired with atexit.Run, or SIGINT/SIGTERM. Nothing survives a
// SIGKILL or a crash.
//
// The package-level functions operate on a shared default Tracker;
// callers which want their own registry, for example one per test,
// can create a Tracker directly.
package nanotemp

import (
	"context"
	"os"

	"github.com/gameroman/nanotemp/lib/tmpname"
)

// SetTracking turns the default Tracker's path recording on or off.
func SetTracking(enabled bool) {
	Default().SetTracking(enabled)
}

// SetBaseDir sets the process-wide base directory generated names live
// under. An empty dir means os.TempDir().
func SetBaseDir(dir string) {
	tmpname.Dir = dir
}

// NewName returns a fresh path with the given affixes without creating
// anything on disk. The name alone is no reservation - only the
// exclusive creates in NewFile, NewDir and NewWriteStream are.
func NewName(opts *Options) (string, error) {
	return tmpname.New(opts, DefaultPrefix)
}

// NewDir creates a tracked temporary directory via the default
// Tracker.
func NewDir(opts *Options) (string, error) {
	return Default().NewDir(opts)
}

// NewFile creates a tracked temporary file via the default Tracker.
func NewFile(opts *Options) (*os.File, error) {
	return Default().NewFile(opts)
}

// NewWriteStream creates a tracked temporary write stream via the
// default Tracker.
func NewWriteStream(opts *Options) (*WriteStream, error) {
	return Default().NewWriteStream(opts)
}

// Forget drops path from the default Tracker without removing it from
// disk.
func Forget(path string) bool {
	return Default().Forget(path)
}

// CleanupSync drains the default Tracker synchronously.
func CleanupSync() (Counts, error) {
	return Default().CleanupSync()
}

// CleanupFilesSync drains the default Tracker's files synchronously.
func CleanupFilesSync() (int, error) {
	return Default().CleanupFilesSync()
}

// CleanupDirsSync drains the default Tracker's directories
// synchronously.
func CleanupDirsSync() (int, error) {
	return Default().CleanupDirsSync()
}

// Cleanup drains the default Tracker with concurrent removals.
func Cleanup(ctx context.Context) (Counts, error) {
	return Default().Cleanup(ctx)
}

// CleanupFiles drains the default Tracker's files with concurrent
// removals.
func CleanupFiles(ctx context.Context) (int, error) {
	return Default().CleanupFiles(ctx)
}

// CleanupDirs drains the default Tracker's directories with concurrent
// removals.
func CleanupDirs(ctx context.Context) (int, error) {
	return Default().CleanupDirs(ctx)
}

// NewDirAsync is the callback form of NewDir on the default Tracker.
func NewDirAsync(opts *Options, cb func(path string, err error)) {
	Default().NewDirAsync(opts, cb)
}

// NewFileAsync is the callback form of NewFile on the default Tracker.
func NewFileAsync(opts *Options, cb func(f *os.File, err error)) {
	Default().NewFileAsync(opts, cb)
}

// CleanupAsync is the callback form of Cleanup on the default Tracker.
func CleanupAsync(ctx context.Context, cb func(c Counts, err error)) {
	Default().CleanupAsync(ctx, cb)
}
