// Package file provides the create and open primitives used for
// temporary files and directories.
//
// Everything here creates exclusively: an existing path at the chosen
// name is an error, never something to reuse or truncate. Collisions
// with another process generating the same name are therefore detected
// at create time rather than papered over.
package file

import "os"

// TempFileMode is the permission bits for newly created temporary files.
const TempFileMode os.FileMode = 0600

// TempDirMode is the permission bits for newly created temporary directories.
const TempDirMode os.FileMode = 0700

// OpenExclusive creates the named file with mode 0600 and opens it for
// read-write. It fails if the file already exists.
// If there is an error, it will be of type *PathError.
func OpenExclusive(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_EXCL, TempFileMode)
}

// Mkdir creates the named directory with mode 0700. It fails if the
// directory already exists.
// If there is an error, it will be of type *PathError.
func Mkdir(name string) error {
	return os.Mkdir(name, TempDirMode)
}

// MkdirAll creates the named directory tree, with the given mode for
// any directory it creates. Unlike Mkdir it is idempotent: an existing
// directory at path is not an error.
func MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
