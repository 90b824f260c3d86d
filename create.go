package nanotemp

import (
	"bufio"
	"os"

	"github.com/gameroman/nanotemp/lib/file"
	"github.com/gameroman/nanotemp/lib/tmpname"
)

// DefaultPrefix is the basename prefix used when the caller does not
// supply one.
const DefaultPrefix = "tmp-"

// Options selects the affixes of a generated path. See
// lib/tmpname.Options.
type Options = tmpname.Options

// NewDir creates a fresh temporary directory with mode 0700 and
// records it for removal. The create is exclusive: a directory already
// at the generated path is an error, never reused.
func (t *Tracker) NewDir(opts *Options) (string, error) {
	path, err := tmpname.New(opts, DefaultPrefix)
	if err != nil {
		return "", err
	}
	if err := file.Mkdir(path); err != nil {
		return "", err
	}
	t.registerDir(path)
	return path, nil
}

// NewFile creates a fresh temporary file with mode 0600, open for read
// and write, and records its path for removal. The create is
// exclusive, so the returned file cannot be another process's.
//
// Closing the file is the caller's job and independent of the
// tracking: the path is removed at cleanup whether or not the handle
// is still open.
func (t *Tracker) NewFile(opts *Options) (*os.File, error) {
	path, err := tmpname.New(opts, DefaultPrefix)
	if err != nil {
		return nil, err
	}
	f, err := file.OpenExclusive(path)
	if err != nil {
		return nil, err
	}
	t.registerFile(path)
	return f, nil
}

// WriteStream is a buffered writer over a freshly created temporary
// file. Close flushes the buffer before closing the file.
type WriteStream struct {
	*bufio.Writer
	f    *os.File
	path string
}

// Path returns the path of the file backing the stream.
func (ws *WriteStream) Path() string {
	return ws.path
}

// Close flushes any buffered bytes and closes the backing file. The
// flush error wins over the close error.
func (ws *WriteStream) Close() error {
	err := ws.Flush()
	if closeErr := ws.f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// NewWriteStream creates a fresh temporary file and returns a buffered
// write stream over it, recorded for removal like NewFile. It has no
// callback variant.
func (t *Tracker) NewWriteStream(opts *Options) (*WriteStream, error) {
	f, err := t.NewFile(opts)
	if err != nil {
		return nil, err
	}
	return &WriteStream{
		Writer: bufio.NewWriter(f),
		f:      f,
		path:   f.Name(),
	}, nil
}
