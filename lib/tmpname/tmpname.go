// Package tmpname generates unique absolute paths for temporary files
// and directories from prefix/suffix/dir affixes.
//
// A generated name looks like
//
//	<dir>/<prefix><pid>-<sequence>-<random><suffix>
//
// The pid and per-process sequence number keep names from colliding
// within and across processes in practice, but uniqueness is only
// guaranteed by creating the path exclusively - see lib/file.
package tmpname

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/gameroman/nanotemp/lib/random"
)

// Dir is the process-wide base directory for generated names. Empty
// means os.TempDir().
var Dir string

// randomLen is the length of the random base-36 component.
const randomLen = 12

var sequence uint32

// Options are the affixes a caller can set on a generated name. All
// fields are optional.
type Options struct {
	Prefix string // basename prefix; empty means the caller's default
	Suffix string // basename suffix, eg ".txt"
	Dir    string // parent directory; relative paths are under the base dir
}

// New returns a fresh absolute path whose basename starts with
// opts.Prefix (or defaultPrefix if unset) and ends with opts.Suffix.
//
// opts may be nil. A malformed affix - a path separator in prefix or
// suffix, or a relative Dir escaping the base directory - is an error.
// Nothing is created on disk.
func New(opts *Options, defaultPrefix string) (string, error) {
	if opts == nil {
		opts = &Options{}
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	if strings.ContainsAny(prefix, `/\`) {
		return "", errors.Errorf("tmpname: prefix %q must not contain a path separator", prefix)
	}
	if strings.ContainsAny(opts.Suffix, `/\`) {
		return "", errors.Errorf("tmpname: suffix %q must not contain a path separator", opts.Suffix)
	}
	dir, err := parent(opts.Dir)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s%d-%d-%s%s", prefix, os.Getpid(), atomic.AddUint32(&sequence, 1), random.Base36(randomLen), opts.Suffix)
	return filepath.Join(dir, name), nil
}

// parent resolves the directory a generated name will live in.
func parent(dir string) (string, error) {
	base := Dir
	if base == "" {
		base = os.TempDir()
	}
	if dir == "" {
		return filepath.Abs(base)
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	abs, err := filepath.Abs(filepath.Join(base, dir))
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	if abs != absBase && !strings.HasPrefix(abs, absBase+string(filepath.Separator)) {
		return "", errors.Errorf("tmpname: dir %q escapes the base directory %q", dir, absBase)
	}
	return abs, nil
}
