package nanotemp

import (
	"context"
	"errors"
	"sync"

	"github.com/gameroman/nanotemp/lib/atexit"
	"github.com/gameroman/nanotemp/lib/remove"
)

// Tracker records every temporary path created through it and removes
// them again when asked to, or when the process shuts down gracefully.
//
// A Tracker starts out tracking. While tracking is disabled nothing is
// recorded and the cleanup operations fail with ErrNotTracking.
//
// The zero value is not usable - call NewTracker, or use the
// package-level functions which share a process-wide Tracker.
type Tracker struct {
	mu            sync.Mutex
	tracking      bool
	files         []string
	dirs          []string
	hookInstalled bool

	// collaborators, swapped out in tests
	removeAll        func(path string) error
	removeAllContext func(ctx context.Context, path string) error
	installHook      func(fn func() error) atexit.FnHandle
}

// NewTracker returns a Tracker with tracking enabled and no paths
// recorded.
func NewTracker() *Tracker {
	return &Tracker{
		tracking:         true,
		removeAll:        remove.All,
		removeAllContext: remove.AllContext,
		installHook:      atexit.Register,
	}
}

var (
	defaultTracker *Tracker
	defaultOnce    sync.Once
)

// Default returns the process-wide Tracker used by the package-level
// functions, creating it on first use.
func Default() *Tracker {
	defaultOnce.Do(func() {
		defaultTracker = NewTracker()
	})
	return defaultTracker
}

// SetTracking turns tracking on or off. Paths recorded before
// tracking was turned off stay recorded and become reachable again
// when it is turned back on.
func (t *Tracker) SetTracking(enabled bool) {
	t.mu.Lock()
	t.tracking = enabled
	t.mu.Unlock()
}

// Tracking reports whether created paths are currently being recorded.
func (t *Tracker) Tracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracking
}

func (t *Tracker) registerFile(path string) {
	t.register(&t.files, path)
}

func (t *Tracker) registerDir(path string) {
	t.register(&t.dirs, path)
}

// register records path for later removal. It must only be called
// after the underlying create succeeded. The first recorded path
// installs the process exit hook.
func (t *Tracker) register(list *[]string, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.tracking {
		return
	}
	if !t.hookInstalled {
		t.installHook(t.exitCleanup)
		t.hookInstalled = true
	}
	*list = append(*list, path)
}

// Forget drops the oldest tracked occurrence of path without removing
// anything from disk. It reports whether path was tracked.
func (t *Tracker) Forget(path string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, list := range []*[]string{&t.files, &t.dirs} {
		for i, p := range *list {
			if p == path {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return true
			}
		}
	}
	return false
}

// exitCleanup is the exit-time pass. It must stay synchronous: it runs
// from the atexit handler where starting new asynchronous work is not
// an option any more.
func (t *Tracker) exitCleanup() error {
	_, err := t.CleanupSync()
	if errors.Is(err, ErrNotTracking) {
		return nil
	}
	return err
}
