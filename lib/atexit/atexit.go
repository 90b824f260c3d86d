// Package atexit provides the process exit hook used to remove
// tracked temporary paths on graceful shutdown.
//
// Handlers registered here run exactly once, either when the program
// calls Run on its way out of main or when the process receives an
// interrupt or termination signal. A forced kill (SIGKILL) or a crash
// never runs them.
package atexit

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/gameroman/nanotemp/lib/errcount"
	"github.com/gameroman/nanotemp/lib/exitcode"
)

// FnHandle is the type of the handle returned by Register which can be
// passed to Unregister.
type FnHandle *func() error

var (
	fnsMutex     sync.Mutex
	fns          []FnHandle
	exitChan     chan os.Signal
	exitOnce     sync.Once
	registerOnce sync.Once
	signalled    int32
)

// Register a function to be run on process exit, after any functions
// registered before it. The first Register call installs the signal
// handler for SIGINT and SIGTERM.
//
// Returns a handle which can be passed to Unregister, typically
//
//	defer atexit.Unregister(atexit.Register(fn))
func Register(fn func() error) FnHandle {
	fnsMutex.Lock()
	handle := &fn
	fns = append(fns, handle)
	fnsMutex.Unlock()

	registerOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		fnsMutex.Lock()
		exitChan = ch
		fnsMutex.Unlock()
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		go func() {
			sig := <-ch
			if sig == nil {
				return
			}
			signal.Stop(ch)
			atomic.StoreInt32(&signalled, 1)
			logrus.Infof("signal %v received: running exit handlers", sig)
			if err := Run(); err != nil {
				logrus.Errorf("%v", err)
				os.Exit(exitcode.CleanupError)
			}
			if ss, ok := sig.(syscall.Signal); ok {
				// conventional exit status for death by signal
				os.Exit(128 + int(ss))
			}
			os.Exit(exitcode.Success)
		}()
	})
	return handle
}

// Signalled returns true if SIGINT or SIGTERM has been received.
func Signalled() bool {
	return atomic.LoadInt32(&signalled) != 0
}

// Unregister a function using the handle returned by Register. A nil
// handle is ignored.
func Unregister(handle FnHandle) {
	if handle == nil {
		return
	}
	fnsMutex.Lock()
	defer fnsMutex.Unlock()
	for i, h := range fns {
		if h == handle {
			fns = append(fns[:i], fns[i+1:]...)
			break
		}
	}
}

// IgnoreSignals stops the signal handler, for programs which manage
// their own signals. Run must then be called explicitly.
//
// Safe to call from any goroutine, any number of times.
func IgnoreSignals() {
	registerOnce.Do(func() {})
	fnsMutex.Lock()
	defer fnsMutex.Unlock()
	if exitChan != nil {
		signal.Stop(exitChan)
		close(exitChan)
		exitChan = nil
	}
}

// Run the registered handlers, most recently registered first.
// Repeated calls run them only once. All handlers run even if an
// earlier one fails; the returned error summarises any failures with
// the first error seen.
//
// Callers which want the process exit status to reflect a cleanup
// failure must check the returned error - see cmd/nanotemp for the
// canonical pattern.
func Run() error {
	var err error
	exitOnce.Do(func() {
		fnsMutex.Lock()
		handlers := make([]FnHandle, len(fns))
		copy(handlers, fns)
		fns = nil
		fnsMutex.Unlock()

		ec := errcount.New()
		for i := len(handlers) - 1; i >= 0; i-- {
			ec.Add((*handlers[i])())
		}
		err = ec.Err("exit cleanup")
	})
	return err
}
