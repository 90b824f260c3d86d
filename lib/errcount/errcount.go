// Package errcount provides an easy to use error counter which
// returns error count and first error so as to not overwhelm the user
// with errors from a long cleanup pass.
package errcount

import (
	"fmt"
	"sync"
)

// ErrCount stores the state of the error counter.
type ErrCount struct {
	mu       sync.Mutex
	firstErr error
	count    int
}

// New makes a new error counter
func New() *ErrCount {
	return new(ErrCount)
}

// Add an error to the error count.
//
// err may be nil.
//
// Thread safe.
func (ec *ErrCount) Add(err error) {
	if err == nil {
		return
	}
	ec.mu.Lock()
	ec.count++
	if ec.firstErr == nil {
		ec.firstErr = err
	}
	ec.mu.Unlock()
}

// Err returns the error summary so far - may be nil
//
// txt is put in front of the error summary
//
//	txt: %d errors: first error: %w
//
// or this if only one error
//
//	txt: %w
//
// Thread safe.
func (ec *ErrCount) Err(txt string) error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	if ec.count == 0 {
		return nil
	} else if ec.count == 1 {
		return fmt.Errorf("%s: %w", txt, ec.firstErr)
	}
	return fmt.Errorf("%s: %d errors: first error: %w", txt, ec.count, ec.firstErr)
}
