package nanotemp

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asyncWait = 5 * time.Second

func TestNewDirAsync(t *testing.T) {
	tr, opts := testTracker(t)

	type result struct {
		path string
		err  error
	}
	results := make(chan result, 1)
	tr.NewDirAsync(opts, func(path string, err error) {
		results <- result{path, err}
	})

	select {
	case res := <-results:
		require.NoError(t, res.err)
		fi, err := os.Stat(res.path)
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	case <-time.After(asyncWait):
		t.Fatal("callback never delivered")
	}
}

func TestNewFileAsync(t *testing.T) {
	tr, opts := testTracker(t)

	type result struct {
		f   *os.File
		err error
	}
	results := make(chan result, 1)
	tr.NewFileAsync(opts, func(f *os.File, err error) {
		results <- result{f, err}
	})

	select {
	case res := <-results:
		require.NoError(t, res.err)
		assert.NoError(t, res.f.Close())
	case <-time.After(asyncWait):
		t.Fatal("callback never delivered")
	}
}

func TestCleanupAsyncCallback(t *testing.T) {
	tr, opts := testTracker(t)
	paths := makeFiles(t, tr, opts, 2)

	type result struct {
		c   Counts
		err error
	}
	results := make(chan result, 1)
	tr.CleanupAsync(context.Background(), func(c Counts, err error) {
		results <- result{c, err}
	})

	select {
	case res := <-results:
		require.NoError(t, res.err)
		assert.Equal(t, Counts{Files: 2, Dirs: 0}, res.c)
		for _, path := range paths {
			_, err := os.Stat(path)
			assert.True(t, os.IsNotExist(err), path)
		}
	case <-time.After(asyncWait):
		t.Fatal("callback never delivered")
	}
}

func TestAsyncNilCallback(t *testing.T) {
	tr, opts := testTracker(t)

	assert.Panics(t, func() { tr.NewDirAsync(opts, nil) })
	assert.Panics(t, func() { tr.NewFileAsync(opts, nil) })
	assert.Panics(t, func() { tr.CleanupAsync(context.Background(), nil) })
	assert.Panics(t, func() { tr.CleanupFilesAsync(context.Background(), nil) })
	assert.Panics(t, func() { tr.CleanupDirsAsync(context.Background(), nil) })
}
