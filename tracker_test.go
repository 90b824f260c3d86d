package nanotemp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameroman/nanotemp/lib/atexit"
)

// testTracker returns a Tracker whose generated paths live under a
// per-test directory and whose exit hook goes nowhere.
func testTracker(t *testing.T) (*Tracker, *Options) {
	tr := NewTracker()
	tr.installHook = func(fn func() error) atexit.FnHandle { return nil }
	return tr, &Options{Dir: t.TempDir()}
}

func TestTrackingDisabled(t *testing.T) {
	tr, opts := testTracker(t)
	tr.SetTracking(false)
	assert.False(t, tr.Tracking())

	// creation still works, it just isn't recorded
	f, err := tr.NewFile(opts)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = tr.CleanupSync()
	assert.ErrorIs(t, err, ErrNotTracking)
	_, err = tr.CleanupFilesSync()
	assert.ErrorIs(t, err, ErrNotTracking)

	// the file was left alone
	_, err = os.Stat(f.Name())
	assert.NoError(t, err)

	// nothing was recorded while tracking was off
	tr.SetTracking(true)
	c, err := tr.CleanupSync()
	require.NoError(t, err)
	assert.Equal(t, Counts{}, c)
}

func TestExitHookInstalledOnce(t *testing.T) {
	tr, opts := testTracker(t)
	installs := 0
	tr.installHook = func(fn func() error) atexit.FnHandle {
		installs++
		return nil
	}

	for i := 0; i < 100; i++ {
		f, err := tr.NewFile(opts)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}
	_, err := tr.NewDir(opts)
	require.NoError(t, err)

	assert.Equal(t, 1, installs)
}

func TestForget(t *testing.T) {
	tr, opts := testTracker(t)

	f, err := tr.NewFile(opts)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	dir, err := tr.NewDir(opts)
	require.NoError(t, err)

	assert.True(t, tr.Forget(f.Name()))
	assert.False(t, tr.Forget(f.Name()))
	assert.False(t, tr.Forget(filepath.Join(opts.Dir, "never-created")))

	c, err := tr.CleanupSync()
	require.NoError(t, err)
	assert.Equal(t, Counts{Files: 0, Dirs: 1}, c)

	// forgotten file survived the drain
	_, err = os.Stat(f.Name())
	assert.NoError(t, err)
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestExitCleanup(t *testing.T) {
	tr, opts := testTracker(t)

	f, err := tr.NewFile(opts)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, tr.exitCleanup())
	_, err = os.Stat(f.Name())
	assert.True(t, os.IsNotExist(err))

	// not tracking is not an error at exit time
	tr.SetTracking(false)
	assert.NoError(t, tr.exitCleanup())
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
}
