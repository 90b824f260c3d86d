package remove

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	dir := t.TempDir()

	// build a small tree
	sub := filepath.Join(dir, "tree", "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "file"), []byte("x"), 0600))

	require.NoError(t, All(filepath.Join(dir, "tree")))
	_, err := os.Stat(filepath.Join(dir, "tree"))
	assert.True(t, os.IsNotExist(err))
}

func TestAllMissing(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, All(filepath.Join(dir, "does-not-exist")))
}

func TestAllFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	require.NoError(t, All(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAllContextCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := AllContext(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)

	// nothing was removed
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
