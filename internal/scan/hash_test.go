package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFileKnownContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abc.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))

	digest, err := HashFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digest)
}

func TestHashFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	digest, err := HashFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", digest)
}

func TestHashFileMissing(t *testing.T) {
	_, err := HashFile(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestHashFileCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HashFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
