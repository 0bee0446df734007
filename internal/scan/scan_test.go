package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmaras/veritree/pkg/veritree"
)

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestScanRegularFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":           "alpha",
		"sub/b.txt":       "beta",
		"sub/deep/c.conf": "gamma",
	})

	records, err := (&Scanner{}).Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, records, 3)

	byName := map[string]veritree.FileRecord{}
	for _, r := range records {
		byName[r.Name] = r
		assert.True(t, filepath.IsAbs(r.Path), "path %q should be absolute", r.Path)
		assert.NotEmpty(t, r.Digest)
		assert.Equal(t, filepath.Base(r.Path), r.Name)
	}
	assert.Contains(t, byName, "a.txt")
	assert.Contains(t, byName, "b.txt")
	assert.Contains(t, byName, "c.conf")
}

func TestScanIncludesHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		".hidden":          "secret",
		".hiddendir/f.txt": "inside",
	})

	records, err := (&Scanner{}).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestScanSkipsNonRegularFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real.txt": "data"})
	require.NoError(t, os.Symlink(filepath.Join(dir, "nope"), filepath.Join(dir, "broken-link")))

	records, err := (&Scanner{}).Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "real.txt", records[0].Name)
}

func TestScanTraversalOrderStable(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt": "1", "b.txt": "2", "c/d.txt": "3", "c/e.txt": "4", "f.txt": "5",
	})

	first, err := (&Scanner{Workers: 4}).Scan(context.Background(), dir)
	require.NoError(t, err)
	second, err := (&Scanner{Workers: 1}).Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, first, second, "parallel and sequential scans should agree on order and content")
}

func TestScanUnreadableFileKeepsRecord(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"ok.txt": "fine", "locked.txt": "nope"})
	require.NoError(t, os.Chmod(filepath.Join(dir, "locked.txt"), 0000))

	records, err := (&Scanner{}).Scan(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, records, 2, "unreadable file must still appear in the scan")

	for _, r := range records {
		switch r.Name {
		case "ok.txt":
			assert.NotEmpty(t, r.Digest)
		case "locked.txt":
			assert.Empty(t, r.Digest, "unreadable file must be recorded without a digest")
		}
	}
}

func TestScanUnreadableSubtreeSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"ok.txt": "fine", "closed/inner.txt": "hidden"})
	closed := filepath.Join(dir, "closed")
	require.NoError(t, os.Chmod(closed, 0000))
	t.Cleanup(func() { _ = os.Chmod(closed, 0755) })

	records, err := (&Scanner{}).Scan(context.Background(), dir)
	require.NoError(t, err, "an unreadable subtree must not fail the scan")
	require.Len(t, records, 1)
	assert.Equal(t, "ok.txt", records[0].Name)
}

func TestScanRootMissing(t *testing.T) {
	_, err := (&Scanner{}).Scan(context.Background(), filepath.Join(t.TempDir(), "absent"))

	var notFound *veritree.PathNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestScanRootIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := (&Scanner{}).Scan(context.Background(), path)

	var notFound *veritree.PathNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestScanCancelled(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Scanner{}).Scan(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveRootAbsolute(t *testing.T) {
	dir := t.TempDir()

	resolved, err := ResolveRoot(dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(resolved))

	info, err := os.Stat(resolved)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
