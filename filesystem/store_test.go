package filesystem_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guadalupeabrile/authentic"
	"github.com/guadalupeabrile/authentic/filesystem"
)

func newImageStore(t *testing.T) (*filesystem.ImageStore, string) {
	t.Helper()
	dir := t.TempDir()
	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	t.Cleanup(func() { root.Close() })
	return filesystem.NewImageStore(root), dir
}

func TestImageStore_Put(t *testing.T) {
	store, dir := newImageStore(t)

	content := []byte("fake jpeg bytes")
	publicPath, err := store.Put(context.Background(), "naturaleza", "123-abc.jpg", bytes.NewReader(content), int64(len(content)), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/photography/naturaleza/123-abc.jpg", publicPath)

	written, err := os.ReadFile(filepath.Join(dir, "naturaleza", "123-abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestImageStore_Put_CreatesCategoryDirectory(t *testing.T) {
	store, dir := newImageStore(t)

	_, err := store.Put(context.Background(), "paisajes-unicos", "f.png", bytes.NewReader([]byte("x")), 1, "image/png")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "paisajes-unicos"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestImageStore_Put_ContextCanceled(t *testing.T) {
	store, dir := newImageStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, "naturaleza", "f.jpg", bytes.NewReader([]byte("x")), 1, "image/jpeg")
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "naturaleza", "f.jpg"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestImageStore_Put_LeavesNoTempFilesBehind(t *testing.T) {
	store, dir := newImageStore(t)

	_, err := store.Put(context.Background(), "retratos", "ok.webp", bytes.NewReader([]byte("x")), 1, "image/webp")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".t", "temp file left behind: %s", entry.Name())
	}
}

func TestDocumentStore_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "photography.json")
	store := filesystem.NewDocumentStore(path)

	doc := []byte(`{"categories":[]}`)
	require.NoError(t, store.Save(context.Background(), doc))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDocumentStore_Load_Missing(t *testing.T) {
	store := filesystem.NewDocumentStore(filepath.Join(t.TempDir(), "photography.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, authentic.ErrNotFound)
}

func TestDocumentStore_Save_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photography.json")
	store := filesystem.NewDocumentStore(path)

	require.NoError(t, store.Save(context.Background(), []byte(`{"categories":[]}`)))
	require.NoError(t, store.Save(context.Background(), []byte(`{"categories":[{"id":"urbana"}]}`)))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"categories":[{"id":"urbana"}]}`), got)
}

func TestDocumentStore_FailedSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "photography.json")
	// A directory squatting on the document path makes the commit rename
	// fail after the temp file has been written.
	require.NoError(t, os.MkdirAll(target, 0o755))

	store := filesystem.NewDocumentStore(target)

	err := store.Save(context.Background(), []byte(`{"categories":[]}`))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "photography.json", entries[0].Name())
}

func TestDocumentStore_ReadPathOrder(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "snapshot", "photography.json")
	scratch := filepath.Join(dir, "scratch", "photography.json")

	require.NoError(t, os.MkdirAll(filepath.Dir(snapshot), 0o755))
	require.NoError(t, os.WriteFile(snapshot, []byte(`{"categories":[{"id":"from-snapshot"}]}`), 0o644))

	store := filesystem.NewDocumentStore(scratch, snapshot, scratch)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(got), "from-snapshot")

	// A write lands in the scratch path without touching the snapshot, but
	// the snapshot still wins on the next read.
	require.NoError(t, store.Save(context.Background(), []byte(`{"categories":[]}`)))

	got, err = store.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(got), "from-snapshot")

	scratchData, err := os.ReadFile(scratch)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"categories":[]}`), scratchData)
}

func TestDocumentStore_ReadPathFallsThrough(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing", "photography.json")
	present := filepath.Join(dir, "present", "photography.json")

	require.NoError(t, os.MkdirAll(filepath.Dir(present), 0o755))
	require.NoError(t, os.WriteFile(present, []byte(`{"categories":[]}`), 0o644))

	store := filesystem.NewDocumentStore(present, missing, present)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"categories":[]}`), got)
}
