package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clinic-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalFileStore(config.StorageConfig{UploadDir: dir})
	require.NoError(t, err)
	return store, dir
}

func TestSaveAndRemove(t *testing.T) {
	store, dir := newTestStore(t)

	key, err := store.Save("report.pdf", strings.NewReader("file contents"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotEqual(t, "report.pdf", key)

	data, err := os.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, "file contents", string(data))

	require.NoError(t, store.Remove(key))
	_, err = os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	store, dir := newTestStore(t)

	key, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, key, "/")
	assert.NotContains(t, key, "..")

	_, err = os.Stat(filepath.Join(dir, key))
	assert.NoError(t, err)
}

func TestRemoveRejectsTraversal(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Error(t, store.Remove("../outside.txt"))
	assert.Error(t, store.Remove("nested/key.txt"))
}

func TestSaveGeneratesUniqueKeys(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Save("scan.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("scan.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
