package storage_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"schoolsite/internal/infra/storage"
)

func TestLocalStore_SaveOpenRemove(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	rel, err := store.Save("products", "photo.JPG", strings.NewReader("image bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "products/"))
	assert.True(t, strings.HasSuffix(rel, ".jpg"), "extension is lowercased: %s", rel)

	f, err := store.Open(rel)
	assert.NoError(t, err)
	content, err := io.ReadAll(f)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	assert.Equal(t, "image bytes", string(content))

	assert.NoError(t, store.Remove(rel))
	_, err = os.Stat(store.Abs(rel))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_RemoveMissingIsNotAnError(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, store.Remove("products/2026/03/nope.jpg"))
}

func TestLocalStore_UniqueNamesForSameOriginal(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	a, err := store.Save("docs", "handbook.pdf", strings.NewReader("a"))
	assert.NoError(t, err)
	b, err := store.Save("docs", "handbook.pdf", strings.NewReader("b"))
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
