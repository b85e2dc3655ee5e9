package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "recipes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGet(t *testing.T) {
	store := openTestStore(t)

	ok := store.Save("recipe_example.com_20250314_092653.md", "# Pie\n\nbody", "Pie", "alice")
	require.True(t, ok)

	body, found := store.Get("recipe_example.com_20250314_092653.md", "alice")
	require.True(t, found)
	assert.Equal(t, "# Pie\n\nbody", body)
}

func TestGetMissing(t *testing.T) {
	store := openTestStore(t)

	_, found := store.Get("nope.md", "alice")
	assert.False(t, found)
}

func TestOwnerIsolation(t *testing.T) {
	store := openTestStore(t)
	require.True(t, store.Save("shared.md", "alice's recipe", "Pie", "alice"))

	_, found := store.Get("shared.md", "bob")
	assert.False(t, found, "owners must not see each other's recipes")
	assert.Empty(t, store.List("bob"))
}

func TestSaveUpsert(t *testing.T) {
	store := openTestStore(t)
	require.True(t, store.Save("f.md", "v1", "Pie", "alice"))
	require.True(t, store.Save("f.md", "v2", "Better Pie", "alice"))

	body, found := store.Get("f.md", "alice")
	require.True(t, found)
	assert.Equal(t, "v2", body)

	entries := store.List("alice")
	require.Len(t, entries, 1)
	assert.Equal(t, "Better Pie", entries[0].Name)
}

func TestList(t *testing.T) {
	store := openTestStore(t)
	require.True(t, store.Save("a.md", "body a", "A", "alice"))
	require.True(t, store.Save("b.md", "body b", "B", "alice"))

	entries := store.List("alice")
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEmpty(t, e.Filename)
		assert.NotEmpty(t, e.Created)
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	require.True(t, store.Save("gone.md", "body", "Gone", "alice"))

	assert.True(t, store.Delete("gone.md", "alice"))
	_, found := store.Get("gone.md", "alice")
	assert.False(t, found)

	assert.False(t, store.Delete("gone.md", "alice"), "second delete reports false")
	assert.False(t, store.Delete("never.md", "bob"))
}
