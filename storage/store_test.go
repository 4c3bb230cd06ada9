package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crafts-server/models"
)

func TestSetGetRoundtrip(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyWishlist, []string{"1", "3"}))

	var ids []string
	require.NoError(t, store.Get(KeyWishlist, &ids))
	assert.Equal(t, []string{"1", "3"}, ids)

	// Reopen from the same directory: writes must have gone through.
	reopened, err := Open(dir)
	require.NoError(t, err)
	ids = nil
	require.NoError(t, reopened.Get(KeyWishlist, &ids))
	assert.Equal(t, []string{"1", "3"}, ids)
}

func TestGetAbsentKey(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	var ids []string
	err = store.Get(KeyWishlist, &ids)
	assert.ErrorIs(t, err, ErrAbsent)
	assert.False(t, store.Has(KeyWishlist))
}

func TestCorruptKeyReportedAndReset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyWishlist+".json"), []byte("{not json"), 0o644))

	store, err := Open(dir)
	require.NoError(t, err)

	var ids []string
	err = store.Get(KeyWishlist, &ids)
	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, KeyWishlist, corrupt.Key)

	// Reset restores the default document and reads succeed again.
	require.NoError(t, store.Reset(KeyWishlist))
	ids = nil
	require.NoError(t, store.Get(KeyWishlist, &ids))
	assert.Empty(t, ids)
}

func TestResetCurrentUserClearsKey(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyCurrentUser, models.User{Email: "a@b.com", Password: "secret"}))
	require.NoError(t, store.Reset(KeyCurrentUser))

	var u models.User
	assert.ErrorIs(t, store.Get(KeyCurrentUser, &u), ErrAbsent)
}

func TestDeleteRemovesKeyAndFile(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyCurrentUser, models.User{Email: "a@b.com", Password: "secret"}))
	require.NoError(t, store.Delete(KeyCurrentUser))

	var u models.User
	assert.ErrorIs(t, store.Get(KeyCurrentUser, &u), ErrAbsent)
	_, statErr := os.Stat(filepath.Join(dir, KeyCurrentUser+".json"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestSeedOnlyFillsEmptyKeys(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Seed())

	var products []models.Product
	require.NoError(t, store.Get(KeyProducts, &products))
	require.Len(t, products, 4)

	// Trim the catalog, then seed again: existing data must survive.
	require.NoError(t, store.Set(KeyProducts, products[:1]))
	require.NoError(t, store.Seed())

	products = nil
	require.NoError(t, store.Get(KeyProducts, &products))
	assert.Len(t, products, 1)
	assert.Equal(t, "Handwoven Cotton Scarf", products[0].Name)
}
