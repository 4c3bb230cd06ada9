package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"crafts-server/storage"
)

// newTestRepo opens a seeded repository over a temp directory with the
// simulated fetch latency disabled.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Seed())
	return New(store, 0)
}

// newEmptyRepo opens a repository over an empty store.
func newEmptyRepo(t *testing.T) *Repository {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	return New(store, 0)
}

func TestShapeInvalidRecordsNeverSurface(t *testing.T) {
	dir := t.TempDir()

	// Parseable JSON whose records violate the declared shape: a rating
	// outside 1..5 and a zero-quantity cart line.
	reviews := `[
		{"productId":"1","userName":"asha","rating":9,"comment":"Tampered","date":"1/2/2026"},
		{"productId":"1","userName":"ravi","rating":4,"comment":"Genuine","date":"1/3/2026"}
	]`
	cart := `[{"id":"1","quantity":0},{"id":"2","quantity":1}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.KeyReviews+".json"), []byte(reviews), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.KeyCart+".json"), []byte(cart), 0o644))

	store, err := storage.Open(dir)
	require.NoError(t, err)
	repo := New(store, 0)

	// The tampered rating must not reach the review summary.
	loaded, err := repo.ReviewsFor("1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "Genuine", loaded[0].Comment)

	avg, ok, err := repo.AverageRating("1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4.0, avg)

	// A quantity-zero line is never served to the controller.
	lines, err := repo.Cart()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "2", lines[0].ID)
}

func TestShapeInvalidCurrentUserResets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.KeyCurrentUser+".json"),
		[]byte(`{"email":"not-an-email","password":""}`), 0o644))

	store, err := storage.Open(dir)
	require.NoError(t, err)
	repo := New(store, 0)

	// The bad snapshot reads as logged out and the key is cleared.
	user, err := repo.CurrentUser()
	require.NoError(t, err)
	require.Nil(t, user)
	require.False(t, store.Has(storage.KeyCurrentUser))
}

func TestWishlistIdsPassThroughUnvalidated(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.KeyWishlist+".json"),
		[]byte(`["1","3"]`), 0o644))

	store, err := storage.Open(dir)
	require.NoError(t, err)
	repo := New(store, 0)

	ids, err := repo.Wishlist()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, ids)
}

func TestCorruptCollectionRecovers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.KeyReviews+".json"), []byte("broken"), 0o644))

	store, err := storage.Open(dir)
	require.NoError(t, err)
	repo := New(store, 0)

	// The first read resets the key and yields an empty collection
	// instead of wedging every review view.
	reviews, err := repo.Reviews()
	require.NoError(t, err)
	require.Empty(t, reviews)

	// The store is usable again after the reset.
	_, err = repo.PostReview("1", "asha", 5, "Lovely work")
	require.NoError(t, err)
}
