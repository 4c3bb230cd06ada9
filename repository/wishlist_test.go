package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleWishlistFlipsMembership(t *testing.T) {
	repo := newTestRepo(t)

	ids, err := repo.ToggleWishlist("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)

	ids, err = repo.ToggleWishlist("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids)

	// Toggling twice restores the previous set.
	ids, err = repo.ToggleWishlist("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids)

	saved, err := repo.Wishlist()
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, saved)
}
