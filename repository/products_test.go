package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crafts-server/models"
)

func TestAddProductAssignsUniqueIDs(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.AddProduct(models.Product{Name: "Jute Rug", Price: 2499, Category: models.CategoryHomeDecor})
	require.NoError(t, err)
	second, err := repo.AddProduct(models.Product{Name: "Jute Rug", Price: 2499, Category: models.CategoryHomeDecor})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	products, err := repo.Products()
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestAddProductRejectsUnknownCategory(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddProduct(models.Product{Name: "Mystery Box", Price: 100, Category: "gadgets"})
	assert.ErrorIs(t, err, ErrValidation)

	products, err := repo.Products()
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestUpdateProductMissingID(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.UpdateProduct(models.Product{ID: "no-such", Name: "Ghost", Price: 1, Category: models.CategoryArt})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.DeleteProduct("1"))
	_, err := repo.FindProduct("1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again reports the missing record instead of silently
	// succeeding.
	assert.ErrorIs(t, repo.DeleteProduct("1"), ErrNotFound)
}

func TestToggleFeatured(t *testing.T) {
	repo := newTestRepo(t)

	// The seeded basket set starts unfeatured.
	on, err := repo.ToggleFeatured("3")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := repo.ToggleFeatured("3")
	require.NoError(t, err)
	assert.False(t, off)

	featured, err := repo.FeaturedProducts()
	require.NoError(t, err)
	assert.Len(t, featured, 3)
}

func TestRelatedProductsShareCategoryAndExcludeSelf(t *testing.T) {
	repo := newTestRepo(t)

	scarf, err := repo.FindProduct("1")
	require.NoError(t, err)

	// Seeded categories are all distinct, so nothing relates yet.
	related, err := repo.RelatedProducts(*scarf, 3)
	require.NoError(t, err)
	assert.Empty(t, related)

	stole, err := repo.AddProduct(models.Product{Name: "Silk Stole", Price: 1499, Category: models.CategoryApparel})
	require.NoError(t, err)

	related, err = repo.RelatedProducts(*scarf, 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, stole.ID, related[0].ID)

	// The product never relates to itself.
	related, err = repo.RelatedProducts(*stole, 3)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, scarf.ID, related[0].ID)
}
