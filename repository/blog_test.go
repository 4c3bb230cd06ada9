package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crafts-server/models"
)

func TestAddBlogPostAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	post, err := repo.AddBlogPost(models.BlogPost{Title: "Dyeing with Indigo", Author: "Asha"})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)

	found, err := repo.FindBlogPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dyeing with Indigo", found.Title)
}

func TestAddBlogPostRequiresTitle(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.AddBlogPost(models.BlogPost{Author: "Asha"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateAndDeleteBlogPost(t *testing.T) {
	repo := newTestRepo(t)

	post, err := repo.FindBlogPost("1")
	require.NoError(t, err)

	post.Title = "Revised Title"
	require.NoError(t, repo.UpdateBlogPost(*post))

	found, err := repo.FindBlogPost("1")
	require.NoError(t, err)
	assert.Equal(t, "Revised Title", found.Title)

	require.NoError(t, repo.DeleteBlogPost("1"))
	assert.ErrorIs(t, repo.DeleteBlogPost("1"), ErrNotFound)

	assert.ErrorIs(t, repo.UpdateBlogPost(*post), ErrNotFound)
}

func TestAllTagsKeepsFirstSeenOrder(t *testing.T) {
	repo := newEmptyRepo(t)

	_, err := repo.AddBlogPost(models.BlogPost{Title: "One", Tags: []string{"crafts", "textiles"}})
	require.NoError(t, err)
	_, err = repo.AddBlogPost(models.BlogPost{Title: "Two", Tags: []string{"pottery", "crafts"}})
	require.NoError(t, err)

	tags, err := repo.AllTags()
	require.NoError(t, err)
	assert.Equal(t, []string{"crafts", "textiles", "pottery"}, tags)
}
