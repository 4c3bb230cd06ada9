package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostReviewReturnsProductReviews(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.PostReview("2", "ravi", 3, "Nice vase")
	require.NoError(t, err)
	reviews, err := repo.PostReview("1", "asha", 5, "Beautiful weave")
	require.NoError(t, err)

	// Only the reviewed product's list comes back.
	require.Len(t, reviews, 1)
	assert.Equal(t, "1", reviews[0].ProductID)
	assert.Equal(t, "asha", reviews[0].UserName)
	assert.NotEmpty(t, reviews[0].ID)
	assert.NotEmpty(t, reviews[0].Date)

	all, err := repo.Reviews()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.PostReview("1", "asha", 4, "Good")
	require.NoError(t, err)
	_, err = repo.PostReview("1", "ravi", 5, "Great")
	require.NoError(t, err)

	avg, ok, err := repo.AverageRating("1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4.5, avg)
}

func TestAverageRatingWithoutReviews(t *testing.T) {
	repo := newTestRepo(t)

	avg, ok, err := repo.AverageRating("1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, avg)
}

func TestDeleteReviewMatchesProductAndComment(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.PostReview("1", "asha", 5, "Beautiful weave")
	require.NoError(t, err)
	_, err = repo.PostReview("1", "ravi", 4, "Soft fabric")
	require.NoError(t, err)

	// The same comment under another product must not be touched.
	_, err = repo.PostReview("2", "meera", 4, "Beautiful weave")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteReview("1", "Beautiful weave"))

	reviews, err := repo.ReviewsFor("1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Soft fabric", reviews[0].Comment)

	other, err := repo.ReviewsFor("2")
	require.NoError(t, err)
	assert.Len(t, other, 1)

	// No match on the composite pair reports the missing record.
	assert.ErrorIs(t, repo.DeleteReview("1", "Beautiful weave"), ErrNotFound)
}

func TestPostReviewValidatesShape(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.PostReview("1", "", 5, "No author")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = repo.PostReview("1", "asha", 6, "Too many stars")
	assert.ErrorIs(t, err, ErrValidation)
}
