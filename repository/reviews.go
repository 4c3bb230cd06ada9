package repository

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"crafts-server/models"
	"crafts-server/storage"
)

// Reviews lists every review across all products, insertion order.
func (r *Repository) Reviews() ([]models.Review, error) {
	return loadList[models.Review](r.store, storage.KeyReviews)
}

// ReviewsFor returns the reviews attached to one product.
func (r *Repository) ReviewsFor(productID string) ([]models.Review, error) {
	all, err := r.Reviews()
	if err != nil {
		return nil, err
	}
	var matched []models.Review
	for _, rev := range all {
		if rev.ProductID == productID {
			matched = append(matched, rev)
		}
	}
	return matched, nil
}

// PostReview appends a review stamped with the current date and returns
// the product's updated review list. Rating and comment validity are
// the caller's concern; the repository only enforces record shape.
func (r *Repository) PostReview(productID, userName string, rating int, comment string) ([]models.Review, error) {
	review := models.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		Date:      time.Now().Format("1/2/2006"),
	}
	if err := models.Validate(review); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	all, err := r.Reviews()
	if err != nil {
		return nil, err
	}
	all = append(all, review)
	if err := r.store.Set(storage.KeyReviews, all); err != nil {
		return nil, err
	}
	return r.ReviewsFor(productID)
}

// DeleteReview removes the reviews matching both productID and comment
// exactly. The composite key is historical: reviews predating generated
// ids have nothing else to match on.
func (r *Repository) DeleteReview(productID, comment string) error {
	all, err := r.Reviews()
	if err != nil {
		return err
	}

	kept := all[:0]
	for _, rev := range all {
		if !(rev.ProductID == productID && rev.Comment == comment) {
			kept = append(kept, rev)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}
	return r.store.Set(storage.KeyReviews, kept)
}

// AverageRating returns the arithmetic mean of a product's ratings,
// rounded to one decimal place. ok is false when the product has no
// reviews; the zero value must not leak into displays as a rating.
func (r *Repository) AverageRating(productID string) (avg float64, ok bool, err error) {
	reviews, err := r.ReviewsFor(productID)
	if err != nil {
		return 0, false, err
	}
	if len(reviews) == 0 {
		return 0, false, nil
	}

	ratings := make([]float64, len(reviews))
	for i, rev := range reviews {
		ratings[i] = float64(rev.Rating)
	}
	mean, err := stats.Mean(ratings)
	if err != nil {
		return 0, false, err
	}
	return math.Round(mean*10) / 10, true, nil
}
