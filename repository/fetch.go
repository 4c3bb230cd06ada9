package repository

import (
	"context"
	"time"

	"crafts-server/models"
)

// The Fetch* helpers mimic the original site's simulated network
// latency on catalog reads. Unlike the original's fire-and-forget
// timers, they honor context cancellation: a view that is torn down
// cancels its context and the in-flight fetch never applies a result.

func (r *Repository) wait(ctx context.Context) error {
	if r.fetchDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.fetchDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Repository) FetchProducts(ctx context.Context) ([]models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.Products()
}

func (r *Repository) FetchProduct(ctx context.Context, id string) (*models.Product, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.FindProduct(id)
}

func (r *Repository) FetchBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.BlogPosts()
}

func (r *Repository) FetchBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.FindBlogPost(id)
}
