package repository

import (
	"fmt"

	"github.com/google/uuid"

	"crafts-server/models"
	"crafts-server/storage"
)

// BlogPosts lists the articles in insertion order.
func (r *Repository) BlogPosts() ([]models.BlogPost, error) {
	return loadList[models.BlogPost](r.store, storage.KeyBlogPosts)
}

// FindBlogPost returns the post with the given id, or ErrNotFound.
func (r *Repository) FindBlogPost(id string) (*models.BlogPost, error) {
	posts, err := r.BlogPosts()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, ErrNotFound
}

// AddBlogPost assigns a fresh id, validates and appends.
func (r *Repository) AddBlogPost(p models.BlogPost) (*models.BlogPost, error) {
	p.ID = uuid.New().String()
	if err := models.Validate(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	posts, err := r.BlogPosts()
	if err != nil {
		return nil, err
	}
	posts = append(posts, p)
	if err := r.store.Set(storage.KeyBlogPosts, posts); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateBlogPost replaces the record matching p.ID in place.
func (r *Repository) UpdateBlogPost(p models.BlogPost) error {
	if err := models.Validate(p); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	posts, err := r.BlogPosts()
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == p.ID {
			posts[i] = p
			return r.store.Set(storage.KeyBlogPosts, posts)
		}
	}
	return ErrNotFound
}

// DeleteBlogPost filters the post out of the collection.
func (r *Repository) DeleteBlogPost(id string) error {
	posts, err := r.BlogPosts()
	if err != nil {
		return err
	}

	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return ErrNotFound
	}
	return r.store.Set(storage.KeyBlogPosts, kept)
}

// AllTags returns every distinct blog tag, first-seen order preserved.
func (r *Repository) AllTags() ([]string, error) {
	posts, err := r.BlogPosts()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	for _, p := range posts {
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}
