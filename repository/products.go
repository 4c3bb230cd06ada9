package repository

import (
	"fmt"

	"github.com/google/uuid"

	"crafts-server/models"
	"crafts-server/storage"
)

// Products lists the catalog in insertion order.
func (r *Repository) Products() ([]models.Product, error) {
	return loadList[models.Product](r.store, storage.KeyProducts)
}

// FindProduct returns the product with the given id, or ErrNotFound.
func (r *Repository) FindProduct(id string) (*models.Product, error) {
	products, err := r.Products()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

// AddProduct assigns a fresh id, validates and appends. The original
// used timestamp ids, which collide within a clock tick; uuids do not.
func (r *Repository) AddProduct(p models.Product) (*models.Product, error) {
	p.ID = uuid.New().String()
	if err := models.Validate(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	products, err := r.Products()
	if err != nil {
		return nil, err
	}
	products = append(products, p)
	if err := r.store.Set(storage.KeyProducts, products); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct replaces the record matching p.ID in place.
func (r *Repository) UpdateProduct(p models.Product) error {
	if err := models.Validate(p); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	products, err := r.Products()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return r.store.Set(storage.KeyProducts, products)
		}
	}
	return ErrNotFound
}

// DeleteProduct filters the product out of the catalog.
func (r *Repository) DeleteProduct(id string) error {
	products, err := r.Products()
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrNotFound
	}
	return r.store.Set(storage.KeyProducts, kept)
}

// ToggleFeatured flips a product's featured flag and returns the new
// state.
func (r *Repository) ToggleFeatured(id string) (bool, error) {
	p, err := r.FindProduct(id)
	if err != nil {
		return false, err
	}
	p.Featured = !p.Featured
	if err := r.UpdateProduct(*p); err != nil {
		return false, err
	}
	return p.Featured, nil
}

// FeaturedProducts returns the products flagged for the home page.
func (r *Repository) FeaturedProducts() ([]models.Product, error) {
	products, err := r.Products()
	if err != nil {
		return nil, err
	}
	var featured []models.Product
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// RelatedProducts returns up to limit products sharing a category with
// p, excluding p itself.
func (r *Repository) RelatedProducts(p models.Product, limit int) ([]models.Product, error) {
	products, err := r.Products()
	if err != nil {
		return nil, err
	}
	var related []models.Product
	for _, other := range products {
		if other.Category == p.Category && other.ID != p.ID {
			related = append(related, other)
			if len(related) == limit {
				break
			}
		}
	}
	return related, nil
}
