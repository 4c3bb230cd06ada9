package repository

import (
	"crafts-server/models"
	"crafts-server/storage"
)

// Cart returns the persisted cart lines for this browser session.
func (r *Repository) Cart() ([]models.CartLine, error) {
	return loadList[models.CartLine](r.store, storage.KeyCart)
}

// SaveCart persists the whole cart. Lines with quantity below one are
// dropped here as a last line of defense; the controller never hands
// them in.
func (r *Repository) SaveCart(lines []models.CartLine) error {
	kept := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity >= 1 {
			kept = append(kept, line)
		}
	}
	return r.store.Set(storage.KeyCart, kept)
}
