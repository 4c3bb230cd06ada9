package repository

import "crafts-server/storage"

// Wishlist returns the saved product ids. Storage keeps a single slot
// shared by whichever user is logged in, matching the original layout;
// the controller only exposes it when a session user exists.
func (r *Repository) Wishlist() ([]string, error) {
	return loadList[string](r.store, storage.KeyWishlist)
}

// ToggleWishlist adds the id if absent, removes it if present, and
// returns the new set. Toggling twice restores the original set.
func (r *Repository) ToggleWishlist(productID string) ([]string, error) {
	ids, err := r.Wishlist()
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, productID)
	}

	if err := r.store.Set(storage.KeyWishlist, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
