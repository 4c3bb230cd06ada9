package models

// CartLine ties a product id to a quantity. A stored line always has
// Quantity >= 1; dropping to zero removes the line instead.
type CartLine struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}
