package models

// Review is a product rating left by a logged-in user. The historical
// identity of a review is the (ProductID, Comment) pair; ID is a
// generated addition so newer records have a stable handle, but
// deletion still matches on the composite pair.
type Review struct {
	ID        string `json:"id,omitempty"`
	ProductID string `json:"productId" validate:"required"`
	UserName  string `json:"userName" validate:"required"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
	Date      string `json:"date"`
}
