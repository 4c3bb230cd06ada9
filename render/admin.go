package render

import "crafts-server/models"

// Dashboard renders the back-office stat cards.
func (e *Engine) Dashboard(s Stats) (string, error) {
	return e.execute("dashboard", s)
}

// ProductTable renders the back-office catalog table.
func (e *Engine) ProductTable(products []models.Product) (string, error) {
	return e.execute("productTable", products)
}

// BlogTable renders the back-office article table.
func (e *Engine) BlogTable(posts []models.BlogPost) (string, error) {
	return e.execute("blogTable", posts)
}

// ReviewTable renders every review with its composite delete handle.
func (e *Engine) ReviewTable(reviews []models.Review) (string, error) {
	return e.execute("reviewTable", reviews)
}

// UserTable renders the registered-user listing.
func (e *Engine) UserTable(users []models.User) (string, error) {
	return e.execute("userTable", users)
}
