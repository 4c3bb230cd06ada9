package render

import "crafts-server/models"

// Card pairs a product with its wishlist state for grid rendering.
type Card struct {
	Product    models.Product
	Wishlisted bool
}

// Cards joins products with the session wishlist.
func Cards(products []models.Product, wishlist []string) []Card {
	saved := make(map[string]bool, len(wishlist))
	for _, id := range wishlist {
		saved[id] = true
	}
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = Card{Product: p, Wishlisted: saved[p.ID]}
	}
	return cards
}

// Home renders the featured-products section.
func (e *Engine) Home(featured []models.Product, wishlist []string) (string, error) {
	return e.execute("home", struct{ Cards []Card }{Cards(featured, wishlist)})
}

// ShopPage carries the filtered grid plus the control state that
// produced it, echoed as data attributes.
type ShopPage struct {
	Cards    []Card
	Category string
	Term     string
	Sort     string
}

// Shop renders the filtered, sorted product grid.
func (e *Engine) Shop(page ShopPage) (string, error) {
	return e.execute("shop", page)
}

// ReviewBlock is the review list, summary header and form slot under a
// product detail view.
type ReviewBlock struct {
	ProductID  string
	Reviews    []models.Review
	Average    float64
	HasReviews bool
	Count      int
	LoggedIn   bool
}

// DetailPage is the full product detail snapshot.
type DetailPage struct {
	Product     models.Product
	Wishlisted  bool
	Related     []Card
	ReviewBlock ReviewBlock
}

// ProductDetail renders the detail layout, related grid and reviews.
func (e *Engine) ProductDetail(page DetailPage) (string, error) {
	return e.execute("productDetail", page)
}

// CartModal joins the cart lines with the catalog and renders them with
// a running total. Lines whose product is gone are skipped.
func (e *Engine) CartModal(lines []models.CartLine, products []models.Product) (string, error) {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var rows []CartRow
	var total float64
	for _, line := range lines {
		p, ok := byID[line.ID]
		if !ok {
			continue
		}
		lineTotal := p.Price * float64(line.Quantity)
		total += lineTotal
		rows = append(rows, CartRow{Product: p, Quantity: line.Quantity, LineTotal: lineTotal})
	}

	return e.execute("cartModal", struct {
		Rows  []CartRow
		Total float64
	}{rows, total})
}

// AuthForm renders the login or register form; any mode other than
// "register" falls back to login.
func (e *Engine) AuthForm(mode string) (string, error) {
	return e.execute("authForm", struct{ Mode string }{mode})
}

// BlogPage carries the filtered article grid and its tag cloud.
type BlogPage struct {
	Posts     []models.BlogPost
	Tags      []string
	ActiveTag string
}

// BlogGrid renders the article cards with the tag cloud.
func (e *Engine) BlogGrid(page BlogPage) (string, error) {
	if page.ActiveTag == "" {
		page.ActiveTag = "all"
	}
	return e.execute("blogGrid", page)
}

// Article renders a single post; Content is trusted rich HTML from the
// back-office editor.
func (e *Engine) Article(post models.BlogPost) (string, error) {
	return e.execute("article", post)
}

// Profile renders the greeting and the wishlist grid.
func (e *Engine) Profile(name string, wishlistItems []models.Product) (string, error) {
	return e.execute("profile", struct {
		Name  string
		Cards []Card
	}{name, Cards(wishlistItems, idsOf(wishlistItems))})
}

// NotFound renders the info message shown when a detail target is gone.
func (e *Engine) NotFound(message string) (string, error) {
	return e.execute("notFound", message)
}

func idsOf(products []models.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
