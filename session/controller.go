// Package session holds the view-state controller: the in-memory cart,
// current user and wishlist caches, kept write-through with the
// repository. It replaces the ambient globals of the original site with
// one explicit object constructed at startup and injected everywhere.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"crafts-server/models"
	"crafts-server/repository"
)

// ErrLoginRequired gates wishlist, review and checkout actions. Callers
// short-circuit into the authentication flow instead of failing.
var ErrLoginRequired = errors.New("please log in first")

type Controller struct {
	mu       sync.Mutex
	repo     *repository.Repository
	cart     []models.CartLine
	current  *models.User
	wishlist []string
}

// New builds the controller from persisted state. The wishlist is only
// loaded when a user snapshot is present, as on the original site.
func New(repo *repository.Repository) (*Controller, error) {
	cart, err := repo.Cart()
	if err != nil {
		return nil, err
	}
	current, err := repo.CurrentUser()
	if err != nil {
		return nil, err
	}

	c := &Controller{repo: repo, cart: cart, current: current}
	if current != nil {
		if c.wishlist, err = repo.Wishlist(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// --- cart ---

// AddItem increments an existing line or inserts one with quantity 1,
// persists, and returns the new total item count for the header badge.
func (c *Controller) AddItem(productID string) (int, error) {
	if _, err := c.repo.FindProduct(productID); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i := range c.cart {
		if c.cart[i].ID == productID {
			c.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.cart = append(c.cart, models.CartLine{ID: productID, Quantity: 1})
	}

	if err := c.repo.SaveCart(c.cart); err != nil {
		return 0, err
	}
	return c.itemCountLocked(), nil
}

// ChangeQuantity adjusts a line by delta and removes it when the
// quantity drops to or below zero. Unknown ids are a no-op.
func (c *Controller) ChangeQuantity(productID string, delta int) ([]models.CartLine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.cart {
		if c.cart[i].ID != productID {
			continue
		}
		c.cart[i].Quantity += delta
		if c.cart[i].Quantity <= 0 {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
		}
		break
	}

	if err := c.repo.SaveCart(c.cart); err != nil {
		return nil, err
	}
	return c.cartCopyLocked(), nil
}

// Cart returns a copy of the current lines.
func (c *Controller) Cart() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cartCopyLocked()
}

// ItemCount is the sum of line quantities, shown next to the cart icon.
func (c *Controller) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemCountLocked()
}

// CartTotal prices the cart against the catalog. Lines whose product no
// longer exists contribute nothing, matching the original render.
func (c *Controller) CartTotal() (float64, error) {
	products, err := c.repo.Products()
	if err != nil {
		return 0, err
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.cart {
		if p, ok := byID[line.ID]; ok {
			total += p.Price * float64(line.Quantity)
		}
	}
	return total, nil
}

func (c *Controller) itemCountLocked() int {
	count := 0
	for _, line := range c.cart {
		count += line.Quantity
	}
	return count
}

func (c *Controller) cartCopyLocked() []models.CartLine {
	return append([]models.CartLine(nil), c.cart...)
}

// --- auth ---

// Login delegates to the repository and, on success, caches the user
// and loads their wishlist.
func (c *Controller) Login(email, password string) (*models.User, error) {
	user, err := c.repo.Login(email, password)
	if err != nil {
		return nil, err
	}
	wishlist, err := c.repo.Wishlist()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.current = user
	c.wishlist = wishlist
	c.mu.Unlock()
	return user, nil
}

// Register creates the account; it does not log the user in.
func (c *Controller) Register(email, password string) error {
	return c.repo.Register(email, password)
}

// Logout clears the snapshot and drops the session caches.
func (c *Controller) Logout() error {
	if err := c.repo.Logout(); err != nil {
		return err
	}
	c.mu.Lock()
	c.current = nil
	c.wishlist = nil
	c.mu.Unlock()
	return nil
}

// CurrentUser returns the session user, or nil when logged out.
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	u := *c.current
	return &u
}

// DisplayName derives the name shown in greetings and on reviews: the
// local part of the user's email.
func DisplayName(u *models.User) string {
	if u == nil {
		return ""
	}
	name, _, _ := strings.Cut(u.Email, "@")
	return name
}

// --- wishlist ---

// Wishlist returns a copy of the saved ids; empty when logged out.
func (c *Controller) Wishlist() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.wishlist...)
}

// ToggleWishlist flips membership of productID. Requires a login.
func (c *Controller) ToggleWishlist(productID string) ([]string, error) {
	if c.CurrentUser() == nil {
		return nil, ErrLoginRequired
	}

	ids, err := c.repo.ToggleWishlist(productID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.wishlist = ids
	c.mu.Unlock()
	return append([]string(nil), ids...), nil
}

// --- reviews / checkout ---

// PostReview validates locally (a zero rating or blank comment never
// reaches the repository) and posts as the session user.
func (c *Controller) PostReview(productID string, rating int, comment string) ([]models.Review, error) {
	user := c.CurrentUser()
	if user == nil {
		return nil, ErrLoginRequired
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: please select a star rating", repository.ErrValidation)
	}
	if strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("%w: please enter your review", repository.ErrValidation)
	}
	return c.repo.PostReview(productID, DisplayName(user), rating, comment)
}

// Checkout only verifies the login gate; order placement is outside
// this demo's scope.
func (c *Controller) Checkout() error {
	if c.CurrentUser() == nil {
		return ErrLoginRequired
	}
	return nil
}
