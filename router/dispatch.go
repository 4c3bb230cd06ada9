package router

import (
	"errors"
	"strconv"
	"strings"

	"crafts-server/models"
	"crafts-server/repository"
	"crafts-server/session"
)

// Dispatch routes an action event to the matching controller or
// repository operation, then re-renders the current view. Destructive
// actions go through the confirmation hook first; auth-gated actions
// short-circuit into the login modal.
func (r *Router) Dispatch(e Event) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.surface == Admin {
		return r.dispatchAdmin(e)
	}
	return r.dispatchStorefront(e)
}

// confirmed answers the destructive-action prompt. A configured hook
// wins; otherwise the event must carry an explicit confirm flag (the
// host's modal already asked the user). No flag means no deletion.
func (r *Router) confirmed(e Event, prompt string) bool {
	if r.confirm != nil {
		return r.confirm(prompt)
	}
	return e.Data["confirm"] == "1"
}

func toast(msg, kind string) Toast { return Toast{Message: msg, Kind: kind} }

// --- storefront actions ---

func (r *Router) dispatchStorefront(e Event) (*Result, error) {
	switch e.Action {
	case "add-to-cart":
		product, err := r.repo.FindProduct(e.Data["id"])
		if errors.Is(err, repository.ErrNotFound) {
			return r.renderLocked([]Toast{toast("Product not found.", "error")})
		}
		if err != nil {
			return nil, err
		}
		if _, err := r.ctrl.AddItem(product.ID); err != nil {
			return nil, err
		}
		return r.renderLocked([]Toast{toast(product.Name+" added to cart!", "success")})

	case "change-quantity":
		delta, err := strconv.Atoi(e.Data["delta"])
		if err != nil {
			return r.renderLocked([]Toast{toast("Invalid quantity change.", "error")})
		}
		if _, err := r.ctrl.ChangeQuantity(e.Data["id"], delta); err != nil {
			return nil, err
		}
		return r.withCartModal(nil)

	case "open-cart":
		return r.withCartModal(nil)

	case "toggle-wishlist":
		ids, err := r.ctrl.ToggleWishlist(e.Data["id"])
		if errors.Is(err, session.ErrLoginRequired) {
			return r.withAuthModal("login", toast("Please log in to use the wishlist.", "error"))
		}
		if err != nil {
			return nil, err
		}
		msg := "Removed from wishlist."
		for _, id := range ids {
			if id == e.Data["id"] {
				msg = "Added to wishlist!"
				break
			}
		}
		return r.renderLocked([]Toast{toast(msg, "success")})

	case "show-login":
		return r.withAuthModal("login")

	case "show-register":
		return r.withAuthModal("register")

	case "login":
		if _, err := r.ctrl.Login(e.Data["email"], e.Data["password"]); err != nil {
			if errors.Is(err, repository.ErrInvalidCredentials) {
				return r.withAuthModal("login", toast("Invalid email or password.", "error"))
			}
			return nil, err
		}
		return r.renderLocked([]Toast{toast("Welcome back!", "success")})

	case "register":
		err := r.ctrl.Register(e.Data["email"], e.Data["password"])
		if errors.Is(err, repository.ErrDuplicateUser) {
			return r.withAuthModal("register", toast("User with this email already exists.", "error"))
		}
		if errors.Is(err, repository.ErrValidation) {
			return r.withAuthModal("register", toast("Please enter a valid email and password.", "error"))
		}
		if err != nil {
			return nil, err
		}
		// Registration succeeded; hand the user the login form.
		return r.withAuthModal("login", toast("Registration successful!", "success"))

	case "logout":
		if err := r.ctrl.Logout(); err != nil {
			return nil, err
		}
		r.view = ViewHome
		return r.renderLocked([]Toast{toast("You have been logged out.", "info")})

	case "post-review":
		rating, _ := strconv.Atoi(e.Data["rating"])
		_, err := r.ctrl.PostReview(e.Data["product-id"], rating, e.Data["comment"])
		if errors.Is(err, session.ErrLoginRequired) {
			return r.withAuthModal("login", toast("Please log in to write a review.", "error"))
		}
		if errors.Is(err, repository.ErrValidation) {
			return r.renderLocked([]Toast{toast(validationMessage(err), "error")})
		}
		if err != nil {
			return nil, err
		}
		return r.renderLocked([]Toast{toast("Thank you for your review!", "success")})

	case "checkout":
		if err := r.ctrl.Checkout(); errors.Is(err, session.ErrLoginRequired) {
			return r.withAuthModal("login", toast("Please log in to proceed to checkout.", "error"))
		}
		return r.renderLocked([]Toast{toast("Checkout functionality is not implemented in this demo.", "info")})

	case "filter-shop":
		r.shop = shopQuery{
			category: e.Data["category"],
			term:     e.Data["term"],
			sort:     e.Data["sort"],
		}
		r.view = ViewShop
		return r.renderLocked(nil)

	case "filter-blog":
		r.blog = blogQuery{tag: e.Data["tag"], term: e.Data["term"]}
		r.view = ViewBlog
		return r.renderLocked(nil)

	default:
		return r.renderLocked([]Toast{toast("Unknown action: "+e.Action, "error")})
	}
}

// withCartModal re-renders the view and attaches the cart modal.
func (r *Router) withCartModal(toasts []Toast) (*Result, error) {
	result, err := r.renderLocked(toasts)
	if err != nil {
		return nil, err
	}
	products, err := r.repo.Products()
	if err != nil {
		return nil, err
	}
	modal, err := r.engine.CartModal(r.ctrl.Cart(), products)
	if err != nil {
		return nil, err
	}
	result.Modal = modal
	return result, nil
}

// withAuthModal re-renders the view and attaches a login/register form.
func (r *Router) withAuthModal(mode string, toasts ...Toast) (*Result, error) {
	result, err := r.renderLocked(toasts)
	if err != nil {
		return nil, err
	}
	modal, err := r.engine.AuthForm(mode)
	if err != nil {
		return nil, err
	}
	result.Modal = modal
	return result, nil
}

// --- admin actions ---

func (r *Router) dispatchAdmin(e Event) (*Result, error) {
	switch e.Action {
	case "add-product":
		product, err := productFromData(e.Data, nil)
		if err != nil {
			return r.renderLocked([]Toast{toast(err.Error(), "error")})
		}
		_, addErr := r.repo.AddProduct(*product)
		return r.mutationResult(addErr, "Product added.")

	case "edit-product":
		existing, err := r.repo.FindProduct(e.Data["id"])
		if err != nil {
			return r.mutationResult(err, "")
		}
		product, err := productFromData(e.Data, existing)
		if err != nil {
			return r.renderLocked([]Toast{toast(err.Error(), "error")})
		}
		return r.mutationResult(r.repo.UpdateProduct(*product), "Product updated.")

	case "delete-product":
		if !r.confirmed(e, "Are you sure you want to delete this item?") {
			return r.renderLocked([]Toast{toast("Deletion cancelled.", "info")})
		}
		return r.mutationResult(r.repo.DeleteProduct(e.Data["id"]), "Product deleted.")

	case "toggle-featured":
		_, err := r.repo.ToggleFeatured(e.Data["id"])
		return r.mutationResult(err, "Featured flag updated.")

	case "add-post":
		post := postFromData(e.Data, nil)
		_, addErr := r.repo.AddBlogPost(*post)
		return r.mutationResult(addErr, "Post added.")

	case "edit-post":
		existing, err := r.repo.FindBlogPost(e.Data["id"])
		if err != nil {
			return r.mutationResult(err, "")
		}
		post := postFromData(e.Data, existing)
		return r.mutationResult(r.repo.UpdateBlogPost(*post), "Post updated.")

	case "delete-post":
		if !r.confirmed(e, "Are you sure you want to delete this item?") {
			return r.renderLocked([]Toast{toast("Deletion cancelled.", "info")})
		}
		return r.mutationResult(r.repo.DeleteBlogPost(e.Data["id"]), "Post deleted.")

	case "delete-user":
		if !r.confirmed(e, "Are you sure you want to delete this item?") {
			return r.renderLocked([]Toast{toast("Deletion cancelled.", "info")})
		}
		return r.mutationResult(r.repo.DeleteUser(e.Data["email"]), "User deleted.")

	case "delete-review":
		if !r.confirmed(e, "Are you sure you want to delete this item?") {
			return r.renderLocked([]Toast{toast("Deletion cancelled.", "info")})
		}
		err := r.repo.DeleteReview(e.Data["product-id"], e.Data["comment"])
		return r.mutationResult(err, "Review deleted.")

	default:
		return r.renderLocked([]Toast{toast("Unknown action: "+e.Action, "error")})
	}
}

// mutationResult folds a repository error into the re-rendered view:
// NotFound and validation failures become error toasts, anything else
// propagates.
func (r *Router) mutationResult(err error, successMsg string) (*Result, error) {
	switch {
	case err == nil:
		return r.renderLocked([]Toast{toast(successMsg, "success")})
	case errors.Is(err, repository.ErrNotFound):
		return r.renderLocked([]Toast{toast("Record not found.", "error")})
	case errors.Is(err, repository.ErrValidation):
		return r.renderLocked([]Toast{toast(validationMessage(err), "error")})
	default:
		return nil, err
	}
}

func validationMessage(err error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, repository.ErrValidation.Error()+": "); ok {
		return cut
	}
	return msg
}

// productFromData builds a product from submitted form fields. When
// editing, fields the simplified form does not carry (featured state,
// details, care) are preserved from the existing record, as the
// original admin form did.
func productFromData(data map[string]string, existing *models.Product) (*models.Product, error) {
	price, err := strconv.ParseFloat(data["price"], 64)
	if err != nil {
		return nil, errors.New("price must be a number")
	}

	product := models.Product{
		Name:        data["name"],
		Price:       price,
		Category:    data["category"],
		Image:       data["image"],
		Description: data["description"],
		Details: map[string]string{
			"material": "N/A", "dimensions": "N/A", "origin": "N/A", "craft": "N/A",
		},
		Care: "N/A",
	}
	if existing != nil {
		product.ID = existing.ID
		product.Featured = existing.Featured
		product.Details = existing.Details
		product.Care = existing.Care
	}
	return &product, nil
}

// postFromData builds a blog post from submitted form fields; tags come
// comma-separated.
func postFromData(data map[string]string, existing *models.BlogPost) *models.BlogPost {
	var tags []string
	for _, tag := range strings.Split(data["tags"], ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	post := models.BlogPost{
		Title:   data["title"],
		Author:  data["author"],
		Date:    data["date"],
		Tags:    tags,
		Image:   data["image"],
		Content: data["content"],
	}
	if existing != nil {
		post.ID = existing.ID
	}
	return &post
}
