// Package router is the event router: a state machine over the current
// view that maps UI events (navigation, action clicks, form submits) to
// controller/repository operations and re-renders the active view from
// a fresh snapshot.
package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"crafts-server/models"
	"crafts-server/render"
	"crafts-server/repository"
	"crafts-server/session"
)

// Surface selects which view set a router serves.
type Surface int

const (
	Storefront Surface = iota
	Admin
)

type View string

// Admin views.
const (
	ViewDashboard View = "dashboard"
	ViewProducts  View = "products"
	ViewBlog      View = "blog"
	ViewReviews   View = "reviews"
	ViewUsers     View = "users"
)

// Storefront views. ViewBlog is shared: the storefront renders it as a
// card grid, the back-office as a table.
const (
	ViewHome    View = "home"
	ViewShop    View = "shop"
	ViewDetail  View = "detail"
	ViewArticle View = "article"
	ViewProfile View = "profile"
)

var adminViews = map[View]bool{
	ViewDashboard: true, ViewProducts: true, ViewBlog: true, ViewReviews: true, ViewUsers: true,
}

var storefrontViews = map[View]bool{
	ViewHome: true, ViewShop: true, ViewDetail: true, ViewBlog: true, ViewArticle: true, ViewProfile: true,
}

// Toast is a transient user-facing notification.
type Toast struct {
	Message string `json:"message"`
	Kind    string `json:"kind"` // success, error or info
}

// Event is a UI action plus the data attributes read from the element
// that triggered it.
type Event struct {
	Action string
	Data   map[string]string
}

// Result is what the host applies back to the page: the fragment that
// replaces the view region, an optional modal fragment, toasts and the
// header cart count.
type Result struct {
	View      View    `json:"view"`
	Markup    string  `json:"markup"`
	Modal     string  `json:"modal,omitempty"`
	Toasts    []Toast `json:"toasts,omitempty"`
	CartCount int     `json:"cartCount"`
}

// ConfirmFunc answers a destructive-action prompt. A nil or false
// answer skips the mutation; there is no silent destructive path.
type ConfirmFunc func(prompt string) bool

type shopQuery struct {
	category string
	term     string
	sort     string
}

type blogQuery struct {
	tag  string
	term string
}

type Router struct {
	mu      sync.Mutex
	surface Surface
	repo    *repository.Repository
	ctrl    *session.Controller
	engine  *render.Engine
	confirm ConfirmFunc

	view   View
	param  string
	shop   shopQuery
	blog   blogQuery
	cancel context.CancelFunc
}

// NewStorefront builds a router over the shopper-facing views, starting
// at home.
func NewStorefront(repo *repository.Repository, ctrl *session.Controller, engine *render.Engine, confirm ConfirmFunc) *Router {
	return &Router{surface: Storefront, repo: repo, ctrl: ctrl, engine: engine, confirm: confirm, view: ViewHome}
}

// NewAdmin builds a router over the back-office views, starting at the
// dashboard.
func NewAdmin(repo *repository.Repository, ctrl *session.Controller, engine *render.Engine, confirm ConfirmFunc) *Router {
	return &Router{surface: Admin, repo: repo, ctrl: ctrl, engine: engine, confirm: confirm, view: ViewDashboard}
}

// CurrentView reports the active view.
func (r *Router) CurrentView() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}

func (r *Router) allowed(view View) bool {
	if r.surface == Admin {
		return adminViews[view]
	}
	return storefrontViews[view]
}

// Navigate switches the current view, cancelling whatever fetch the
// previous view still had in flight, and renders the new view. Plain
// navigation starts shop and blog with clean filter controls, as the
// original pages did on load; only the filter actions carry state.
func (r *Router) Navigate(view View, param string) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.allowed(view) {
		return nil, fmt.Errorf("router: unknown view %q", view)
	}

	switch view {
	case ViewShop:
		r.shop = shopQuery{}
	case ViewBlog:
		r.blog = blogQuery{}
	}

	r.view = view
	r.param = param
	return r.renderLocked(nil)
}

// Render re-renders the current view without changing state.
func (r *Router) Render() (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderLocked(nil)
}

// viewContext replaces the previous view's fetch context. The old one
// is cancelled so a stale fetch can never apply its result.
func (r *Router) viewContext() context.Context {
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	return ctx
}

// renderLocked derives the current view's markup from a fresh snapshot.
// Callers hold r.mu. Extra toasts are folded into the result.
func (r *Router) renderLocked(toasts []Toast) (*Result, error) {
	ctx := r.viewContext()

	markup, err := r.viewMarkup(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{
		View:      r.view,
		Markup:    markup,
		Toasts:    toasts,
		CartCount: r.ctrl.ItemCount(),
	}, nil
}

func (r *Router) viewMarkup(ctx context.Context) (string, error) {
	switch r.view {
	case ViewDashboard:
		return r.dashboardMarkup()
	case ViewProducts:
		products, err := r.repo.Products()
		if err != nil {
			return "", err
		}
		return r.engine.ProductTable(products)
	case ViewBlog:
		if r.surface == Admin {
			posts, err := r.repo.BlogPosts()
			if err != nil {
				return "", err
			}
			return r.engine.BlogTable(posts)
		}
		return r.blogMarkup(ctx)
	case ViewReviews:
		reviews, err := r.repo.Reviews()
		if err != nil {
			return "", err
		}
		return r.engine.ReviewTable(reviews)
	case ViewUsers:
		users, err := r.repo.Users()
		if err != nil {
			return "", err
		}
		return r.engine.UserTable(users)
	case ViewHome:
		if _, err := r.repo.FetchProducts(ctx); err != nil {
			return "", err
		}
		featured, err := r.repo.FeaturedProducts()
		if err != nil {
			return "", err
		}
		return r.engine.Home(featured, r.ctrl.Wishlist())
	case ViewShop:
		return r.shopMarkup(ctx)
	case ViewDetail:
		return r.detailMarkup(ctx)
	case ViewArticle:
		post, err := r.repo.FetchBlogPost(ctx, r.param)
		if errors.Is(err, repository.ErrNotFound) {
			return r.engine.NotFound("Article not found.")
		}
		if err != nil {
			return "", err
		}
		return r.engine.Article(*post)
	case ViewProfile:
		return r.profileMarkup()
	default:
		return "", fmt.Errorf("router: unknown view %q", r.view)
	}
}

func (r *Router) dashboardMarkup() (string, error) {
	products, err := r.repo.Products()
	if err != nil {
		return "", err
	}
	posts, err := r.repo.BlogPosts()
	if err != nil {
		return "", err
	}
	reviews, err := r.repo.Reviews()
	if err != nil {
		return "", err
	}
	users, err := r.repo.Users()
	if err != nil {
		return "", err
	}
	return r.engine.Dashboard(render.Stats{
		Products:  len(products),
		BlogPosts: len(posts),
		Reviews:   len(reviews),
		Users:     len(users),
	})
}

func (r *Router) shopMarkup(ctx context.Context) (string, error) {
	products, err := r.repo.FetchProducts(ctx)
	if err != nil {
		return "", err
	}
	filtered := repository.FilterByCategory(products, r.shop.category)
	filtered = repository.SearchProducts(filtered, r.shop.term)
	filtered = repository.SortProducts(filtered, r.shop.sort)

	return r.engine.Shop(render.ShopPage{
		Cards:    render.Cards(filtered, r.ctrl.Wishlist()),
		Category: r.shop.category,
		Term:     r.shop.term,
		Sort:     r.shop.sort,
	})
}

func (r *Router) detailMarkup(ctx context.Context) (string, error) {
	product, err := r.repo.FetchProduct(ctx, r.param)
	if errors.Is(err, repository.ErrNotFound) {
		return r.engine.NotFound("Product not found. Please return to the shop.")
	}
	if err != nil {
		return "", err
	}

	related, err := r.repo.RelatedProducts(*product, 3)
	if err != nil {
		return "", err
	}
	reviews, err := r.repo.ReviewsFor(product.ID)
	if err != nil {
		return "", err
	}
	avg, hasReviews, err := r.repo.AverageRating(product.ID)
	if err != nil {
		return "", err
	}

	wishlist := r.ctrl.Wishlist()
	wishlisted := false
	for _, id := range wishlist {
		if id == product.ID {
			wishlisted = true
			break
		}
	}

	return r.engine.ProductDetail(render.DetailPage{
		Product:    *product,
		Wishlisted: wishlisted,
		Related:    render.Cards(related, wishlist),
		ReviewBlock: render.ReviewBlock{
			ProductID:  product.ID,
			Reviews:    reviews,
			Average:    avg,
			HasReviews: hasReviews,
			Count:      len(reviews),
			LoggedIn:   r.ctrl.CurrentUser() != nil,
		},
	})
}

func (r *Router) blogMarkup(ctx context.Context) (string, error) {
	posts, err := r.repo.FetchBlogPosts(ctx)
	if err != nil {
		return "", err
	}
	tags, err := r.repo.AllTags()
	if err != nil {
		return "", err
	}
	filtered := repository.FilterByTag(posts, r.blog.tag)
	filtered = repository.SearchPosts(filtered, r.blog.term)

	return r.engine.BlogGrid(render.BlogPage{Posts: filtered, Tags: tags, ActiveTag: r.blog.tag})
}

// profileMarkup falls back to the home view when nobody is logged in,
// as the original page redirected.
func (r *Router) profileMarkup() (string, error) {
	user := r.ctrl.CurrentUser()
	if user == nil {
		r.view = ViewHome
		featured, err := r.repo.FeaturedProducts()
		if err != nil {
			return "", err
		}
		return r.engine.Home(featured, nil)
	}

	products, err := r.repo.Products()
	if err != nil {
		return "", err
	}
	saved := make(map[string]bool)
	for _, id := range r.ctrl.Wishlist() {
		saved[id] = true
	}
	var kept []models.Product
	for _, p := range products {
		if saved[p.ID] {
			kept = append(kept, p)
		}
	}
	return r.engine.Profile(session.DisplayName(user), kept)
}
