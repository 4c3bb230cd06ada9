package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crafts-server/config"
	"crafts-server/render"
	"crafts-server/repository"
	"crafts-server/router"
	"crafts-server/session"
	"crafts-server/storage"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@test.local",
		AdminPassword: "admin123",
	}

	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Seed())

	repo := repository.New(store, 0)
	ctrl, err := session.New(repo)
	require.NoError(t, err)
	engine := render.New()

	front := router.NewStorefront(repo, ctrl, engine, nil)
	admin := router.NewAdmin(repo, ctrl, engine, nil)

	r := gin.New()
	New(cfg, front, admin).Register(r)
	return r
}

func postForm(t *testing.T, r *gin.Engine, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestStorefrontViewAndEvent(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/views/shop", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		View      string `json:"view"`
		Markup    string `json:"markup"`
		CartCount int    `json:"cartCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "shop", result.View)
	assert.Contains(t, result.Markup, "Handwoven Cotton Scarf")

	w = postForm(t, r, "/events", "", url.Values{"action": {"add-to-cart"}, "id": {"1"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.CartCount)
}

func TestEventRequiresAction(t *testing.T) {
	r := newTestServer(t)

	w := postForm(t, r, "/events", "", url.Values{"id": {"1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownViewIsBadRequest(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/views/dashboard", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/views/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/views/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginAndAccess(t *testing.T) {
	r := newTestServer(t)

	// Wrong credentials are rejected.
	body := `{"email":"admin@test.local","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body = `{"email":"admin@test.local","password":"admin123"}`
	req = httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req = httptest.NewRequest(http.MethodGet, "/admin/views/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Total Products")

	// Destructive admin events carry the confirm flag from the client.
	form := url.Values{"action": {"delete-product"}, "id": {"1"}, "confirm": {"1"}}
	w = postForm(t, r, "/admin/events", login.Token, form)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Product deleted.")
}

func TestGenerateJWTRoundtrip(t *testing.T) {
	token, err := generateJWT("admin@test.local", "test-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// The middleware accepts its own tokens.
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", AdminAuth("test-secret"), func(c *gin.Context) {
		email := c.GetString("admin_email")
		c.String(http.StatusOK, email)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@test.local", w.Body.String())
}
