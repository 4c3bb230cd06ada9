// Package handlers is the HTTP host for the storefront and back-office
// views. It only translates requests into router events and results
// into JSON; every domain rule lives below it.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crafts-server/config"
	"crafts-server/router"
)

type Handlers struct {
	cfg   *config.Config
	front *router.Router
	admin *router.Router
}

func New(cfg *config.Config, front, admin *router.Router) *Handlers {
	return &Handlers{cfg: cfg, front: front, admin: admin}
}

// Register wires all routes onto the gin engine. Back-office views sit
// behind the admin JWT gate.
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/views/:view", h.view(h.front))
	r.POST("/events", h.event(h.front))

	r.POST("/admin/login", h.AdminLogin)
	admin := r.Group("/admin", AdminAuth(h.cfg.JWTSecret))
	admin.GET("/views/:view", h.view(h.admin))
	admin.POST("/events", h.event(h.admin))
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Artisanal Crafts server is running",
	})
}

// view navigates a router to the requested view. The id query parameter
// selects the record for detail and article views.
func (h *Handlers) view(rt *router.Router) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := rt.Navigate(router.View(c.Param("view")), c.Query("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// event dispatches an action. All form fields except "action" travel as
// the event's data attributes, mirroring the data-* contract between
// the page markup and the original click handlers.
func (h *Handlers) event(rt *router.Router) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
			return
		}

		action := c.PostForm("action")
		if action == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Action is required"})
			return
		}

		data := make(map[string]string)
		for key, values := range c.Request.PostForm {
			if key != "action" && len(values) > 0 {
				data[key] = values[0]
			}
		}

		result, err := rt.Dispatch(router.Event{Action: action, Data: data})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
