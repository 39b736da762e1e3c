package handlers

import (
	"github.com/labstack/echo/v4"

	"bloglist-backend/middleware"
	"bloglist-backend/models"
	"bloglist-backend/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	store  store.Store
	jwtKey []byte
}

// New creates a Handler with the given store and token signing key.
func New(s store.Store, jwtKey []byte) *Handler {
	return &Handler{store: s, jwtKey: jwtKey}
}

// Register mounts all API routes on e, together with the extraction chain
// and the centralized error mapper. The testing reset route is mounted only
// when enableReset is true (never in production).
func (h *Handler) Register(e *echo.Echo, enableReset bool) {
	e.HTTPErrorHandler = middleware.ErrorHandler(e.DefaultHTTPErrorHandler)
	e.Use(middleware.TokenExtractor())

	blogs := e.Group("/api/blogs", middleware.UserExtractor(h.store, h.jwtKey))
	blogs.GET("", h.ListBlogs)
	blogs.POST("", h.CreateBlog)
	blogs.PUT("/:id", h.UpdateBlog)
	blogs.DELETE("/:id", h.DeleteBlog)

	e.GET("/api/users", h.ListUsers)
	e.POST("/api/users", h.CreateUser)
	e.POST("/api/login", h.Login)

	if enableReset {
		e.POST("/api/testing/reset", h.Reset)
	}
}

// currentUser returns the user attached by the extraction chain, or nil.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(middleware.ContextUser).(*models.User)
	return user
}
