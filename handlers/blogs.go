package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bloglist-backend/middleware"
	"bloglist-backend/models"
)

type ownerInfo struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

type blogData struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	URL    string     `json:"url"`
	Likes  int        `json:"likes"`
	User   *ownerInfo `json:"user"`
}

type blogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	User   string `json:"user"`
}

func toBlogData(b *models.Blog) blogData {
	data := blogData{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
	if b.User != nil {
		data.User = &ownerInfo{
			Username: b.User.Username,
			Name:     b.User.Name,
			ID:       b.User.ID,
		}
	}
	return data
}

// ListBlogs returns all blogs with the owner's identity joined in. No auth.
func (h *Handler) ListBlogs(c echo.Context) error {
	blogs, err := h.store.ListBlogs(c.Request().Context())
	if err != nil {
		return err
	}

	result := make([]blogData, len(blogs))
	for i := range blogs {
		result[i] = toBlogData(&blogs[i])
	}
	return c.JSON(http.StatusOK, result)
}

// CreateBlog persists a new blog owned by the authenticated user and appends
// its id to the owner's reverse collection.
func (h *Handler) CreateBlog(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: "token invalid or missing"})
	}

	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog := &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: user.ID,
	}
	if err := h.store.CreateBlog(c.Request().Context(), blog, user); err != nil {
		return err
	}

	blog.User = user
	return c.JSON(http.StatusCreated, toBlogData(blog))
}

// UpdateBlog replaces title/author/url/likes (and the owner reference when
// supplied) for an existing blog. No ownership check, matching delete's
// asymmetric counterpart in the original API.
func (h *Handler) UpdateBlog(c echo.Context) error {
	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog := &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
		UserID: req.User,
	}
	updated, err := h.store.UpdateBlog(c.Request().Context(), c.Param("id"), blog)
	if err != nil {
		return err
	}
	if updated == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, toBlogData(updated))
}

// DeleteBlog removes a blog. Only the owner may delete; deleting an absent
// blog succeeds vacuously.
func (h *Handler) DeleteBlog(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: "token invalid or missing"})
	}

	blog, err := h.store.BlogByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if blog == nil {
		return c.NoContent(http.StatusNoContent)
	}
	if blog.UserID != user.ID {
		return c.JSON(http.StatusForbidden, middleware.ErrorResponse{Error: "user not authorized to delete this blog"})
	}

	if err := h.store.DeleteBlog(c.Request().Context(), blog, user); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
