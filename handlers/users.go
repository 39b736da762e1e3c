package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"bloglist-backend/middleware"
	"bloglist-backend/models"
)

type blogRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type userData struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Blogs    []blogRef `json:"blogs"`
}

type createUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func toUserData(u *models.User) userData {
	data := userData{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Blogs:    make([]blogRef, 0, len(u.Blogs)),
	}
	for _, b := range u.Blogs {
		data.Blogs = append(data.Blogs, blogRef{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
		})
	}
	return data
}

// CreateUser signs up a new account. The password policy is checked here,
// before any persistence attempt; username length and uniqueness are the
// store's responsibility and surface through the error mapper. The password
// is bcrypt-hashed before storage and never returned.
func (h *Handler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if len(req.Password) < 3 {
		return c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: "password must be at least 3 characters long"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := h.store.CreateUser(c.Request().Context(), user); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserData(user))
}

// ListUsers returns all users with their owned blogs joined in.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.store.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	result := make([]userData, len(users))
	for i := range users {
		result[i] = toUserData(&users[i])
	}
	return c.JSON(http.StatusOK, result)
}
