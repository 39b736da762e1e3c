package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"bloglist-backend/middleware"
)

// tokenLifetime bounds how long an issued login token stays valid.
const tokenLifetime = time.Hour

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Login checks credentials and issues a signed token carrying the username
// and user id. Unknown usernames and wrong passwords get the same generic
// 401 so usernames cannot be enumerated.
func (h *Handler) Login(c echo.Context) error {
	var creds credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.store.UserByUsername(c.Request().Context(), creds.Username)
	if err != nil {
		return err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: "invalid username or password"})
	}

	claims := &middleware.Claims{
		Username: user.Username,
		ID:       user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtKey)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
