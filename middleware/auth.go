// Package middleware holds the request-enrichment chain (token extraction,
// user extraction) and the centralized error mapper for the HTTP boundary.
package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"bloglist-backend/store"
)

// Context keys used to pass extracted values down the chain.
const (
	ContextToken = "token"
	ContextUser  = "user"
)

// ErrTokenInvalid is returned when a presented token fails signature or
// expiry verification. The error mapper turns it into a 401.
var ErrTokenInvalid = errors.New("token invalid")

// Claims is the signed token payload: username plus user id.
type Claims struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	jwt.RegisteredClaims
}

// TokenExtractor pulls a bearer token out of the Authorization header and
// stores it on the context. It never rejects a request; requests without a
// `Bearer ` prefixed header simply carry no token.
func TokenExtractor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				c.Set(ContextToken, strings.TrimPrefix(auth, "Bearer "))
			}
			return next(c)
		}
	}
}

// UserExtractor resolves the extracted token to a user record and stores it
// on the context. No token means no user and the chain continues; the route
// handler decides whether that is a 401. A token that fails verification
// stops the chain with ErrTokenInvalid. A valid token without an id claim,
// or one whose user no longer exists, also continues with no user attached.
// Performs exactly one store read when a verifiable token is present.
func UserExtractor(s store.Store, key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(ContextToken).(string)
			if !ok || token == "" {
				return next(c)
			}

			claims := &Claims{}
			_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return key, nil
			})
			if err != nil {
				return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
			}

			if claims.ID == "" {
				return next(c)
			}

			user, err := s.UserByID(c.Request().Context(), claims.ID)
			if err != nil {
				return err
			}
			c.Set(ContextUser, user)
			return next(c)
		}
	}
}
