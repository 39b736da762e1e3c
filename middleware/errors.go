package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bloglist-backend/store"
)

// ErrorResponse is the JSON error body shared by every mapped failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler maps store and token errors to fixed client responses:
// schema validation → 400 with the store's message, malformed id → 400,
// duplicate username → 400, invalid token → 401, unknown route → 404.
// Anything unrecognized is logged and passed to the framework's default
// handler (500). Handler-local errors (missing auth, ownership mismatch,
// short password) are written directly by the handlers and never reach here.
func ErrorHandler(fallback echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var verr *store.ValidationError
		switch {
		case errors.As(err, &verr):
			_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Error()})
		case errors.Is(err, store.ErrMalformedID):
			_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed id"})
		case errors.Is(err, store.ErrDuplicateUsername):
			_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "expected `username` to be unique"})
		case errors.Is(err, ErrTokenInvalid):
			_ = c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "token invalid"})
		case errors.Is(err, echo.ErrNotFound):
			_ = c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown endpoint"})
		default:
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) {
				zap.L().Error("unhandled error", zap.Error(err))
			}
			fallback(err, c)
		}
	}
}
