package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Reset wipes both collections so end-to-end test runs start from a clean
// database. Mounted only outside production.
func (h *Handler) Reset(c echo.Context) error {
	if err := h.store.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
