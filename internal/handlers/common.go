package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error bodies are fixed contracts: the admin UI redirects to login on the
// exact 401 shape, and the storefront shows a generic failure state on 500.

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": msg})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}
