// Package response contains response utility functions for API handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/shared/apperr"
)

// JSON sends a 200 response with the given payload.
func JSON(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Error sends an error response as `{"error": message}`.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// FromError maps a service error to its HTTP status and sends it.
func FromError(c echo.Context, err error) error {
	return Error(c, apperr.StatusOf(err), err.Error())
}
