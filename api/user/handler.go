package user

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/shared/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// StatusResponse is the session check payload. User is null when the
// caller is not logged in.
type StatusResponse struct {
	LoggedIn bool      `json:"logged_in"`
	User     *AuthUser `json:"user"`
}

// Status reports whether the bearer token maps to a live session.
// It never fails; any verification problem reads as logged out.
func (h *Handler) Status(c echo.Context) error {
	token := BearerToken(c)
	if token == "" {
		return response.JSON(c, StatusResponse{LoggedIn: false})
	}

	authUser, err := h.service.VerifyToken(token)
	if err != nil {
		return response.JSON(c, StatusResponse{LoggedIn: false})
	}

	return response.JSON(c, StatusResponse{LoggedIn: true, User: authUser})
}

// Logout deletes the caller's session.
func (h *Handler) Logout(c echo.Context) error {
	if err := h.service.Logout(BearerToken(c)); err != nil {
		return response.FromError(c, err)
	}
	return response.JSON(c, map[string]bool{"success": true})
}

// BearerToken extracts the bearer credential from the Authorization header.
func BearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
