package sso

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/shared/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Callback handles the identity provider's redirect and bounces the
// browser back to the frontend with the au token.
func (h *Handler) Callback(c echo.Context) error {
	redirectURL, err := h.service.Callback(c.QueryParam("code"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.Redirect(http.StatusFound, redirectURL)
}

type verifyRequest struct {
	Au           string `json:"au"`
	RandomString string `json:"random_string"`
}

// Verify completes the handshake and returns the bearer token.
func (h *Handler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Verify(req.Au, req.RandomString)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.JSON(c, map[string]interface{}{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}
