package anime

import (
	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/shared/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListAnime serves the owner's anime list.
func (h *Handler) ListAnime(c echo.Context) error {
	entries, err := h.service.List()
	if err != nil {
		return response.FromError(c, err)
	}
	return response.JSON(c, entries)
}
