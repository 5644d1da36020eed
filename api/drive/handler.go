package drive

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/shared/middleware"
	"github.com/qmshan/blogapi/shared/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListFiles proxies a drive file listing for the authenticated caller.
func (h *Handler) ListFiles(c echo.Context) error {
	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body")
	}

	data, err := h.service.List(req, middleware.CurrentUser(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.JSON(c, data)
}

type downloadRequest struct {
	FileID string `json:"fileid"`
}

// Download proxies a download-URL request, rewritten to the proxy host.
func (h *Handler) Download(c echo.Context) error {
	var req downloadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body")
	}

	data, err := h.service.Download(req.FileID, middleware.CurrentUser(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.JSON(c, data)
}
