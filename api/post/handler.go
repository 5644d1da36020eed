package post

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/api/comment"
	"github.com/qmshan/blogapi/shared/response"
)

type Handler struct {
	service  *Service
	comments *comment.Service
}

func NewHandler(service *Service, comments *comment.Service) *Handler {
	return &Handler{service: service, comments: comments}
}

// ListPosts serves all posts newest-first with truncated content.
func (h *Handler) ListPosts(c echo.Context) error {
	items, err := h.service.List()
	if err != nil {
		return response.FromError(c, err)
	}
	return response.JSON(c, items)
}

// DetailResponse is the post-detail payload: the full post plus its
// flat comment thread.
type DetailResponse struct {
	Post     Item           `json:"post"`
	Comments []comment.Item `json:"comments"`
}

// GetPost serves the full post with its comments and bumps view_count.
func (h *Handler) GetPost(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid post id")
	}

	item, err := h.service.Get(uint(id))
	if err != nil {
		return response.FromError(c, err)
	}

	comments, err := h.comments.ListForPost(uint(id))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.JSON(c, DetailResponse{Post: *item, Comments: comments})
}

// SearchPosts serves the bulk fields for client-side keyword search.
func (h *Handler) SearchPosts(c echo.Context) error {
	items, err := h.service.Search()
	if err != nil {
		return response.FromError(c, err)
	}
	return response.JSON(c, items)
}
