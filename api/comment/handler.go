package comment

import (
	"net/http"
	"strconv"

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

type createRequest struct {
	Content  string `json:"content"`
	ParentID uint   `json:"parent_id"`
}

// CreateComment adds a comment or reply to a post.
func (h *Handler) CreateComment(c echo.Context) error {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid post id")
	}

	var req createRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request body")
	}

	item, err := h.service.Create(postID, middleware.CurrentUser(c), req.Content, req.ParentID)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.JSON(c, map[string]interface{}{
		"success": true,
		"comment": item,
	})
}

// DeleteComment cascades a delete over the comment and its descendants.
func (h *Handler) DeleteComment(c echo.Context) error {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid post id")
	}
	commentID, err := parseID(c.Param("commentId"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid comment id")
	}

	deleted, err := h.service.Delete(postID, commentID, middleware.CurrentUser(c))
	if err != nil {
		return response.FromError(c, err)
	}

	return response.JSON(c, map[string]interface{}{
		"success":       true,
		"deleted_count": deleted,
	})
}

// GetCommentTree serves the post's comments nested by parent links.
func (h *Handler) GetCommentTree(c echo.Context) error {
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid post id")
	}

	tree, err := h.service.TreeForPost(postID)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.JSON(c, tree)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
