package github

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/shared/response"
)

// repoNamePattern matches the owner and repo segments of a repo path.
var repoNamePattern = regexp.MustCompile(`^[\w.-]+$`)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetRepo serves the repository card for owner/repo.
func (h *Handler) GetRepo(c echo.Context) error {
	owner := c.Param("owner")
	repo := c.Param("repo")
	if !repoNamePattern.MatchString(owner) || !repoNamePattern.MatchString(repo) {
		return response.Error(c, http.StatusBadRequest, "invalid repository path")
	}

	card := h.service.Get(c.Request().Context(), owner+"/"+repo)
	return response.JSON(c, card)
}
