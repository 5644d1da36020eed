package post

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/shared/apperr"
	"github.com/qmshan/blogapi/shared/zaplogger"
)

// listContentLimit is how many characters of the body the list view gets.
const listContentLimit = 250

// excerptLimit is the fallback excerpt length derived from the body.
const excerptLimit = 25

const untitled = "untitled"

// Store is the persistence surface the service needs.
type Store interface {
	ListAll() ([]Post, error)
	GetByID(id uint) (*Post, error)
	UpdateViewCount(id uint, count int) error
}

// UserDirectory resolves author profiles for display.
type UserDirectory interface {
	GetUsersByIDs(ids []uint) (map[uint]user.User, error)
}

type Service struct {
	store     Store
	users     UserDirectory
	avatarURL string
}

func NewService(store Store, users UserDirectory, avatarURL string) *Service {
	return &Service{store: store, users: users, avatarURL: avatarURL}
}

// List returns all posts newest-first with the content truncated for
// list display. The full body is never served here.
func (s *Service) List() ([]Item, error) {
	posts, err := s.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %v", err)
	}

	authors, err := s.authors(posts)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(posts))
	for _, p := range posts {
		item := s.item(&p, authors)
		item.Content = truncate(p.Content, listContentLimit) + "..."
		if item.Excerpt == "" {
			item.Excerpt = defaultExcerpt(p.Content)
		}
		items = append(items, item)
	}
	return items, nil
}

// Get returns the full post and bumps its view counter in the
// background. The bump is best effort; a failure is logged, not surfaced.
func (s *Service) Get(id uint) (*Item, error) {
	p, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "post not found")
		}
		return nil, fmt.Errorf("failed to get post: %v", err)
	}

	go s.bumpViewCount(p.ID, p.ViewCount)

	authors, err := s.authors([]Post{*p})
	if err != nil {
		return nil, err
	}
	item := s.item(p, authors)
	return &item, nil
}

// Search returns the bulk fields the client matches keywords against.
func (s *Service) Search() ([]SearchItem, error) {
	posts, err := s.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %v", err)
	}

	items := make([]SearchItem, 0, len(posts))
	for _, p := range posts {
		title := p.Title
		if title == "" {
			title = untitled
		}
		items = append(items, SearchItem{
			ID:      p.ID,
			Title:   title,
			Content: p.Content,
			Tags:    p.Tags,
		})
	}
	return items, nil
}

// bumpViewCount is a plain read-then-write increment; concurrent
// readers can lose updates, an accepted limitation.
func (s *Service) bumpViewCount(id uint, current int) {
	if err := s.store.UpdateViewCount(id, current+1); err != nil {
		zaplogger.Error("failed to update view count", zaplogger.Fields{
			"post_id": id,
			"error":   err.Error(),
		})
	}
}

func (s *Service) authors(posts []Post) (map[uint]user.User, error) {
	ids := make([]uint, 0, len(posts))
	seen := make(map[uint]bool, len(posts))
	for _, p := range posts {
		if p.AuthorID != 0 && !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}
	authors, err := s.users.GetUsersByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %v", err)
	}
	return authors, nil
}

func (s *Service) item(p *Post, authors map[uint]user.User) Item {
	username := "anonymous"
	avatar := s.avatarURL
	if author, ok := authors[p.AuthorID]; ok {
		if author.Username != "" {
			username = author.Username
		}
		if author.Avatar != "" {
			avatar = author.Avatar
		}
	}

	title := p.Title
	if title == "" {
		title = untitled
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = p.CreatedAt
	}

	return Item{
		ID:           p.ID,
		Title:        title,
		Content:      p.Content,
		Excerpt:      p.Excerpt,
		AuthorID:     p.AuthorID,
		ViewCount:    p.ViewCount,
		CommentCount: p.CommentCount,
		Category:     p.Category,
		Tags:         p.Tags,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    updatedAt,
		Username:     username,
		Avatar:       avatar,
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func defaultExcerpt(content string) string {
	if len([]rune(content)) > excerptLimit {
		return truncate(content, excerptLimit) + "..."
	}
	return content
}
