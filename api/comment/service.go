package comment

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/shared/apperr"
	"github.com/qmshan/blogapi/shared/zaplogger"
)

// maxContentLength is the comment length cap in characters.
const maxContentLength = 800

// htmlEscaper matches the escape set applied to stored comment content.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
	"/", "&#x2F;",
)

// Store is the persistence surface the service needs.
type Store interface {
	ListByPost(postID uint) ([]Comment, error)
	GetByIDAndPost(id, postID uint) (*Comment, error)
	Create(c *Comment) error
	ChildIDs(parentIDs []uint) ([]uint, error)
	DeleteByIDAndPost(id, postID uint) error
}

// PostStore is the slice of the post repository the service needs for
// existence checks and the denormalized comment counter.
type PostStore interface {
	Exists(id uint) (bool, error)
	CommentCount(id uint) (int, error)
	SetCommentCount(id uint, count int) error
}

// UserDirectory resolves commenter profiles for display.
type UserDirectory interface {
	GetUsersByIDs(ids []uint) (map[uint]user.User, error)
}

type Service struct {
	store     Store
	posts     PostStore
	users     UserDirectory
	avatarURL string
}

func NewService(store Store, posts PostStore, users UserDirectory, avatarURL string) *Service {
	return &Service{store: store, posts: posts, users: users, avatarURL: avatarURL}
}

// ListForPost returns the post's comments as a flat ordered list, each
// annotated with the author profile and the parent author's username.
func (s *Service) ListForPost(postID uint) ([]Item, error) {
	comments, err := s.store.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %v", err)
	}

	authors, err := s.commenters(comments)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]Comment, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
	}

	items := make([]Item, 0, len(comments))
	for _, c := range comments {
		item := s.item(&c, authors)
		if parent, ok := byID[c.ParentID]; c.ParentID != 0 && ok {
			if author, ok := authors[parent.UserID]; ok && author.Username != "" {
				name := author.Username
				item.ParentUsername = &name
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// TreeForPost returns the post's comments nested by parent links.
func (s *Service) TreeForPost(postID uint) ([]*Node, error) {
	exists, err := s.posts.Exists(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %v", err)
	}
	if !exists {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}

	items, err := s.ListForPost(postID)
	if err != nil {
		return nil, err
	}
	return BuildTree(items), nil
}

// Create validates and stores a comment, then bumps the post's comment
// counter (read-then-write, an accepted race).
func (s *Service) Create(postID uint, author *user.AuthUser, content string, parentID uint) (*Item, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.Validation, "comment content is required")
	}
	if len([]rune(content)) > maxContentLength {
		return nil, apperr.Newf(apperr.Validation, "comment content exceeds %d characters", maxContentLength)
	}

	exists, err := s.posts.Exists(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %v", err)
	}
	if !exists {
		return nil, apperr.New(apperr.NotFound, "post not found")
	}

	if parentID != 0 {
		if _, err := s.store.GetByIDAndPost(parentID, postID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.Validation, "parent comment not found in this post")
			}
			return nil, fmt.Errorf("failed to check parent comment: %v", err)
		}
	}

	c := &Comment{
		PostID:   postID,
		ParentID: parentID,
		UserID:   author.ID,
		Content:  htmlEscaper.Replace(content),
	}
	if err := s.store.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create comment: %v", err)
	}

	s.adjustCommentCount(postID, 1)

	return &Item{
		ID:        c.ID,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		UserID:    author.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Username:  author.Username,
		Avatar:    author.Avatar,
		IsAdmin:   author.IsAdmin,
	}, nil
}

// Delete removes a comment and all its descendants. The caller must be
// the comment's author or an admin. Returns the number of rows deleted.
func (s *Service) Delete(postID, commentID uint, caller *user.AuthUser) (int, error) {
	target, err := s.store.GetByIDAndPost(commentID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.New(apperr.NotFound, "comment not found in this post")
		}
		return 0, fmt.Errorf("failed to get comment: %v", err)
	}

	if target.UserID != caller.ID && !caller.IsAdmin {
		return 0, apperr.New(apperr.Forbidden, "not allowed to delete this comment")
	}

	ids, err := s.descendants(commentID)
	if err != nil {
		return 0, err
	}

	// Per-id deletes; a single failure does not abort the rest.
	deleted := 0
	for _, id := range ids {
		if err := s.store.DeleteByIDAndPost(id, postID); err != nil {
			zaplogger.Warn("failed to delete comment", zaplogger.Fields{
				"comment_id": id,
				"error":      err.Error(),
			})
			continue
		}
		deleted++
	}

	s.adjustCommentCount(postID, -deleted)

	return deleted, nil
}

// descendants resolves the target comment plus every descendant via a
// breadth-first traversal over parent links, one level per query.
func (s *Service) descendants(rootID uint) ([]uint, error) {
	all := []uint{rootID}
	level := []uint{rootID}
	for len(level) > 0 {
		children, err := s.store.ChildIDs(level)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve child comments: %v", err)
		}
		all = append(all, children...)
		level = children
	}
	return all, nil
}

// adjustCommentCount applies a read-then-write delta floored at zero.
// Not atomic with the deletes; concurrent writers can under-count.
func (s *Service) adjustCommentCount(postID uint, delta int) {
	current, err := s.posts.CommentCount(postID)
	if err != nil {
		zaplogger.Error("failed to read comment count", zaplogger.Fields{
			"post_id": postID,
			"error":   err.Error(),
		})
		return
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	if err := s.posts.SetCommentCount(postID, next); err != nil {
		zaplogger.Error("failed to update comment count", zaplogger.Fields{
			"post_id": postID,
			"error":   err.Error(),
		})
	}
}

func (s *Service) commenters(comments []Comment) (map[uint]user.User, error) {
	ids := make([]uint, 0, len(comments))
	seen := make(map[uint]bool, len(comments))
	for _, c := range comments {
		if c.UserID != 0 && !seen[c.UserID] {
			seen[c.UserID] = true
			ids = append(ids, c.UserID)
		}
	}
	users, err := s.users.GetUsersByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load commenters: %v", err)
	}
	return users, nil
}

func (s *Service) item(c *Comment, authors map[uint]user.User) Item {
	username := "anonymous"
	avatar := s.avatarURL
	if author, ok := authors[c.UserID]; ok {
		if author.Username != "" {
			username = author.Username
		}
		if author.Avatar != "" {
			avatar = author.Avatar
		}
	}
	return Item{
		ID:        c.ID,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Username:  username,
		Avatar:    avatar,
	}
}
