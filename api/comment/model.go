package comment

import (
	"time"
)

const CommentsTableName = "comments"

// Comment is a comment on a post. ParentID forms a self-referential
// tree; 0 marks a root comment. Content is HTML-escaped before storage.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index" json:"post_id"`
	ParentID  uint      `json:"parent_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return CommentsTableName
}

// Item is the comment payload served to the browser, annotated with
// the author's profile and the parent author's name for reply display.
type Item struct {
	ID             uint      `json:"id"`
	PostID         uint      `json:"post_id"`
	ParentID       uint      `json:"parent_id"`
	UserID         uint      `json:"user_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	Username       string    `json:"username"`
	Avatar         string    `json:"avatar"`
	IsAdmin        bool      `json:"is_admin,omitempty"`
	ParentUsername *string   `json:"parent_username"`
}
