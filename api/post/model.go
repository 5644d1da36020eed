package post

import (
	"time"
)

const PostsTableName = "posts"

// Post is a blog post. ViewCount and CommentCount are denormalized
// counters maintained by read-then-write updates.
type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `json:"title"`
	Content      string    `gorm:"type:text" json:"content"`
	Excerpt      string    `json:"excerpt"`
	Category     string    `json:"category"`
	Tags         string    `json:"tags"`
	ViewCount    int       `json:"view_count"`
	CommentCount int       `json:"comment_count"`
	AuthorID     uint      `json:"author_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string {
	return PostsTableName
}

// Item is the post payload served to the browser, with the author's
// public profile joined in.
type Item struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Excerpt      string    `json:"excerpt"`
	AuthorID     uint      `json:"author_id"`
	ViewCount    int       `json:"view_count"`
	CommentCount int       `json:"comment_count"`
	Category     string    `json:"category"`
	Tags         string    `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar"`
}

// SearchItem is the bulk payload for client-side search.
type SearchItem struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}
