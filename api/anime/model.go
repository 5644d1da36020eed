package anime

import (
	"time"
)

const AnimeListTableName = "anime_list"

// Entry is one tracked show on the owner's anime list.
// Status is one of watching, completed, paused or dropped.
type Entry struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"index" json:"user_id"`
	Title         string     `json:"title"`
	CoverURL      string     `json:"cover_url"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	CompletedDate *time.Time `json:"completed_date"`
}

func (Entry) TableName() string {
	return AnimeListTableName
}
