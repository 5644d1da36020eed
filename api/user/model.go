package user

import (
	"time"
)

const UsersTableName = "users"

// User is a blog user created on first successful SSO login.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	SSOID     string    `gorm:"column:sso_id;uniqueIndex" json:"-"`
	Email     string    `json:"-"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return UsersTableName
}

const SessionsTableName = "sessions"

// Session is an active bearer-token session. At most one non-expired
// session exists per user; prior rows are deleted on a new login.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Token     string    `gorm:"uniqueIndex" json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Session) TableName() string {
	return SessionsTableName
}

// AuthUser is the authenticated-caller profile attached to requests
// and returned by the user status endpoints.
type AuthUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	IsAdmin  bool   `json:"is_admin"`
}
