package sso

import (
	"time"

	"gorm.io/datatypes"
)

const AuthSessionsTableName = "auth_sessions"

// AuthSession is the ephemeral record bridging the SSO redirect round
// trip to the verify call. Rows are single-use and live five minutes.
type AuthSession struct {
	AuToken      string         `gorm:"column:au_token;primaryKey" json:"au_token"`
	EncryptedMsg string         `json:"encrypted_msg"`
	UserData     datatypes.JSON `json:"user_data"`
	ExpiresAt    time.Time      `json:"expires_at"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"-"`
}

func (AuthSession) TableName() string {
	return AuthSessionsTableName
}
