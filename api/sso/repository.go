package sso

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(session *AuthSession) error {
	return r.DB.Create(session).Error
}

// GetByToken returns the handshake record for auToken. Expired rows are
// filtered at query time; the cron sweep removes them for good.
func (r *Repository) GetByToken(auToken string) (*AuthSession, error) {
	var session AuthSession
	err := r.DB.Where("au_token = ? AND expires_at > ?", auToken, time.Now()).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *Repository) Delete(auToken string) error {
	return r.DB.Where("au_token = ?", auToken).Delete(&AuthSession{}).Error
}

func (r *Repository) DeleteExpired() (int64, error) {
	result := r.DB.Where("expires_at <= ?", time.Now()).Delete(&AuthSession{})
	return result.RowsAffected, result.Error
}
