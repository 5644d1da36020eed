package user

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

func (r *Repository) GetSessionByToken(token string) (*Session, error) {
	var session Session
	err := r.DB.Where("token = ? AND expires_at > ?", token, time.Now()).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *Repository) GetUserByID(id uint) (*User, error) {
	var u User
	err := r.DB.Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetUserBySSOID(ssoID string) (*User, error) {
	var u User
	err := r.DB.Where("sso_id = ?", ssoID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) CreateUser(u *User) error {
	return r.DB.Create(u).Error
}

func (r *Repository) UpdateUserProfile(id uint, username, email string) error {
	return r.DB.Model(&User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"username": username, "email": email}).Error
}

// GetUsersByIDs returns the users for the given ids keyed by id.
func (r *Repository) GetUsersByIDs(ids []uint) (map[uint]User, error) {
	users := make(map[uint]User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	var rows []User
	if err := r.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, u := range rows {
		users[u.ID] = u
	}
	return users, nil
}

func (r *Repository) CreateSession(session *Session) error {
	return r.DB.Create(session).Error
}

func (r *Repository) DeleteSessionsByUserID(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&Session{}).Error
}

func (r *Repository) DeleteSessionByToken(token string) error {
	return r.DB.Where("token = ?", token).Delete(&Session{}).Error
}

func (r *Repository) DeleteExpiredSessions() (int64, error) {
	result := r.DB.Where("expires_at <= ?", time.Now()).Delete(&Session{})
	return result.RowsAffected, result.Error
}
