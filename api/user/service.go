package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qmshan/blogapi/shared/apperr"
)

// sessionDuration is the lifetime of a bearer-token session.
const sessionDuration = 7 * 24 * time.Hour

const defaultUsername = "anonymous"

// Store is the persistence surface the service needs.
type Store interface {
	GetSessionByToken(token string) (*Session, error)
	GetUserByID(id uint) (*User, error)
	GetUserBySSOID(ssoID string) (*User, error)
	CreateUser(u *User) error
	UpdateUserProfile(id uint, username, email string) error
	CreateSession(session *Session) error
	DeleteSessionsByUserID(userID uint) error
	DeleteSessionByToken(token string) error
}

type Service struct {
	store     Store
	avatarURL string
}

func NewService(store Store, avatarURL string) *Service {
	return &Service{store: store, avatarURL: avatarURL}
}

// VerifyToken resolves a bearer token to its user. Expired sessions are
// filtered at query time.
func (s *Service) VerifyToken(token string) (*AuthUser, error) {
	if token == "" {
		return nil, apperr.New(apperr.Auth, "missing bearer token")
	}

	session, err := s.store.GetSessionByToken(token)
	if err != nil {
		return nil, apperr.New(apperr.Auth, "invalid or expired session")
	}

	u, err := s.store.GetUserByID(session.UserID)
	if err != nil {
		return nil, apperr.New(apperr.Auth, "invalid or expired session")
	}

	return s.authUser(u), nil
}

// Logout deletes the session identified by token.
func (s *Service) Logout(token string) error {
	if token == "" {
		return apperr.New(apperr.Auth, "missing bearer token")
	}
	if err := s.store.DeleteSessionByToken(token); err != nil {
		return fmt.Errorf("failed to delete session: %v", err)
	}
	return nil
}

// Login finds or creates the user for ssoID, refreshes the stored
// username and email, replaces any prior sessions with a fresh one and
// returns the user together with the new bearer token.
func (s *Service) Login(ssoID, username, email string) (*AuthUser, string, error) {
	u, err := s.store.GetUserBySSOID(ssoID)
	if err == nil {
		if err := s.store.UpdateUserProfile(u.ID, username, email); err != nil {
			return nil, "", fmt.Errorf("failed to update user: %v", err)
		}
		u.Username = username
		u.Email = email
	} else {
		u = &User{
			Username: username,
			SSOID:    ssoID,
			Email:    email,
			Avatar:   s.avatarURL,
		}
		if err := s.store.CreateUser(u); err != nil {
			return nil, "", fmt.Errorf("failed to create user: %v", err)
		}
	}

	// One active session per user: prior rows go away first.
	if err := s.store.DeleteSessionsByUserID(u.ID); err != nil {
		return nil, "", fmt.Errorf("failed to delete prior sessions: %v", err)
	}

	session := &Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(sessionDuration),
	}
	if err := s.store.CreateSession(session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %v", err)
	}

	return s.authUser(u), session.Token, nil
}

func (s *Service) authUser(u *User) *AuthUser {
	username := u.Username
	if username == "" {
		username = defaultUsername
	}
	avatar := u.Avatar
	if avatar == "" {
		avatar = s.avatarURL
	}
	return &AuthUser{
		ID:       u.ID,
		Username: username,
		Avatar:   avatar,
		IsAdmin:  u.IsAdmin,
	}
}
