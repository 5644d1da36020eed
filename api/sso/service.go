package sso

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/shared/apperr"
	"github.com/qmshan/blogapi/shared/zaplogger"
)

// authSessionTTL is the lifetime of a handshake record.
const authSessionTTL = 5 * time.Minute

// Store is the persistence surface the service needs.
type Store interface {
	Create(session *AuthSession) error
	GetByToken(auToken string) (*AuthSession, error)
	Delete(auToken string) error
}

// UserProvisioner turns a verified SSO identity into a local session.
type UserProvisioner interface {
	Login(ssoID, username, email string) (*user.AuthUser, string, error)
}

// IdentityProvider exchanges login codes for identity payloads.
type IdentityProvider interface {
	Exchange(code string) (*IdentityPayload, error)
}

type Service struct {
	store       Store
	users       UserProvisioner
	idp         IdentityProvider
	frontendURL string
}

func NewService(store Store, users UserProvisioner, idp IdentityProvider, frontendURL string) *Service {
	return &Service{store: store, users: users, idp: idp, frontendURL: frontendURL}
}

// Callback exchanges the provider's code, persists the handshake record
// and returns the frontend URL carrying the au token.
func (s *Service) Callback(code string) (string, error) {
	if code == "" {
		return "", apperr.New(apperr.Validation, "missing code parameter")
	}

	payload, err := s.idp.Exchange(code)
	if err != nil {
		return "", err
	}
	if payload.Msg == "" {
		return "", apperr.New(apperr.Validation, "missing msg field in sso response")
	}

	session := &AuthSession{
		AuToken:      uuid.NewString(),
		EncryptedMsg: payload.Msg,
		UserData:     datatypes.JSON(payload.Raw),
		ExpiresAt:    time.Now().Add(authSessionTTL),
	}
	if err := s.store.Create(session); err != nil {
		return "", fmt.Errorf("failed to save auth session: %v", err)
	}

	return fmt.Sprintf("%s/?au=%s", s.frontendURL, session.AuToken), nil
}

// VerifyResult is the outcome of a successful verification.
type VerifyResult struct {
	Token string
	User  *user.AuthUser
}

// Verify re-hashes the client's nonce and compares it to the stored
// challenge. On a match it establishes a local session and consumes
// the handshake record.
func (s *Service) Verify(auToken, randomString string) (*VerifyResult, error) {
	if auToken == "" || randomString == "" {
		return nil, apperr.New(apperr.Validation, "missing required parameters")
	}

	session, err := s.store.GetByToken(auToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Validation, "verification session expired")
		}
		return nil, fmt.Errorf("failed to load auth session: %v", err)
	}

	digest := sha256.Sum256([]byte(randomString))
	computed := hex.EncodeToString(digest[:])
	if subtle.ConstantTimeCompare([]byte(computed), []byte(session.EncryptedMsg)) != 1 {
		return nil, apperr.New(apperr.Validation, "verification failed")
	}

	username, ssoID, email, err := ParseProfile(session.UserData)
	if err != nil {
		return nil, err
	}
	if ssoID == "" {
		return nil, apperr.New(apperr.Validation, "missing user id in sso payload")
	}

	authUser, token, err := s.users.Login(ssoID, username, email)
	if err != nil {
		return nil, err
	}

	// Single use: the handshake record goes away once consumed. The
	// session already exists, so a cleanup failure is only logged.
	if err := s.store.Delete(auToken); err != nil {
		zaplogger.Warn("failed to delete auth session", zaplogger.Fields{
			"au_token": auToken,
			"error":    err.Error(),
		})
	}

	return &VerifyResult{Token: token, User: authUser}, nil
}
