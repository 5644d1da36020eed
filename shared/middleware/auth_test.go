package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/api/user"
)

type mockVerifier struct {
	tokens map[string]*user.AuthUser
}

func (m *mockVerifier) VerifyToken(token string) (*user.AuthUser, error) {
	if u, ok := m.tokens[token]; ok {
		return u, nil
	}
	return nil, errors.New("invalid or expired session")
}

func run(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, *user.AuthUser) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/list", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *user.AuthUser
	handler := mw(func(c echo.Context) error {
		seen = CurrentUser(c)
		return c.NoContent(http.StatusOK)
	})
	handler(c)
	return rec, seen
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	mw := Auth(&mockVerifier{})
	rec, _ := run(mw, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsBadToken(t *testing.T) {
	mw := Auth(&mockVerifier{})
	rec, _ := run(mw, "Bearer nope")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthPassesUserToHandler(t *testing.T) {
	verifier := &mockVerifier{tokens: map[string]*user.AuthUser{
		"tok": {ID: 7, Username: "alice"},
	}}
	rec, seen := run(Auth(verifier), "Bearer tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen == nil || seen.ID != 7 {
		t.Fatalf("handler did not receive the auth user: %+v", seen)
	}
}

func TestAuthWithLoginStateShape(t *testing.T) {
	rec, _ := run(AuthWithLoginState(&mockVerifier{}), "Bearer nope")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["logged_in"] != false {
		t.Fatalf("logged_in = %v, want false", body["logged_in"])
	}
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
}
