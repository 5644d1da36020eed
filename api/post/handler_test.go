package post

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/qmshan/blogapi/api/comment"
)

func TestGetPostNotFound(t *testing.T) {
	svc := newTestService(newMockStore())
	h := NewHandler(svc, comment.NewService(nil, nil, nil, ""))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/posts/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/posts/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.GetPost(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
}

func TestGetPostInvalidID(t *testing.T) {
	svc := newTestService(newMockStore())
	h := NewHandler(svc, comment.NewService(nil, nil, nil, ""))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/posts/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/posts/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.GetPost(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
