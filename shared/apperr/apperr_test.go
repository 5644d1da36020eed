package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Auth, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Upstream, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusOf(New(tc.kind, "x")); got != tc.want {
			t.Errorf("kind %d: status = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestStatusOfUnclassified(t *testing.T) {
	if got := StatusOf(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", got)
	}
}

func TestUpstreamWithStatus(t *testing.T) {
	err := UpstreamWithStatus(http.StatusBadGateway, "upstream down")
	if StatusOf(err) != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", StatusOf(err))
	}
	if !IsKind(err, Upstream) {
		t.Fatal("expected Upstream kind")
	}
}

func TestStatusOfWrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(NotFound, "post not found"))
	if StatusOf(err) != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", StatusOf(err))
	}
	if !IsKind(err, NotFound) {
		t.Fatal("expected NotFound kind through wrapping")
	}
}
