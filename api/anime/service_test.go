package anime

import (
	"testing"
)

type mockStore struct {
	entries []Entry
	lastUID uint
}

func (m *mockStore) ListByUser(userID uint) ([]Entry, error) {
	m.lastUID = userID
	return m.entries, nil
}

func TestListServesOwnerOnly(t *testing.T) {
	store := &mockStore{entries: []Entry{
		{ID: 1, Title: "show a", Status: "completed"},
		{ID: 2, Title: "show b"},
	}}
	svc := NewService(store)

	entries, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if store.lastUID != 1 {
		t.Fatalf("queried user = %d, want 1", store.lastUID)
	}
	if entries[0].Status != "completed" {
		t.Fatalf("status = %q", entries[0].Status)
	}
	if entries[1].Status != "watching" {
		t.Fatalf("empty status should default to watching, got %q", entries[1].Status)
	}
	for _, e := range entries {
		if e.UserID != 1 {
			t.Fatalf("user id = %d, want 1", e.UserID)
		}
	}
}
