package post

import (
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/shared/apperr"
)

type mockStore struct {
	mu    sync.Mutex
	posts []Post
	views map[uint]int
}

func newMockStore(posts ...Post) *mockStore {
	return &mockStore{posts: posts, views: map[uint]int{}}
}

func (m *mockStore) ListAll() ([]Post, error) {
	return m.posts, nil
}

func (m *mockStore) GetByID(id uint) (*Post, error) {
	for _, p := range m.posts {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStore) UpdateViewCount(id uint, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.views[id] = count
	return nil
}

func (m *mockStore) viewCount(id uint) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.views[id]
	return n, ok
}

type mockUsers struct {
	users map[uint]user.User
}

func (m *mockUsers) GetUsersByIDs(ids []uint) (map[uint]user.User, error) {
	out := map[uint]user.User{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func newTestService(store *mockStore) *Service {
	return NewService(store, &mockUsers{users: map[uint]user.User{
		1: {ID: 1, Username: "owner", Avatar: "https://cdn.example/owner.png"},
	}}, "https://cdn.example/default.png")
}

func TestListTruncatesContent(t *testing.T) {
	long := strings.Repeat("x", 300)
	store := newMockStore(Post{ID: 1, Title: "hello", Content: long, AuthorID: 1})
	svc := newTestService(store)

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d", len(items))
	}

	want := strings.Repeat("x", 250) + "..."
	if items[0].Content != want {
		t.Fatalf("content length = %d, want %d", len(items[0].Content), len(want))
	}
	if items[0].Excerpt != strings.Repeat("x", 25)+"..." {
		t.Fatalf("excerpt = %q", items[0].Excerpt)
	}
	if items[0].Username != "owner" {
		t.Fatalf("username = %q", items[0].Username)
	}
}

func TestListKeepsStoredExcerpt(t *testing.T) {
	store := newMockStore(Post{ID: 1, Content: "body", Excerpt: "hand-written", AuthorID: 1})
	svc := newTestService(store)

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].Excerpt != "hand-written" {
		t.Fatalf("excerpt = %q", items[0].Excerpt)
	}
}

func TestGetReturnsFullContentAndBumpsViews(t *testing.T) {
	long := strings.Repeat("x", 300)
	store := newMockStore(Post{ID: 1, Content: long, ViewCount: 4, AuthorID: 1})
	svc := newTestService(store)

	item, err := svc.Get(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if item.Content != long {
		t.Fatal("detail view must not truncate content")
	}

	// The bump is fire-and-forget; poll for it.
	deadline := time.Now().Add(time.Second)
	for {
		if n, ok := store.viewCount(1); ok {
			if n != 5 {
				t.Fatalf("view count = %d, want 5", n)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("view count was never updated")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestGetMissingPost(t *testing.T) {
	svc := newTestService(newMockStore())
	if _, err := svc.Get(42); !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestSearchDefaultsTitle(t *testing.T) {
	store := newMockStore(Post{ID: 1, Content: "body", Tags: "go,api"})
	svc := newTestService(store)

	items, err := svc.Search()
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if items[0].Title != "untitled" {
		t.Fatalf("title = %q", items[0].Title)
	}
	if items[0].Tags != "go,api" {
		t.Fatalf("tags = %q", items[0].Tags)
	}
}
