package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type mapCache struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (c *mapCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (c *mapCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func repoServer(t *testing.T, calls *int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)
		if r.URL.Path != "/repos/alice/widgets" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"full_name": "alice/widgets",
			"description": "widget factory",
			"private": false,
			"language": "Go",
			"stargazers_count": 1200,
			"forks_count": 34,
			"updated_at": "2026-08-01T10:00:00Z",
			"html_url": "https://github.example/alice/widgets"
		}`))
	}))
}

func TestGetFetchesAndCaches(t *testing.T) {
	var calls int64
	server := repoServer(t, &calls)
	defer server.Close()

	cache := newMapCache()
	svc := NewService(server.URL, cache)

	repo := svc.Get(context.Background(), "alice/widgets")
	if repo.Error {
		t.Fatal("unexpected error card")
	}
	if repo.FullName != "alice/widgets" || repo.Language != "Go" {
		t.Fatalf("unexpected card: %+v", repo)
	}
	if repo.Visibility != "Public" {
		t.Fatalf("visibility = %q", repo.Visibility)
	}
	if repo.StargazersCount != 1200 {
		t.Fatalf("stars = %d", repo.StargazersCount)
	}

	if cache.ttls["github:repo:alice/widgets"] != time.Hour {
		t.Fatalf("cache ttl = %v, want 1h", cache.ttls["github:repo:alice/widgets"])
	}

	// Second lookup must come from cache.
	svc.Get(context.Background(), "alice/widgets")
	if atomic.LoadInt64(&calls) != 1 {
		t.Fatalf("upstream calls = %d, want 1", calls)
	}
}

func TestGetErrorCardNotCached(t *testing.T) {
	var calls int64
	server := repoServer(t, &calls)
	defer server.Close()

	cache := newMapCache()
	svc := NewService(server.URL, cache)

	repo := svc.Get(context.Background(), "alice/missing")
	if !repo.Error {
		t.Fatal("expected error card for missing repo")
	}
	if repo.FullName != "alice/missing" {
		t.Fatalf("error card name = %q", repo.FullName)
	}
	if len(cache.data) != 0 {
		t.Fatal("error cards must not be cached")
	}

	// A retry hits upstream again.
	svc.Get(context.Background(), "alice/missing")
	if atomic.LoadInt64(&calls) != 2 {
		t.Fatalf("upstream calls = %d, want 2", calls)
	}
}

func TestGetDefaultsDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"full_name": "alice/quiet", "private": true}`))
	}))
	defer server.Close()

	svc := NewService(server.URL, newMapCache())
	repo := svc.Get(context.Background(), "alice/quiet")
	if repo.Description != "no description" {
		t.Fatalf("description = %q", repo.Description)
	}
	if repo.Visibility != "Private" {
		t.Fatalf("visibility = %q", repo.Visibility)
	}
}
