package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/qmshan/blogapi/shared/zaplogger"
)

// cacheTTL bounds how long a repo card is served without a refetch.
const cacheTTL = time.Hour

const noDescription = "no description"

type Service struct {
	client *http.Client
	apiURL string
	cache  Cache
}

func NewService(apiURL string, cache Cache) *Service {
	return &Service{
		client: &http.Client{},
		apiURL: apiURL,
		cache:  cache,
	}
}

// upstreamRepo is the slice of the code-hosting API response we keep.
type upstreamRepo struct {
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	Private         bool      `json:"private"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at"`
	HTMLURL         string    `json:"html_url"`
}

// Get returns the card for repoPath, served from cache when fresh.
// An upstream failure yields a placeholder error card, not an error:
// the frontend renders the placeholder in place of the repo box.
func (s *Service) Get(ctx context.Context, repoPath string) *Repo {
	key := "github:repo:" + repoPath

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var repo Repo
		if err := json.Unmarshal([]byte(cached), &repo); err == nil {
			return &repo
		}
	}

	repo, err := s.fetch(repoPath)
	if err != nil {
		zaplogger.Warn("failed to fetch repo metadata", zaplogger.Fields{
			"repo":  repoPath,
			"error": err.Error(),
		})
		return errorCard(repoPath)
	}

	// Only successful lookups are cached; failures get retried.
	if encoded, err := json.Marshal(repo); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), cacheTTL); err != nil {
			zaplogger.Warn("failed to cache repo metadata", zaplogger.Fields{
				"repo":  repoPath,
				"error": err.Error(),
			})
		}
	}

	return repo
}

func (s *Service) fetch(repoPath string) (*Repo, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/repos/%s", s.apiURL, repoPath), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "blogapi")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var upstream upstreamRepo
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, err
	}

	visibility := "Public"
	if upstream.Private {
		visibility = "Private"
	}
	description := upstream.Description
	if description == "" {
		description = noDescription
	}

	return &Repo{
		FullName:        upstream.FullName,
		Description:     description,
		Visibility:      visibility,
		Language:        upstream.Language,
		StargazersCount: upstream.StargazersCount,
		ForksCount:      upstream.ForksCount,
		UpdatedAt:       upstream.UpdatedAt,
		HTMLURL:         upstream.HTMLURL,
	}, nil
}

func errorCard(repoPath string) *Repo {
	return &Repo{
		FullName:    repoPath,
		Description: "failed to load repository info",
		Visibility:  "Unknown",
		UpdatedAt:   time.Now(),
		Error:       true,
	}
}
