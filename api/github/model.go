package github

import (
	"time"
)

// Repo is the repository card payload: the subset of the public code
// hosting API the frontend renders.
type Repo struct {
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	Visibility      string    `json:"visibility"`
	Language        string    `json:"language,omitempty"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	UpdatedAt       time.Time `json:"updated_at"`
	HTMLURL         string    `json:"html_url,omitempty"`
	Error           bool      `json:"error"`
}
