package drive

import (
	"net/url"

	"github.com/qmshan/blogapi/api/user"
	"github.com/qmshan/blogapi/shared/apperr"
	"github.com/qmshan/blogapi/shared/zaplogger"
)

const (
	defaultSortType = 1
	defaultLimit    = 100
)

// VendorClient is the drive API surface the service needs.
type VendorClient interface {
	ListFiles(req ListRequest) (map[string]interface{}, error)
	DownloadURL(fileID string) (map[string]interface{}, error)
}

type Service struct {
	client    VendorClient
	spaceID   string
	proxyHost string
}

func NewService(client VendorClient, spaceID, proxyHost string) *Service {
	return &Service{client: client, spaceID: spaceID, proxyHost: proxyHost}
}

// List forwards a file-list request under the server-held space id and
// merges the verified caller into the vendor response.
func (s *Service) List(req ListRequest, caller *user.AuthUser) (map[string]interface{}, error) {
	req.SpaceID = s.spaceID
	if req.FatherID == "" {
		req.FatherID = s.spaceID
	}
	if req.SortType == 0 {
		req.SortType = defaultSortType
	}
	if req.Limit == 0 {
		req.Limit = defaultLimit
	}

	data, err := s.client.ListFiles(req)
	if err != nil {
		return nil, err
	}
	return withCaller(data, caller), nil
}

// Download resolves a download URL for fileID and rewrites its host to
// the operator-controlled proxy domain.
func (s *Service) Download(fileID string, caller *user.AuthUser) (map[string]interface{}, error) {
	if fileID == "" {
		return nil, apperr.New(apperr.Validation, "missing fileid parameter")
	}

	data, err := s.client.DownloadURL(fileID)
	if err != nil {
		return nil, err
	}

	if errcode, ok := data["errcode"].(float64); ok && errcode == 0 {
		if downloadURL, ok := data["download_url"].(string); ok && downloadURL != "" {
			data["download_url"] = s.rewriteDownloadHost(downloadURL)
		}
	}
	return withCaller(data, caller), nil
}

// rewriteDownloadHost swaps scheme and host for the proxy domain,
// preserving path and query. An unparsable URL passes through as-is.
func (s *Service) rewriteDownloadHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		zaplogger.Warn("failed to rewrite download url", zaplogger.Fields{
			"url":   raw,
			"error": err.Error(),
		})
		return raw
	}
	u.Scheme = "https"
	u.Host = s.proxyHost
	return u.String()
}

func withCaller(data map[string]interface{}, caller *user.AuthUser) map[string]interface{} {
	data["user"] = caller
	data["logged_in"] = true
	return data
}
