package drive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/qmshan/blogapi/shared/apperr"
)

// Client talks to the enterprise IM vendor's drive API.
type Client struct {
	client     *http.Client
	baseURL    string
	corpID     string
	corpSecret string
}

func NewClient(baseURL, corpID, corpSecret string) *Client {
	return &Client{
		client:     &http.Client{},
		baseURL:    baseURL,
		corpID:     corpID,
		corpSecret: corpSecret,
	}
}

type tokenResponse struct {
	ErrCode     int    `json:"errcode"`
	ErrMsg      string `json:"errmsg"`
	AccessToken string `json:"access_token"`
}

// accessToken exchanges the corp credentials for an app access token.
// Fetched per call, not cached.
func (c *Client) accessToken() (string, error) {
	endpoint := fmt.Sprintf("%s/cgi-bin/gettoken?corpid=%s&corpsecret=%s",
		c.baseURL, url.QueryEscape(c.corpID), url.QueryEscape(c.corpSecret))

	resp, err := c.client.Get(endpoint)
	if err != nil {
		return "", apperr.New(apperr.Upstream, fmt.Sprintf("failed to get access token: %v", err))
	}
	defer resp.Body.Close()

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", apperr.New(apperr.Upstream, fmt.Sprintf("invalid access token response: %v", err))
	}
	if token.ErrCode != 0 {
		return "", apperr.New(apperr.Upstream, fmt.Sprintf("failed to get access token: %s", token.ErrMsg))
	}
	return token.AccessToken, nil
}

// ListRequest is the file-list call forwarded to the vendor API.
type ListRequest struct {
	SpaceID  string `json:"spaceid"`
	FatherID string `json:"fatherid"`
	SortType int    `json:"sort_type"`
	Start    int    `json:"start"`
	Limit    int    `json:"limit"`
}

// ListFiles forwards a file-list request and returns the vendor JSON
// verbatim, errcode included.
func (c *Client) ListFiles(req ListRequest) (map[string]interface{}, error) {
	return c.post("/cgi-bin/wedrive/file_list", req)
}

// DownloadURL asks the vendor for a download link for fileID.
func (c *Client) DownloadURL(fileID string) (map[string]interface{}, error) {
	return c.post("/cgi-bin/wedrive/file_download", map[string]string{"fileid": fileID})
}

func (c *Client) post(path string, payload interface{}) (map[string]interface{}, error) {
	accessToken, err := c.accessToken()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode drive request: %v", err)
	}

	endpoint := fmt.Sprintf("%s%s?access_token=%s", c.baseURL, path, url.QueryEscape(accessToken))
	resp, err := c.client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("drive request failed: %v", err))
	}
	defer resp.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("invalid drive response: %v", err))
	}
	return data, nil
}
