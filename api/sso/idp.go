package sso

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/qmshan/blogapi/shared/apperr"
)

// IdentityPayload is the identity provider's code-exchange response:
// the hash challenge plus the user profile it vouches for.
type IdentityPayload struct {
	Msg      string
	Username string
	SSOID    string
	Email    string
	Raw      []byte
}

// IdPClient exchanges one-time codes with the identity provider.
type IdPClient struct {
	client *http.Client
	apiURL string
}

func NewIdPClient(apiURL string) *IdPClient {
	return &IdPClient{
		client: &http.Client{},
		apiURL: apiURL,
	}
}

// Exchange resolves an opaque login code into the identity payload.
// A non-OK upstream status is passed through with its message.
func (c *IdPClient) Exchange(code string) (*IdentityPayload, error) {
	req, err := http.NewRequest(http.MethodGet, c.apiURL+code, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sso request: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("sso verification failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("failed to read sso response: %v", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.UpstreamWithStatus(resp.StatusCode,
			fmt.Sprintf("sso verification failed: %s", upstreamMessage(resp, body)))
	}

	payload := &IdentityPayload{Raw: body}

	fields, err := decodeFields(body)
	if err != nil {
		return nil, apperr.New(apperr.Upstream, fmt.Sprintf("invalid sso response: %v", err))
	}
	if msg, ok := fields["msg"].(string); ok {
		payload.Msg = msg
	}
	payload.Username, payload.SSOID, payload.Email = profileFields(fields)

	return payload, nil
}

// ParseProfile extracts the user profile from a stored identity payload.
func ParseProfile(raw []byte) (username, ssoID, email string, err error) {
	fields, err := decodeFields(raw)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid stored user data: %v", err)
	}
	username, ssoID, email = profileFields(fields)
	return username, ssoID, email, nil
}

func decodeFields(raw []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	// Keep numeric ids exact instead of float64.
	dec.UseNumber()
	fields := map[string]interface{}{}
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func profileFields(fields map[string]interface{}) (username, ssoID, email string) {
	username = "unknown"
	if v, ok := fields["username"].(string); ok && v != "" {
		username = v
	}
	switch v := fields["id"].(type) {
	case json.Number:
		ssoID = v.String()
	case string:
		ssoID = v
	}
	if v, ok := fields["email"].(string); ok {
		email = v
	}
	return username, ssoID, email
}

func upstreamMessage(resp *http.Response, body []byte) string {
	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err == nil {
			if msg, ok := payload["message"].(string); ok && msg != "" {
				return msg
			}
			if msg, ok := payload["error"].(string); ok && msg != "" {
				return msg
			}
		}
		return string(body)
	}
	if len(body) > 0 {
		return string(body)
	}
	return resp.Status
}
