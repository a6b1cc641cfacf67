// Package gateway wraps every HTTP call to the mood-journal backend. It
// attaches bearer credentials when they exist, normalizes error shapes, and
// keeps wire types out of the rest of the client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tableflip.dev/moodcal/pkg/record"
)

const maxBody = 2 * 1024 * 1024 // 2MB

// TokenSource is the slice of the credential store the gateway needs.
type TokenSource interface {
	Access() string
	SetTokens(access, refresh string) error
	SetUserID(id string) error
	Clear() error
}

// Client talks to the backend. Base is the server root without a trailing
// slash, e.g. http://127.0.0.1:8000.
type Client struct {
	HTTPClient *http.Client
	Base       string
	Tokens     TokenSource
}

func New(base string, tokens TokenSource) *Client {
	return &Client{Base: strings.TrimRight(base, "/"), Tokens: tokens}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// response is a successful (2xx) reply. Endpoints without a JSON guarantee
// may answer with plain text; callers decode only when the content type says
// JSON and otherwise take the raw text.
type response struct {
	status      int
	contentType string
	body        []byte
}

func (r *response) isJSON() bool {
	return strings.Contains(r.contentType, "application/json")
}

func (r *response) decode(v interface{}) error {
	if !r.isJSON() {
		return fmt.Errorf("gateway: expected JSON response, got %q", r.contentType)
	}
	return json.Unmarshal(r.body, v)
}

func (r *response) text() string {
	return string(r.body)
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, auth bool) (*response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("gateway: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		if tok := c.Tokens.Access(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkUnreachable, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rf := &RequestFailed{Status: resp.StatusCode, Payload: map[string]interface{}{}}
		_ = json.Unmarshal(data, &rf.Payload)
		return nil, rf
	}

	return &response{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        data,
	}, nil
}

// CheckLiveness probes backend reachability. Any HTTP answer, including an
// error status, means the server is alive; only a transport failure reads as
// down. It never returns an error.
func (c *Client) CheckLiveness(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/users/", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
	return true
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/users/register/", req, false)
	return err
}

// LoginResponse is the token grant shared by password login and the
// third-party code exchange.
type LoginResponse struct {
	Msg     string      `json:"msg"`
	UserID  json.Number `json:"user_id"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
}

// Login exchanges credentials for tokens and persists them. This is the only
// gateway call with a side effect beyond the request itself.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/users/login/", map[string]string{
		"username": username,
		"password": password,
	}, false)
	if err != nil {
		return nil, err
	}
	out := &LoginResponse{}
	if err := resp.decode(out); err != nil {
		return nil, err
	}
	if err := c.storeGrant(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExchangeKakaoCode completes the third-party callback: the provider code is
// traded for the same token grant a password login yields, and the grant is
// persisted the same way.
func (c *Client) ExchangeKakaoCode(ctx context.Context, code string) (*LoginResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/kakao/callback/?code="+code, nil, false)
	if err != nil {
		return nil, err
	}
	out := &LoginResponse{}
	if err := resp.decode(out); err != nil {
		return nil, err
	}
	if out.Access == "" {
		return nil, &RequestFailed{Status: resp.status, Payload: map[string]interface{}{"detail": "kakao login failed"}}
	}
	if err := c.storeGrant(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) storeGrant(grant *LoginResponse) error {
	if err := c.Tokens.SetTokens(grant.Access, grant.Refresh); err != nil {
		return err
	}
	if grant.UserID.String() != "" {
		return c.Tokens.SetUserID(grant.UserID.String())
	}
	return nil
}

// KakaoLoginURL is where the browser must be sent to start the third-party
// flow. The provider redirects back carrying the token triple as query
// parameters.
func (c *Client) KakaoLoginURL() string {
	return c.Base + "/users/kakao/login/"
}

// Logout drops the local session. There is no server call to invalidate the
// tokens; the backend contract has none.
func (c *Client) Logout() error {
	return c.Tokens.Clear()
}

// ListEmotions fetches every record for the authenticated user. A non-JSON
// answer is treated as an empty history rather than an error.
func (c *Client) ListEmotions(ctx context.Context) ([]*record.Record, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/emotions/", nil, true)
	if err != nil {
		return nil, err
	}
	if !resp.isJSON() {
		return nil, nil
	}
	var out []*record.Record
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveEmotion upserts the record for its date and returns the canonical
// record the backend stored. When the backend answers with something other
// than JSON the submitted record stands in for the canonical one.
func (c *Client) SaveEmotion(ctx context.Context, r record.Record) (*record.Record, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/emotions/save/", map[string]interface{}{
		"date":    r.Date,
		"emotion": r.Emotion,
		"memo":    r.Memo,
		"sports":  r.Sports,
	}, true)
	if err != nil {
		return nil, err
	}
	if !resp.isJSON() {
		saved := r
		return &saved, nil
	}
	saved := &record.Record{}
	if err := resp.decode(saved); err != nil {
		return nil, err
	}
	if saved.Date == "" {
		saved.Date = r.Date
	}
	return saved, nil
}

// CalendarMonth fetches the backend's month view: day-of-month (as a string)
// to record.
func (c *Client) CalendarMonth(ctx context.Context, year, month int) (map[string]*record.Record, error) {
	path := fmt.Sprintf("/api/emotions/calendar/%d/%d/", year, month)
	resp, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	if !resp.isJSON() {
		return map[string]*record.Record{}, nil
	}
	var out struct {
		Emotions map[string]*record.Record `json:"emotions"`
	}
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	if out.Emotions == nil {
		out.Emotions = map[string]*record.Record{}
	}
	return out.Emotions, nil
}
