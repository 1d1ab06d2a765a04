// Package adminclient is an HTTP client for the admin REST API.
// It attaches the stored bearer token to every request and, when the API rejects an
// expired access token, runs a single refresh exchange shared by all concurrent callers
// before replaying their requests.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/craneintel/crane-intelligence/internal/api/rest/v1/stub"

	"golang.org/x/sync/singleflight"
)

const (
	basePath     = "/api/v1"
	loginPath    = "/admin/auth/login"
	logoutPath   = "/admin/auth/logout"
	refreshPath  = "/admin/auth/refresh"
	refreshKey   = "refresh"
	maxErrorBody = 1 << 16
)

// sessionPaths issue or end a session; a 401 from them is final
var sessionPaths = map[string]bool{
	loginPath:   true,
	logoutPath:  true,
	refreshPath: true,
}

// Client talks to the admin API of one deployment
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           TokenStore
	onSessionExpired func()
	refreshGroup     singleflight.Group
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTokenStore sets where tokens are kept; the default is in memory
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) {
		c.tokens = store
	}
}

// WithSessionExpiredHook registers fn to run once per failed refresh, after the store is cleared
func WithSessionExpiredHook(fn func()) Option {
	return func(c *Client) {
		c.onSessionExpired = fn
	}
}

// New creates a Client for the deployment at baseURL, e.g. https://api.craneintel.com
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + basePath,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: NewMemoryTokenStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tokens returns the store the client reads credentials from
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// Login exchanges credentials for a token pair and stores it
func (c *Client) Login(ctx context.Context, email, password string) (*stub.LoginResponse, error) {
	var response stub.LoginResponse
	err := c.doUnauthenticated(ctx, http.MethodPost, loginPath, stub.LoginRequest{Email: email, Password: password}, &response)
	if err != nil {
		return nil, err
	}

	if err := c.tokens.Save(Tokens{AccessToken: response.AccessToken, RefreshToken: response.RefreshToken}); err != nil {
		return nil, err
	}
	return &response, nil
}

// Logout revokes the stored refresh token and clears the store. The store is cleared even when the API call fails.
func (c *Client) Logout(ctx context.Context) error {
	tokens, err := c.tokens.Load()
	if err != nil {
		return err
	}

	var apiErr error
	if tokens.RefreshToken != "" {
		apiErr = c.doUnauthenticated(ctx, http.MethodPost, logoutPath, stub.RefreshRequest{RefreshToken: tokens.RefreshToken}, nil)
	}
	return errors.Join(apiErr, c.tokens.Clear())
}

func (c *Client) doUnauthenticated(ctx context.Context, method, path string, body, out interface{}) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, payload, "")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeResponse(resp, out)
}

// do sends an authenticated request. A 401 from any endpoint but login, logout and refresh triggers one shared
// refresh and a single replay of the request with the new access token.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}

	tokens, err := c.tokens.Load()
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, payload, tokens.AccessToken)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && tokens.RefreshToken != "" && !sessionPaths[path] {
		drain(resp)

		accessToken, err := c.refresh(ctx, tokens.AccessToken)
		if err != nil {
			return err
		}

		resp, err = c.send(ctx, method, path, payload, accessToken)
		if err != nil {
			return err
		}
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeResponse(resp, out)
}

// refresh returns a usable access token. rejected is the token the API just refused.
func (c *Client) refresh(ctx context.Context, rejected string) (string, error) {
	current, err := c.tokens.Load()
	if err != nil {
		return "", err
	}
	if current.AccessToken != "" && current.AccessToken != rejected {
		return current.AccessToken, nil
	}
	if current.RefreshToken == "" {
		return "", ErrSessionExpired
	}

	result := c.refreshGroup.DoChan(refreshKey, func() (interface{}, error) {
		// A flight that finished just before this one may already have rotated or cleared the session.
		latest, err := c.tokens.Load()
		if err != nil {
			return nil, err
		}
		if latest.RefreshToken == "" {
			return nil, ErrSessionExpired
		}
		if latest.AccessToken != "" && latest.AccessToken != rejected {
			return latest.AccessToken, nil
		}

		// The exchange outlives any single caller's cancellation.
		exchangeCtx := context.WithoutCancel(ctx)

		var response stub.TokenResponse
		err = c.doUnauthenticated(exchangeCtx, http.MethodPost, refreshPath, stub.RefreshRequest{RefreshToken: latest.RefreshToken}, &response)
		if err != nil {
			c.expire()
			return nil, fmt.Errorf("%w: %w", ErrSessionExpired, err)
		}

		if err := c.tokens.Save(Tokens{AccessToken: response.AccessToken, RefreshToken: response.RefreshToken}); err != nil {
			return nil, err
		}
		return response.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (c *Client) expire() {
	_ = c.tokens.Clear()
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, accessToken string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	return resp, nil
}

func encodeBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return payload, nil
}

func decodeResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    genericMessage(resp.StatusCode),
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body stub.ErrorResponse
	if json.Unmarshal(data, &body) == nil {
		apiErr.ServerMessage = body.Message
	}
	return apiErr
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
