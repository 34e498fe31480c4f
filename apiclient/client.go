package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gemrock-store/repository"
)

// TokenSource supplies the bearer token attached to every request
type TokenSource interface {
	Token(ctx context.Context) string
}

// envelope is the response shape of the remote API
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Error is a failed API call
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Client calls the remote API under a single base URL
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New creates a Client. A nil TokenSource sends no Authorization header.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// BaseURL returns the API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches path and decodes the envelope data into out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON and decodes the envelope data into out
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Delete removes the resource at path
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("decode response of %s %s: %w", method, path, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Message: env.Message}
	}
	if !env.Success {
		return &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Message: firstNonEmpty(env.Message, "request unsuccessful")}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data of %s %s: %w", method, path, err)
	}
	return nil
}

// KeyResolver maps a request context to the session key whose token it forwards.
// ok is false when the request carries no session.
type KeyResolver func(ctx context.Context) (key string, ok bool)

// FixedKey resolves every context to the same session key
func FixedKey(key string) KeyResolver {
	return func(context.Context) (string, bool) { return key, true }
}

// SessionTokenSource reads the token of the persisted session record of the caller
type SessionTokenSource struct {
	store   repository.SessionRepositoryInterface
	resolve KeyResolver
}

// NewSessionTokenSource creates a TokenSource over the session store
func NewSessionTokenSource(store repository.SessionRepositoryInterface, resolve KeyResolver) *SessionTokenSource {
	return &SessionTokenSource{store: store, resolve: resolve}
}

// Token returns the stored token of the caller's session, or "" when signed out
func (s *SessionTokenSource) Token(ctx context.Context) string {
	key, ok := s.resolve(ctx)
	if !ok {
		return ""
	}
	record, err := s.store.Load(ctx, key)
	if err != nil {
		return ""
	}
	return record.Token
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
