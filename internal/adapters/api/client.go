package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
)

// APIError is a non-2xx response from the onboarding API
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("%s %s: unexpected status code: %d, body: %s", e.Method, e.Path, e.Status, body)
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to the Nova onboarding API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      usecase.ResponseCache
	ttl        time.Duration
	auth       usecase.AuthInspector
	log        *slog.Logger
}

// NewClient creates a new API client from the runtime configuration
func NewClient(cfg *config.RuntimeConfig, cache usecase.ResponseCache, auth usecase.AuthInspector, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		token:   cfg.AuthToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
		ttl:   cfg.CacheTTL,
		auth:  auth,
		log:   log.With("component", "APIClient"),
	}
}

// requireAuth checks that a usable bearer token is configured
func (c *Client) requireAuth() error {
	if c.token == "" {
		return domain.ErrAuthRequired
	}
	session, err := c.auth.Inspect(c.token)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAuthRequired, err)
	}
	if session.Expired {
		return fmt.Errorf("%w at %s", domain.ErrAuthExpired, session.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}

// do sends a request and decodes a JSON response into out when out is non-nil
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	c.log.Debug("api request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Method: method, Path: path, Status: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// getCached serves a GET from the response cache, filling it on a miss
func (c *Client) getCached(ctx context.Context, path string, query url.Values, out any, tags ...string) error {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	if data, ok, err := c.cache.Get(ctx, key); err != nil {
		c.log.Warn("response cache read failed", "key", key, "error", err)
	} else if ok {
		if err := json.Unmarshal(data, out); err == nil {
			c.log.Debug("response cache hit", "key", key)
			return nil
		}
	}

	data, err := c.doRaw(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if err := c.cache.Set(ctx, key, data, c.ttl, tags...); err != nil {
		c.log.Warn("response cache write failed", "key", key, "error", err)
	}
	return nil
}

// invalidate drops cached responses for tag; failures only cost a stale read
func (c *Client) invalidate(ctx context.Context, tag string) {
	if err := c.cache.InvalidateTag(ctx, tag); err != nil {
		c.log.Warn("response cache invalidation failed", "tag", tag, "error", err)
	}
}
