package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DefaultTimeout = 30 * time.Second

// Config holds the transport settings read once at process start.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the underlying client, primarily for tests.
	HTTPClient *http.Client
}

// Client is the generic request executor underlying every backend
// operation. It knows nothing about domain shapes; it builds requests
// against the configured base URL, decorates them with the current
// bearer token, enforces the timeout, and classifies failures into
// *Error. The token is set and cleared exclusively by the session
// manager.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    timeout,
		httpClient: httpClient,
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// HasToken reports whether a bearer token is currently set.
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Token returns the currently held bearer token ("" when unset).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Get issues a GET request. params, when non-nil, is encoded into the
// query string via its url struct tags; zero-valued fields are omitted.
func (c *Client) Get(ctx context.Context, endpoint string, params any, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, params, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, body, out)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, endpoint, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil, nil)
}

// do executes a single request. Exactly one of {decoded response,
// timeout error} is observed: the per-request context aborts the
// in-flight call when the deadline fires.
func (c *Client) do(ctx context.Context, method, endpoint string, params any, body any, out any) error {
	url := c.baseURL + endpoint
	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return errors.Wrap(err, "[Client.do] encoding query parameters")
		}
		if encoded := values.Encode(); encoded != "" {
			url += "?" + encoded
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] encoding request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return errors.Wrap(err, "[Client.do] building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Debug().Str("method", method).Str("url", url).Dur("elapsed", time.Since(started)).Msg("request timed out")
			return newTimeoutError()
		}
		log.Debug().Err(err).Str("method", method).Str("url", url).Msg("request failed")
		return newNetworkError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError()
	}

	log.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload := map[string]any{}
		_ = json.Unmarshal(respBody, &payload)
		return NewError(resp.StatusCode, payload)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return newNetworkError()
	}
	return nil
}
