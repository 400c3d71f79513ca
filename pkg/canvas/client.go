// Package canvas fetches document trees from the canvas REST API and
// parses pasted document links into keys.
package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shapesmith/shapesmith/pkg/cache"
	"github.com/shapesmith/shapesmith/pkg/errors"
	"github.com/shapesmith/shapesmith/pkg/httputil"
)

// DefaultBaseURL is the production canvas API endpoint.
const DefaultBaseURL = "https://api.shapesmith.dev"

// Client provides access to remote canvas documents.
// Responses are cached; transient failures are retried with backoff.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
	cache      cache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Useful for tests and
// self-hosted deployments.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithCache attaches a response cache. Without it the client uses a
// null cache and every call hits the network.
func WithCache(store cache.Cache) Option {
	return func(c *Client) { c.cache = store }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a canvas API client with the given access token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		cache:      cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FileOptions narrow a document fetch. The zero value fetches the full
// current document.
type FileOptions struct {
	// Version pins the fetch to a specific document version.
	Version string

	// IDs restricts the response to the listed node ids and their
	// subtrees.
	IDs []string

	// Depth limits tree traversal; 0 means unlimited.
	Depth int

	// Geometry set to "paths" includes vector geometry in the response.
	Geometry string

	// PluginData lists plugin ids whose data should be included.
	PluginData []string

	// BranchData includes branch metadata in the response.
	BranchData bool
}

func (o FileOptions) query() url.Values {
	q := url.Values{}
	if o.Version != "" {
		q.Set("version", o.Version)
	}
	if len(o.IDs) > 0 {
		q.Set("ids", strings.Join(o.IDs, ","))
	}
	if o.Depth > 0 {
		q.Set("depth", strconv.Itoa(o.Depth))
	}
	if o.Geometry != "" {
		q.Set("geometry", o.Geometry)
	}
	if len(o.PluginData) > 0 {
		q.Set("plugin_data", strings.Join(o.PluginData, ","))
	}
	if o.BranchData {
		q.Set("branch_data", "true")
	}
	return q
}

// File fetches the document tree for the given key.
func (c *Client) File(ctx context.Context, key string, opts FileOptions) (*File, error) {
	reqURL := c.baseURL + "/v1/files/" + url.PathEscape(key)
	if q := opts.query(); len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	cacheKey := cache.Key("file", reqURL, c.token)
	if data, hit, err := c.cache.Get(ctx, cacheKey); err == nil && hit {
		var file File
		if err := json.Unmarshal(data, &file); err == nil {
			return &file, nil
		}
	}

	data, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode document response")
	}

	_ = c.cache.Set(ctx, cacheKey, data, cache.TTLDocument)
	return &file, nil
}

// get performs an authenticated GET with retry for transient failures.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	var data []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("X-Api-Token", c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: fmt.Errorf("send request: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			apiErr := apiError(resp.StatusCode, body)
			if httputil.IsTransientStatus(resp.StatusCode) {
				return &httputil.RetryableError{Err: apiErr}
			}
			return apiErr
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return &httputil.RetryableError{Err: fmt.Errorf("read response: %w", err)}
		}
		return nil
	})
	return data, err
}

func apiError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	code := errors.ErrCodeNetwork
	switch status {
	case http.StatusUnauthorized:
		code = errors.ErrCodeUnauthorized
	case http.StatusForbidden:
		code = errors.ErrCodeForbidden
	case http.StatusNotFound:
		code = errors.ErrCodeDocumentNotFound
	case http.StatusTooManyRequests:
		code = errors.ErrCodeRateLimited
	}
	return errors.New(code, "canvas API error (%d): %s", status, msg)
}
