package pexels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	_ "golang.org/x/image/webp"
)

// Searcher runs one photo search. Implemented by *Client and by test fakes.
type Searcher interface {
	Search(ctx context.Context, query string, perPage int) Result
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Client talks to the Pexels search API.
type Client struct {
	endpoint  *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
	logger    *slog.Logger
}

const (
	// DefaultEndpoint is the Pexels v1 search endpoint.
	DefaultEndpoint  = "https://api.pexels.com/v1/search"
	defaultUserAgent = "shutter/0.1"
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. The default has no timeout of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client for the given endpoint and static API key.
func NewClient(endpoint, apiKey string, opts ...Option) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  u,
		apiKey:    strings.TrimSpace(apiKey),
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search issues a single request for query and shapes the response. Failures
// are logged and reported as KindFailed; nothing is retried.
func (c *Client) Search(ctx context.Context, query string, perPage int) Result {
	if c == nil {
		return failed(errors.New("client is nil"))
	}
	if strings.TrimSpace(query) == "" {
		return failed(errors.New("query is empty"))
	}

	values := url.Values{}
	values.Set("query", query)
	values.Set("per_page", strconv.Itoa(perPage))
	reqURL := *c.endpoint
	reqURL.RawQuery = values.Encode()

	var payload SearchResponse
	if err := c.getJSON(ctx, reqURL.String(), &payload); err != nil {
		c.logger.Error("photo search failed", "query", query, "per_page", perPage, "error", err)
		return failed(err)
	}
	if len(payload.Photos) == 0 {
		c.logger.Info("photo search returned no matches", "query", query)
		return Result{Kind: KindEmpty, Message: NoPhotosMessage(query)}
	}
	c.logger.Debug("photo search complete", "query", query, "photos", len(payload.Photos))
	return Result{Kind: KindPhotos, Photos: payload.Photos}
}

// FetchImage downloads and decodes a JPEG, PNG or WebP image.
func (c *Client) FetchImage(ctx context.Context, rawURL string) (image.Image, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	resp, err := c.get(ctx, rawURL, "image/*", false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dest any) error {
	resp, err := c.get(ctx, rawURL, "application/json", true)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// get performs a GET and rejects error statuses. The API key is only sent
// when authorized is set; asset URLs come from response bodies and may point
// at any host. The caller closes the body.
func (c *Client) get(ctx context.Context, rawURL, accept string, authorized bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)
	if authorized && c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	if resp.StatusCode >= 400 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("api %s returned status %d", req.URL.Path, resp.StatusCode)
	}
	return resp, nil
}

func failed(err error) Result {
	return Result{Kind: KindFailed, Message: GenericErrorMessage, Err: err}
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", endpoint, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
