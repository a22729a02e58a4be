package vetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/luciano/vetconnect-go/pkg/errors"
)

// TokenSource supplies the bearer token for authenticated endpoints. An
// empty return means the request goes out unauthenticated.
type TokenSource func() string

// Client is the low-level JSON client shared by the real-backend adapters.
// Every failure it returns is an *apperrors.AppError carrying the fixed
// user-facing message for its class.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

// Option configures a Client
type Option func(*Client)

// WithTimeout overrides the default request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithConnectTimeout bounds connection establishment separately from the
// request timeout, which covers the whole exchange
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Client) {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.DialContext = (&net.Dialer{Timeout: d}).DialContext
		c.httpClient.Transport = transport
	}
}

// WithTokenSource attaches a bearer token supplier
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) {
		c.token = src
	}
}

// WithHTTPClient swaps the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client rooted at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE. The response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	endpoint := fmt.Sprintf("%s%s", c.baseURL, path)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewUnknownError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return apperrors.NewUnknownError(err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		mapped := apperrors.FromTransport(err)
		log.Debug().Err(err).Str("method", method).Str("path", path).
			Str("type", string(mapped.Type)).Msg("request failed")
		return mapped
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		mapped := apperrors.FromStatusCode(resp.StatusCode)
		log.Debug().Int("status", resp.StatusCode).Str("method", method).
			Str("path", path).Msg("request rejected")
		return mapped
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewUnknownError(err)
	}

	return nil
}
