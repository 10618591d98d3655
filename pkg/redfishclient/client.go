// Package redfishclient performs Redfish resource access over HTTP.
package redfishclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

const maxErrorBody = 512

// HTTPError is returned for every non-2xx response.
type HTTPError struct {
	URI        string
	Method     string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	body := string(e.Body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return fmt.Sprintf("redfishclient - %s %s: status %d: %s", e.Method, e.URI, e.StatusCode, strings.TrimSpace(body))
}

// Response -.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ETag returns the ETag response header.
func (r *Response) ETag() string {
	return r.Header.Get("ETag")
}

// Location returns the path of the Location response header.
func (r *Response) Location() string {
	loc := r.Header.Get("Location")
	if loc == "" {
		return ""
	}

	u, err := url.Parse(loc)
	if err != nil || u.Host == "" {
		return loc
	}

	return u.RequestURI()
}

// Client -.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	log      logger.Interface
}

// Option -.
type Option func(*Client)

// WithBasicAuth -.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithInsecureSkipVerify disables BMC certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		if t, ok := c.http.Transport.(*http.Transport); ok {
			if t.TLSClientConfig == nil {
				t.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
			}

			t.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // BMCs commonly ship self-signed certificates
		}
	}
}

// WithHTTPClient replaces the pooled client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New creates a client for the service rooted at baseURL. Requests carry no
// timeout of their own; callers bound them through the context.
func New(baseURL string, log logger.Interface, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    cleanhttp.DefaultPooledClient(),
		log:     log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get -.
func (c *Client) Get(ctx context.Context, uri string) (*Response, error) {
	return c.do(ctx, http.MethodGet, uri, nil)
}

// Post -.
func (c *Client) Post(ctx context.Context, uri string, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPost, uri, body)
}

// Put -.
func (c *Client) Put(ctx context.Context, uri string, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPut, uri, body)
}

// Patch -.
func (c *Client) Patch(ctx context.Context, uri string, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPatch, uri, body)
}

// Delete -.
func (c *Client) Delete(ctx context.Context, uri string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, uri, nil)
}

func (c *Client) resolve(uri string) string {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return uri
	}

	return c.baseURL + "/" + strings.TrimPrefix(uri, "/")
}

func (c *Client) do(ctx context.Context, method, uri string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(uri), reader)
	if err != nil {
		return nil, fmt.Errorf("redfishclient - %s %s: %w", method, uri, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("OData-Version", "4.0")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("redfishclient - %s %s: %w", method, uri, err)
	}

	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("redfishclient - %s %s: read body: %w", method, uri, err)
	}

	c.log.Debug("redfishclient - %s %s: %d", method, uri, resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{URI: uri, Method: method, StatusCode: resp.StatusCode, Body: payload}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: payload}, nil
}
