package notify

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

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "notifbadge"
	readPathSegment  = "read"
)

// Client calls the notification endpoints of the backend.
type Client struct {
	base      *url.URL
	path      string
	http      *http.Client
	timeout   time.Duration
	userAgent string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client. The client's own timeout
// is kept as is and WithTimeout is ignored.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithPath overrides the list endpoint path (default /api/notifications).
func WithPath(path string) ClientOption {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", baseURL)
	}

	c := &Client{
		base:      u,
		path:      DefaultPath,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// Endpoint returns the absolute URL of the list endpoint.
func (c *Client) Endpoint() string {
	return c.resolve(c.path)
}

// Fetch retrieves the pending notification list. Every failure is returned
// as a *FetchError.
func (c *Client) Fetch(ctx context.Context) (List, error) {
	endpoint := c.Endpoint()

	body, status, err := c.do(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Endpoint: endpoint, StatusCode: status, Err: err}
	}

	list, err := decodeList(body)
	if err != nil {
		return nil, &FetchError{Kind: KindDecode, Endpoint: endpoint, Err: err}
	}
	return list, nil
}

// MarkRead acknowledges a single notification so it drops out of the list.
func (c *Client) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("mark read: id is required")
	}

	endpoint := c.resolveEscaped(strings.TrimRight(c.path, "/")+"/"+readPathSegment+"/", id)

	body, status, err := c.do(ctx, http.MethodPost, endpoint)
	if err != nil {
		return &FetchError{Kind: KindTransport, Endpoint: endpoint, StatusCode: status, Err: err}
	}

	var ack struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		return &FetchError{Kind: KindDecode, Endpoint: endpoint, Err: err}
	}
	if !ack.Success {
		return fmt.Errorf("mark read %s: %w", id, ErrNotAcknowledged)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Str("endpoint", endpoint).Msg("notify: close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) resolve(path string) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawPath = ""
	return u.String()
}

// resolveEscaped appends segment to prefix as a single escaped path element.
func (c *Client) resolveEscaped(prefix, segment string) string {
	u := *c.base
	base := strings.TrimRight(u.Path, "/") + prefix
	u.Path = base + segment
	u.RawPath = base + url.PathEscape(segment)
	return u.String()
}

// decodeList accepts only a top-level JSON array. null, objects and scalars
// are rejected rather than read as an empty list.
func decodeList(body []byte) (List, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty body")
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("expected JSON array, got %s", describeJSON(trimmed))
	}

	var list List
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if list == nil {
		list = List{}
	}
	return list, nil
}

func describeJSON(b []byte) string {
	switch b[0] {
	case '{':
		return "object"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		if b[0] == '-' || (b[0] >= '0' && b[0] <= '9') {
			return "number"
		}
		return "invalid JSON"
	}
}
