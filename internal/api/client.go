package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty string means no Authorization header is sent. The session
// layer implements this; tests can inject a fixed token.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed token value.
type StaticToken string

// Token returns the static value.
func (t StaticToken) Token() string { return string(t) }

// Client talks to the FrotaOps HTTP API. Every request carries the
// current session's bearer token (when one exists) and an X-Request-ID
// correlation header. The client never retries; callers own retry and
// notification policy.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	tokens    TokenSource
}

const (
	defaultUserAgent = "frotactl/0.1"
	requestTimeout   = 15 * time.Second
)

// NewClient builds a Client for the given base URL, e.g.
// "http://localhost:8000" or "https://api.frotaops.com". Cookies are
// kept across requests to match the browser client's credential mode.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init cookie jar: %w", err)
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// SetTokenSource binds the session that signs outgoing requests.
// Passing nil detaches authentication entirely.
func (c *Client) SetTokenSource(src TokenSource) {
	c.tokens = src
}

// Get issues a GET request and decodes the JSON response into dest.
func (c *Client) Get(ctx context.Context, path string, query url.Values, dest any) error {
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	return c.do(ctx, http.MethodGet, rel, "", nil, dest)
}

// Post sends body as JSON and decodes the response into dest. Both body
// and dest may be nil.
func (c *Client) Post(ctx context.Context, path string, body, dest any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, dest)
}

// Put sends body as JSON via PUT and decodes the response into dest.
func (c *Client) Put(ctx context.Context, path string, body, dest any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, dest)
}

// Patch sends body as JSON via PATCH and decodes the response into dest.
func (c *Client) Patch(ctx context.Context, path string, body, dest any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, body, dest)
}

// Delete issues a DELETE request. The response body is discarded unless
// dest is non-nil.
func (c *Client) Delete(ctx context.Context, path string) error {
	rel := &url.URL{Path: path}
	return c.do(ctx, http.MethodDelete, rel, "", nil, nil)
}

// PostForm sends values form-encoded, the shape the login endpoint
// expects, and decodes the JSON response into dest.
func (c *Client) PostForm(ctx context.Context, path string, values url.Values, dest any) error {
	rel := &url.URL{Path: path}
	body := strings.NewReader(values.Encode())
	return c.do(ctx, http.MethodPost, rel, "application/x-www-form-urlencoded", body, dest)
}

// FilePart is a binary field of a multipart request.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

// SendMultipart issues a POST or PUT whose body is multipart form data:
// scalar fields stringified alongside any binary parts. Used by the
// document and part containers for photo/invoice/receipt uploads.
func (c *Client) SendMultipart(ctx context.Context, method, path string, fields map[string]string, files []FilePart, dest any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write field %q: %w", key, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("create form file %q: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("copy form file %q: %w", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}
	rel := &url.URL{Path: path}
	return c.do(ctx, method, rel, writer.FormDataContentType(), &buf, dest)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, rel, "application/json", reader, dest)
}

func (c *Client) do(ctx context.Context, method string, rel *url.URL, contentType string, body io.Reader, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeError(rel.Path, resp)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
