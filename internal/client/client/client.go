package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/pawsome/internal/client/models"
)

// Server endpoints, relative to the base URL.
const (
	PathSignup  = "/api/signup"
	PathLogin   = "/api/login"
	PathSession = "/api/session"
	PathLogout  = "/api/logout"
)

// maxReplyBytes bounds how much of a reply body is read.
const maxReplyBytes = 1 << 20

type Client interface {
	Signup(ctx context.Context, form url.Values) (*Reply, error)
	Login(ctx context.Context, form url.Values) (*Reply, error)
	Session(ctx context.Context) (*Reply, error)
	Logout(ctx context.Context) (*Reply, error)
}

// Reply is the envelope every account endpoint answers with.
type Reply struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`

	// Status is the HTTP status code; it is not part of the body.
	Status int `json:"-"`
}

// HTTPClient talks to the server over HTTP. The session cookie issued on
// login is kept in a jar for the lifetime of the value.
type HTTPClient struct {
	baseURL string
	httpDo  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpDo: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}, nil
}

func (c *HTTPClient) Signup(ctx context.Context, form url.Values) (*Reply, error) {
	return c.postForm(ctx, PathSignup, form)
}

func (c *HTTPClient) Login(ctx context.Context, form url.Values) (*Reply, error) {
	return c.postForm(ctx, PathLogin, form)
}

func (c *HTTPClient) Session(ctx context.Context) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathSession, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *HTTPClient) Logout(ctx context.Context) (*Reply, error) {
	return c.postForm(ctx, PathLogout, nil)
}

func (c *HTTPClient) postForm(ctx context.Context, path string, form url.Values) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) (*Reply, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out Reply
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: http %d: %v", ErrServerResponse, resp.StatusCode, err)
	}
	out.Status = resp.StatusCode
	return &out, nil
}
