package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	stdio "io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/io"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRetry sets how often a request is attempted, and the initial delay
// between attempts. Reads are retried when the host cannot be reached or
// answers with a 5xx status other than 503. Requests that change state are
// retried only when the connection could not be opened, so an action is
// never applied twice.
func WithRetry(attempts int, delay time.Duration) ClientOption {
	return func(c *Client) {
		c.attempts = attempts
		c.delay = delay
	}
}

// Client talks to a host served by [NewRouter].
type Client struct {
	base     string
	http     *http.Client
	attempts int
	delay    time.Duration
}

// NewClient creates a client for addr, which may be "host:port" or a full
// http URL.
func NewClient(addr string, opts ...ClientOption) *Client {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	c := &Client{
		base:     strings.TrimRight(addr, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		attempts: 3,
		delay:    200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health checks that the host is up.
func (c *Client) Health(ctx context.Context) error {
	var out map[string]string
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, &out); err != nil {
		return err
	}
	if out["status"] != "ok" {
		return errors.New(errors.ErrCodeTerminated, "host status %q", out["status"])
	}
	return nil
}

// Workspaces returns a snapshot of every workspace.
func (c *Client) Workspaces(ctx context.Context) (io.Snapshot, error) {
	var snap io.Snapshot
	err := c.request(ctx, http.MethodGet, "/workspaces", nil, func(r stdio.Reader) error {
		var err error
		snap, err = io.ReadJSON(r)
		return err
	})
	return snap, err
}

// Workspace returns a snapshot of one workspace.
func (c *Client) Workspace(ctx context.Context, name string) (io.Workspace, error) {
	var ws io.Workspace
	err := c.do(ctx, http.MethodGet, "/workspaces/"+url.PathEscape(name), nil, &ws)
	return ws, err
}

// Dispatch runs an action on a workspace and returns the workspace afterwards.
func (c *Client) Dispatch(ctx context.Context, workspace, action string, args []string) (io.Workspace, error) {
	var ws io.Workspace
	path := "/workspaces/" + url.PathEscape(workspace) + "/actions/" + url.PathEscape(action)
	err := c.do(ctx, http.MethodPost, path, ActionRequest{Args: args}, &ws)
	return ws, err
}

// NextLayout cycles a workspace's layout.
func (c *Client) NextLayout(ctx context.Context, workspace string) (io.Workspace, error) {
	var ws io.Workspace
	err := c.do(ctx, http.MethodPost, "/workspaces/"+url.PathEscape(workspace)+"/layouts/next", nil, &ws)
	return ws, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.request(ctx, method, path, body, func(r stdio.Reader) error {
		if err := json.NewDecoder(r).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	})
}

func (c *Client) request(ctx context.Context, method, path string, body any, decode func(stdio.Reader) error) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	idempotent := method == http.MethodGet || method == http.MethodHead

	return retry(ctx, c.attempts, c.delay, func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			err = fmt.Errorf("%s %s: %w", method, path, err)
			if idempotent || neverSent(err) {
				return &retryableError{err: err}
			}
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			err := decodeError(resp)
			if idempotent && resp.StatusCode >= 500 && resp.StatusCode != http.StatusServiceUnavailable {
				return &retryableError{err: err}
			}
			return err
		}
		return decode(resp.Body)
	})
}

// neverSent reports whether err happened while connecting, before any byte
// of the request reached the host.
func neverSent(err error) bool {
	var op *net.OpError
	return stderrors.As(err, &op) && op.Op == "dial"
}

func decodeError(resp *http.Response) error {
	var e ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
		return errors.New(errors.ErrCodeInternal, "unexpected status %s", resp.Status)
	}
	code := e.Code
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.New(code, "%s", e.Error)
}
