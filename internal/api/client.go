// Package api is the typed client for the booking backend. All feature
// clients (auth, availability, bookings, payments, admin) are thin endpoint
// bindings over one request primitive; none of them retry.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"vedicjivan-booking/internal/pkg/errs"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type requestOptions struct {
	method string
	body   any
	token  string
}

// do performs one backend call. The bearer header is attached only when a
// token is supplied; for non-GET calls the body is JSON-encoded. A non-2xx
// response becomes an *Error carrying the backend's detail message.
func (c *Client) do(ctx context.Context, endpoint string, opts requestOptions, out any) error {
	method := opts.method
	if method == "" {
		method = http.MethodGet
	}

	var reqBody *bytes.Reader
	if opts.body != nil && method != http.MethodGet {
		encoded, err := json.Marshal(opts.body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "request to "+endpoint+" failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(endpoint, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response from "+endpoint)
	}
	return nil
}

func (c *Client) decodeError(endpoint string, resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}

	c.logger.Debug("backend rejected request",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"detail", apiErr.Detail,
	)
	return apiErr
}
