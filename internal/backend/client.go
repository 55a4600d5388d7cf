package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sentagsite/internal/config"
)

const authHeader = "X-Authorization"

// Error is what every remote-call failure collapses into: a transport
// error, a non-2xx status or an unparseable body. Status is zero when the
// request never produced a response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Client talks to the remote serverless functions. Every call is bounded
// by the client timeout and honors the caller context, so a torn-down
// intake session cancels its in-flight request.
type Client struct {
	http *http.Client
	urls config.BackendURLs
}

func NewClient(urls config.BackendURLs, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		urls: urls,
	}
}

func (c *Client) postJSON(ctx context.Context, url, token string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	return c.do(ctx, http.MethodPost, url, token, bytes.NewReader(payload), "application/json", out)
}

func (c *Client) putJSON(ctx context.Context, url, token string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	return c.do(ctx, http.MethodPut, url, token, bytes.NewReader(payload), "application/json", out)
}

func (c *Client) getJSON(ctx context.Context, url, token string, out any) error {
	return c.do(ctx, http.MethodGet, url, token, nil, "", out)
}

func (c *Client) deleteJSON(ctx context.Context, url, token string, out any) error {
	return c.do(ctx, http.MethodDelete, url, token, nil, "", out)
}

func (c *Client) do(ctx context.Context, method, url, token string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(authHeader, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Status: resp.StatusCode, Message: remoteMessage(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Status: resp.StatusCode, Message: "malformed response body"}
		}
	}
	return nil
}

// remoteMessage pulls the human-readable error out of a failure body.
func remoteMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return "request failed"
}
