// Package apiclient is the HTTP adapter for the HR management API.
//
// It attaches the current bearer credential to every outbound request and
// intercepts 401 responses: the token source is invalidated and the
// OnUnauthorized hook fires before the error is returned, so an expired
// session is torn down no matter which call detects it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// basePath is prepended to every request path.
const basePath = "/api"

// TokenSource supplies the bearer credential for outbound requests.
// Invalidate is called when the server rejects the credential.
type TokenSource interface {
	Token() string
	Invalidate()
}

// Client wraps HTTP access to the HR API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Tokens supplies the bearer credential; nil means all requests go out
	// unauthenticated.
	Tokens TokenSource

	// OnUnauthorized fires after a 401 response has invalidated the token
	// source. The composition root uses it to drive navigation; it must not
	// issue requests through this client.
	OnUnauthorized func()
}

// New creates a Client for the given host. No timeout is set on the
// underlying http.Client; callers bound requests with contexts.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Do sends a request to the API and returns the raw response.
//
// A 401 response is consumed here: the token source is invalidated, the
// OnUnauthorized hook fires, and the call returns an *APIError. Every other
// response, success or failure, is returned to the caller untouched.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	u := c.BaseURL + basePath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := errorFromResponse(resp)
		if c.Tokens != nil {
			c.Tokens.Invalidate()
		}
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return nil, apiErr
	}

	return resp, nil
}

// Raw sends a request, checks the response status, and returns the raw
// response body. Callers that must sniff the body shape use this instead of
// JSON.
func (c *Client) Raw(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	resp, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	data, err := ReadBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromBody(resp.StatusCode, data)
	}
	return data, nil
}

// JSON sends a request, checks the response status, and decodes the body
// into out. A nil out discards the body.
func (c *Client) JSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	resp, err := c.Do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	data, err := ReadBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromBody(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ReadBody drains and closes the response body.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}

// CheckError returns an *APIError for non-2xx responses and nil otherwise.
// The response body is consumed either way.
func CheckError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil
	}
	return errorFromResponse(resp)
}

func errorFromResponse(resp *http.Response) *APIError {
	data, err := ReadBody(resp)
	if err != nil {
		return &APIError{Status: resp.StatusCode}
	}
	return errorFromBody(resp.StatusCode, data)
}

func errorFromBody(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	message := ""
	if json.Unmarshal(body, &payload) == nil {
		message = payload.Message
		if message == "" {
			message = payload.Error
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	return &APIError{Status: status, Message: message}
}
