// Package api is the HTTP client for the remote StudySpace REST API. The
// remote service is the single source of truth; this package does no caching
// and no retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client talks to the StudySpace API over JSON/HTTPS. Bearer tokens are
// supplied per call so the client itself holds no session state.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// do issues a JSON request and decodes a 2xx response body into out (if out
// is non-nil). Non-2xx responses come back as *Error; transport failures as
// a wrapped error satisfying IsNetwork.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("studyspace api unreachable",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &networkError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseError(resp)
		c.logger.Warn("studyspace api error",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// parseError extracts a human-readable message from an error response.
// Prefers the JSON "message"/"error" fields, falls back to raw body text.
func parseError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
			return apiErr
		}
		if body.Error != "" {
			apiErr.Message = body.Error
			return apiErr
		}
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
