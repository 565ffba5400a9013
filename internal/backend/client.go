// Package backend is the client for the ownership/auth service. Every
// request goes through a single gateway that attaches the session's bearer
// token and reacts to its invalidation: a 401 response tears the session
// down before the failure reaches the caller, so callers only perform local
// cleanup and never duplicate the logout.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gpessoni/pokedex/internal/domain"
	"github.com/gpessoni/pokedex/internal/session"
)

const defaultTimeout = 30 * time.Second

// Client implements domain.AuthRepository, domain.OwnershipRepository and
// domain.TrainerRepository against the backend REST API.
type Client struct {
	baseURL    string
	session    *session.Session
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client bound to a session.
func NewClient(baseURL string, sess *session.Session, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: sess,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated HTTP request and maps the response
// status onto the domain error taxonomy.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		c.logger.Warn("no session credential, sending unauthenticated", "method", method, "path", path)
	}

	c.logger.Debug("backend request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Session guard runs here, once, regardless of which call tripped it.
		c.session.Invalidate()
		return nil, domain.ErrSessionExpired

	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, serverMessage(body))

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("backend request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// serverMessage extracts the backend's human-readable error message.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "request rejected"
}
