package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// StatusError is returned when the dashboard API answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d: %s", e.Path, e.StatusCode, e.Body)
}

// Client talks to the hospital dashboard REST API, e.g. http://localhost:8085/api.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

func NewClient(profile domain.ConnectionProfile, opts ...Option) (*Client, error) {
	if profile.Host == "" {
		return nil, fmt.Errorf("profile %s has no host", profile.Name)
	}

	base, err := url.Parse(strings.TrimRight(profile.Host, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid host %q: %w", profile.Host, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid host %q: scheme and host are required", profile.Host)
	}

	c := &Client{
		baseURL: base,
		token:   profile.Token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	logger := zerolog.Ctx(ctx)

	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("dashboard api request failed")
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	logger.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("dashboard api request completed")
	return nil
}

// BackendFactory opens an api profile: the REST API serves both the entities
// and the external predictions.
func BackendFactory(_ context.Context, profile domain.ConnectionProfile) (dashboard.Backend, error) {
	c, err := NewClient(profile)
	if err != nil {
		return dashboard.Backend{}, err
	}
	return dashboard.Backend{Source: c, Predictions: c}, nil
}
