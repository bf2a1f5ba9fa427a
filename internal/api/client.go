// Package api implements the HTTP client for the board meeting service.
// The service exposes two endpoints: POST /api/start_meeting to kick off a
// meeting and GET /api/meeting_status to poll its current state.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"boardwatch/internal/errors"
	"boardwatch/internal/logger"
)

// DefaultTimeout bounds a single request; polls that take longer than this
// are treated as transport failures.
const DefaultTimeout = 10 * time.Second

// Client talks to one meeting service instance.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for the service at baseURL (e.g.
// "http://localhost:5001"). A trailing slash is tolerated.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     logger.NewEnvLogger("[api]"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StartMeeting asks the service to begin a new board meeting.
// It returns an error unless the service responds with status "success".
func (c *Client) StartMeeting(ctx context.Context) (*StartResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/start_meeting", nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrAPI,
			"Failed to build start-meeting request",
			"Check the server URL in your config")
	}

	var resp StartResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	if !resp.Started() {
		return nil, errors.New(errors.ErrAPI,
			fmt.Sprintf("Meeting service refused to start: %s", resp.Status),
			"The service may already be running a meeting")
	}

	c.log.Debug("meeting started: %s", resp.Message)
	return &resp, nil
}

// MeetingStatus fetches the current meeting snapshot.
func (c *Client) MeetingStatus(ctx context.Context) (*MeetingStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/meeting_status", nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrAPI,
			"Failed to build status request",
			"Check the server URL in your config")
	}

	var status MeetingStatus
	if err := c.do(req, &status); err != nil {
		return nil, err
	}

	c.log.Debug("status=%s stage=%q members=%d", status.Status, status.MeetingStage, len(status.MeetingStats))
	return &status, nil
}

// do executes the request and decodes the JSON body into out.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			fmt.Sprintf("Cannot reach meeting service at %s", c.baseURL),
			"Check that the service is running and the URL is correct")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for diagnostics; the service returns
		// plain JSON even on errors.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.New(errors.ErrAPI,
			fmt.Sprintf("Meeting service returned HTTP %d", resp.StatusCode),
			strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Malformed response from meeting service",
			"The service may be an incompatible version")
	}

	return nil
}
