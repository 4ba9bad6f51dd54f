// Package client is an HTTP client for the event log REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dhis2-sre/event-log/internal/errdef"
	"github.com/dhis2-sre/event-log/internal/middleware"
	"github.com/dhis2-sre/event-log/pkg/model"
	"github.com/google/uuid"
)

// Client talks to the event log REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option represents a functional option for configuring the Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger requests are logged to
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the event log API served at baseURL.
func New(baseURL string, options ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// BaseURL returns the client's base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

type saveEventRequest struct {
	Description string `json:"description"`
}

// FindAll returns all events in the order the server returns them.
func (c *Client) FindAll(ctx context.Context) ([]model.Event, error) {
	var response model.EventsResponse
	if err := c.do(ctx, http.MethodGet, "/events", nil, &response); err != nil {
		return nil, err
	}
	return response.Event, nil
}

func (c *Client) Find(ctx context.Context, id uint) (model.Event, error) {
	var response model.EventResponse
	if err := c.do(ctx, http.MethodGet, eventPath(id), nil, &response); err != nil {
		return model.Event{}, err
	}
	return response.Event, nil
}

// Create creates an event. The server responds with the bare event rather than an envelope.
func (c *Client) Create(ctx context.Context, description string) (model.Event, error) {
	var event model.Event
	if err := c.do(ctx, http.MethodPost, "/events", saveEventRequest{description}, &event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

// Update replaces the description of the event with the given id.
func (c *Client) Update(ctx context.Context, id uint, description string) (model.Event, error) {
	var response model.EventResponse
	if err := c.do(ctx, http.MethodPut, eventPath(id), saveEventRequest{description}, &response); err != nil {
		return model.Event{}, err
	}
	return response.Event, nil
}

// Delete deletes the event with the given id. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, eventPath(id), nil, nil)
}

func eventPath(id uint) string {
	return "/events/" + strconv.FormatUint(uint64(id), 10)
}

// do sends a request with the JSON encoded body, if any, and decodes the JSON response into
// responseBody, if given. Responses with a status other than 2xx are returned as errors.
func (c *Client) do(ctx context.Context, method, path string, body, responseBody any) error {
	var requestBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		requestBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, requestBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	correlationID, ok := middleware.GetCorrelationID(ctx)
	if !ok {
		correlationID = uuid.NewString()
	}
	req.Header.Set(middleware.CorrelationIDHeader, correlationID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errdef.NewUnavailable("failed %s %q: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Sent HTTP request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
		slog.String(middleware.RequestLoggerKeyCorrelationID, correlationID),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(method, path, resp)
	}

	if responseBody == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(responseBody); err != nil {
		return fmt.Errorf("failed to decode response of %s %q: %v", method, path, err)
	}

	return nil
}

func statusError(method, path string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := strings.TrimSpace(string(b))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return errdef.NewBadRequest("failed %s %q: %s", method, path, message)
	case http.StatusNotFound:
		return errdef.NewNotFound("failed %s %q: %s", method, path, message)
	case http.StatusUnsupportedMediaType:
		return errdef.NewUnsupportedMediaType("failed %s %q: %s", method, path, message)
	default:
		return errdef.NewUnavailable("failed %s %q: %s: %s", method, path, resp.Status, message)
	}
}
