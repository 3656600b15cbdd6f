// Package api is the HTTP client for the marketplace API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"solarsavers/config"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// HeaderRequestID carries the per-call correlation id.
const HeaderRequestID = "X-Request-Id"

// UnauthorizedFunc is called when a bearer call is answered with 401.
type UnauthorizedFunc func(ctx context.Context)

// Client talks to the marketplace API. It implements repository.DataSource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu             sync.RWMutex
	onUnauthorized UnauthorizedFunc
}

var _ repository.DataSource = (*Client)(nil)

// NewClient creates a client for cfg.BaseURL with cfg.Timeout per request.
func NewClient(cfg config.APIConfig, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, logger)
}

// NewClientWithHTTP creates a client around an existing http.Client.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// OnUnauthorized registers the handler for rejected bearer tokens.
func (c *Client) OnUnauthorized(fn UnauthorizedFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onUnauthorized = fn
}

// StatusError is a non-2xx answer. Unwrap yields the matching domain error.
type StatusError struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	msg := e.Method + " " + e.Path + ": " + http.StatusText(e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap maps the status onto the domain error taxonomy.
func (e *StatusError) Unwrap() error {
	var base *domainerrors.BaseError
	switch {
	case e.Status == http.StatusUnauthorized && e.Path == pathLogin:
		base = domainerrors.ErrInvalidCredentials
	case e.Status == http.StatusUnauthorized:
		base = domainerrors.ErrSessionExpired
	case e.Status == http.StatusForbidden:
		base = domainerrors.ErrForbidden
	case e.Status == http.StatusNotFound:
		base = domainerrors.ErrNotFound
	case e.Status == http.StatusBadRequest && strings.Contains(strings.ToLower(e.Detail), "already registered"):
		base = domainerrors.ErrAccountExists
	case e.Status >= http.StatusInternalServerError:
		base = domainerrors.ErrRemoteUnavailable
	default:
		base = domainerrors.ErrRemoteRejected
	}

	if e.Detail == "" {
		return base
	}

	return base.WithDetails(e.Detail)
}

// errorBody is the FastAPI error shape. Detail is a string or a list of {msg}.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func parseDetail(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}

		return strings.Join(msgs, "; ")
	}

	return string(body.Detail)
}

type request struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any
}

// do sends req and decodes a 2xx JSON answer into out (when non-nil).
func (c *Client) do(ctx context.Context, req request, out any) error {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var payload io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrapf(err, "encode %s body", req.path)
		}
		payload = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, payload)
	if err != nil {
		return errors.Wrapf(err, "build request %s %s", req.method, req.path)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderRequestID, requestID)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	logger := c.logger.With(
		slog.String("request_id", requestID),
		slog.String("method", req.method),
		slog.String("path", req.path),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn("API call failed", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrRemoteUnavailable.WithDetails(err.Error()), req.path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(domainerrors.ErrRemoteUnavailable.WithDetails(err.Error()), req.path)
	}

	logger.Debug("API call",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{
			Method: req.method,
			Path:   req.path,
			Status: resp.StatusCode,
			Detail: parseDetail(raw),
		}
		if resp.StatusCode == http.StatusUnauthorized && req.token != "" {
			c.notifyUnauthorized(ctx)
		}

		return errors.WithStack(statusErr)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(domainerrors.ErrRemoteRejected.WithDetails("malformed response"), err.Error())
	}

	return nil
}

func (c *Client) notifyUnauthorized(ctx context.Context) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()

	if fn != nil {
		fn(ctx)
	}
}

func (c *Client) get(ctx context.Context, path, token string, query url.Values, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, token: token, query: query}, out)
}

func (c *Client) send(ctx context.Context, method, path, token string, body, out any) error {
	return c.do(ctx, request{method: method, path: path, token: token, body: body}, out)
}
