// Package client talks to the citizen registration service.
//
// Every call returns the raw status code and body. Remote rejections are data
// for the caller to assert on; only local failures (transport, timeouts,
// oversized bodies, refused deletes) are returned as errors.
package client

//go:generate mockgen -source=client.go -destination=mocks/mocks.go -package=mocks HTTPDoer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	contract "regsuite/contracts/registration"
	"regsuite/internal/platform/privacy"
	"regsuite/internal/registration/metrics"
	"regsuite/internal/registration/models"
	"regsuite/internal/registration/tracer"
	"regsuite/pkg/domain"
	dErrors "regsuite/pkg/domain-errors"
	"regsuite/pkg/platform/netutil"
)

// HeaderRequestID carries a per-call identifier for correlating harness logs with service logs.
const HeaderRequestID = "X-Request-ID"

// DefaultTimeout applies when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	BodyLimit  int64
	HTTPClient HTTPDoer
	Logger     *slog.Logger
	Tracer     tracer.Tracer
	Metrics    *metrics.Metrics
}

// Client issues registration, lookup and removal calls.
type Client struct {
	baseURL   string
	client    HTTPDoer
	bodyLimit int64
	logger    *slog.Logger
	tracer    tracer.Tracer
	metrics   *metrics.Metrics
}

// Response is what the service answered.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
	Duration   time.Duration
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// New creates a Client. BaseURL must be an absolute http(s) URL.
func New(cfg Config) (*Client, error) {
	base := netutil.TrimBaseURL(cfg.BaseURL)
	if !netutil.IsAbsoluteHTTP(base) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("base URL %q must be an absolute http(s) URL", netutil.StripCredentials(cfg.BaseURL)))
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BodyLimit == 0 {
		cfg.BodyLimit = netutil.DefaultBodyLimit
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Tracer == nil {
		cfg.Tracer = tracer.NewNoop()
	}

	return &Client{
		baseURL:   base,
		client:    selectHTTPClient(cfg),
		bodyLimit: cfg.BodyLimit,
		logger:    cfg.Logger,
		tracer:    cfg.Tracer,
		metrics:   cfg.Metrics,
	}, nil
}

func selectHTTPClient(cfg Config) HTTPDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	return &http.Client{
		Timeout: cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// BaseURL returns the normalized service URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Submit sends POST /registration with the record encoded as query parameters.
// The record is not validated locally.
func (c *Client) Submit(ctx context.Context, record models.Record) (*Response, error) {
	path := contract.PathRegistration + "?" + record.Values().Encode()
	return c.do(ctx, call{
		op:        metrics.OpSubmit,
		span:      tracer.SpanSubmit,
		method:    http.MethodPost,
		path:      path,
		citizenID: record.ID(),
	})
}

// Lookup sends GET /registration/{id}. Any ID is sent as given.
func (c *Client) Lookup(ctx context.Context, id domain.CitizenID) (*Response, error) {
	return c.do(ctx, call{
		op:        metrics.OpLookup,
		span:      tracer.SpanLookup,
		method:    http.MethodGet,
		path:      recordPath(id),
		citizenID: id,
	})
}

// Remove sends DELETE /registration/{id}. IDs that are not exactly 13 digits
// are refused without a request: the service treats some malformed IDs as
// "delete every record".
func (c *Client) Remove(ctx context.Context, id domain.CitizenID) (*Response, error) {
	nominal, parseErr := domain.ParseCitizenID(id.String())
	if parseErr != nil {
		_, span := c.tracer.Start(ctx, tracer.SpanRemove,
			tracer.String(tracer.AttrCitizenID, privacy.HashCitizenID(id.String())),
		)
		span.AddEvent(tracer.EventUnsafeRemoveRefused)
		err := &dErrors.Error{
			Code:    dErrors.CodeUnsafeOperation,
			Message: fmt.Sprintf("refusing to delete malformed citizen ID %q", id),
			Err:     parseErr,
		}
		span.End(err)
		if c.metrics != nil {
			c.metrics.IncrementUnsafeRemoves()
		}
		c.logger.WarnContext(ctx, "refused unsafe registration delete",
			"citizen_id_hash", privacy.HashCitizenID(id.String()),
		)
		return nil, err
	}
	return c.do(ctx, call{
		op:        metrics.OpRemove,
		span:      tracer.SpanRemove,
		method:    http.MethodDelete,
		path:      recordPath(nominal),
		citizenID: nominal,
	})
}

// Health sends GET /health and fails unless the service answers 200.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, call{
		op:     metrics.OpHealth,
		span:   tracer.SpanHealth,
		method: http.MethodGet,
		path:   contract.PathHealth,
	})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return dErrors.New(dErrors.CodeUnavailable, fmt.Sprintf("unhealthy status: %d", resp.StatusCode))
	}
	return nil
}

func recordPath(id domain.CitizenID) string {
	return contract.PathRegistration + "/" + url.PathEscape(id.String())
}

type call struct {
	op        string
	span      string
	method    string
	path      string
	citizenID domain.CitizenID
}

func (c *Client) do(ctx context.Context, cl call) (resp *Response, err error) {
	requestID := uuid.NewString()
	idHash := privacy.HashCitizenID(cl.citizenID.String())

	ctx, span := c.tracer.Start(ctx, cl.span,
		tracer.String(tracer.AttrCitizenID, idHash),
		tracer.String(tracer.AttrRequestID, requestID),
	)
	defer func() { span.End(err) }()

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create request")
	}
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	httpResp, err := c.client.Do(req)
	if err != nil {
		elapsed := time.Since(start)
		if c.metrics != nil {
			c.metrics.ObserveError(cl.op, elapsed.Seconds())
		}
		c.logger.ErrorContext(ctx, "registration request failed",
			"operation", cl.op,
			"method", cl.method,
			"request_id", requestID,
			"error", err,
		)
		return nil, classifyTransportError(ctx, err)
	}
	defer httpResp.Body.Close()

	body, err := netutil.ReadAllLimited(httpResp.Body, c.bodyLimit)
	elapsed := time.Since(start)
	if err != nil {
		if netutil.IsSizeLimitExceededError(err) {
			return nil, dErrors.Wrap(err, dErrors.CodeBadResponse, "response body too large")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeTransport, "failed to read response")
	}

	if c.metrics != nil {
		c.metrics.ObserveResponse(cl.op, httpResp.StatusCode, elapsed.Seconds())
	}
	span.SetAttributes(
		tracer.Int(tracer.AttrStatusCode, httpResp.StatusCode),
		tracer.Duration(tracer.AttrLatency, elapsed),
	)
	c.logger.DebugContext(ctx, "registration request completed",
		"operation", cl.op,
		"method", cl.method,
		"status", httpResp.StatusCode,
		"citizen_id_hash", idHash,
		"request_id", requestID,
		"duration_ms", elapsed.Milliseconds(),
	)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		RequestID:  requestID,
		Duration:   elapsed,
	}, nil
}

func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "request timeout")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "request timeout")
	}
	return dErrors.Wrap(err, dErrors.CodeTransport, "failed to execute request")
}
