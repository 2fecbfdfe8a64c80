package transport

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole token request, including connection
// setup and reading the response body.
const DefaultTimeout = 30 * time.Second

// RequestIDHeader is the HTTP header carrying the outbound request ID.
const RequestIDHeader = "X-Request-ID"

type options struct {
	timeout time.Duration
	base    http.RoundTripper
	logger  *slog.Logger
	limit   float64
	burst   int
}

// Option configures the client built by New.
type Option func(*options)

// WithTimeout sets the overall request timeout. The default is
// DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithBase sets the underlying round tripper. The default is
// http.DefaultTransport.
func WithBase(base http.RoundTripper) Option {
	return func(o *options) { o.base = base }
}

// WithLogger enables debug logging of request metadata (method, host,
// status, duration). Bodies and headers are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRateLimit caps outbound requests at requestsPerSecond with the
// given burst, applying backpressure by waiting (subject to the request
// context) rather than failing.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(o *options) {
		o.limit = requestsPerSecond
		o.burst = burst
	}
}

// New builds an HTTP client for token endpoint traffic. The client never
// follows redirects and attaches a fresh X-Request-ID to each outbound
// request that lacks one.
func New(opts ...Option) *http.Client {
	o := options{
		timeout: DefaultTimeout,
		base:    http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rt := http.RoundTripper(&requestIDTransport{base: o.base})
	if o.limit > 0 {
		rt = newRateLimitedTransport(rt, o.limit, o.burst)
	}
	if o.logger != nil {
		rt = &loggingTransport{base: rt, logger: o.logger}
	}

	return &http.Client{
		Timeout:   o.timeout,
		Transport: rt,
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// requestIDTransport attaches a generated X-Request-ID to outbound
// requests that do not already carry one.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) == "" {
		// RoundTrippers must not mutate the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set(RequestIDHeader, GenerateRequestID())
	}
	return t.base.RoundTrip(req)
}

// loggingTransport logs request metadata at debug level.
type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.DebugContext(req.Context(), "request failed",
			"method", req.Method,
			"host", req.URL.Host,
			"duration", time.Since(start),
			"error", err,
		)
		return nil, err
	}
	t.logger.DebugContext(req.Context(), "request completed",
		"method", req.Method,
		"host", req.URL.Host,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}

// GenerateRequestID generates a cryptographically secure random request
// ID: 16 bytes (128 bits) of entropy encoded as a 22-character base64url
// string without padding.
//
// It panics if the system's random number generator fails, which
// indicates a critical system-level security failure.
func GenerateRequestID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
