package transport

import (
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimitedTransport applies token bucket rate limiting to outbound
// requests. Unlike an inbound limiter it never rejects: requests wait for
// a token, bounded by the request context and the client timeout.
type rateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func newRateLimitedTransport(base http.RoundTripper, requestsPerSecond float64, burst int) *rateLimitedTransport {
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedTransport{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
