package instrumentation

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Common span and metric attribute keys.
//
// SECURITY WARNING: these name metadata attributes only. Never record
// actual credential values (tokens, client secrets, authorization codes,
// PKCE verifiers, state tokens) on spans or metrics.
const (
	// AttrGrantType is the OAuth grant type of an exchange.
	AttrGrantType = "oauth.grant_type"

	// AttrErrorKind is the failure mode of an exchange
	// (server_response, client, parse, other).
	AttrErrorKind = "oauth.error_kind"

	// AttrEndpointHost is the token endpoint host (no path or query).
	AttrEndpointHost = "oauth.endpoint.host"
)

// RecordError records an error on a span with proper status codes
// (nil-safe).
func RecordError(span trace.Span, err error) {
	if span != nil && err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess marks a span as successful (nil-safe).
func SetSpanSuccess(span trace.Span) {
	if span != nil {
		span.SetStatus(codes.Ok, "")
	}
}
