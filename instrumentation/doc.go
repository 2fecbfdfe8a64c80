// Package instrumentation provides OpenTelemetry (OTEL) instrumentation
// for the oauth2-client library.
//
// It exposes meters and tracers for observing token exchanges:
//   - oauth2.client.exchanges{oauth.grant_type} - exchanges attempted
//   - oauth2.client.exchange.duration{oauth.grant_type} - exchange duration in milliseconds
//   - oauth2.client.exchange.errors{oauth.grant_type, oauth.error_kind} - failed exchanges
//
// Spans named "oauth2.client.exchange" wrap each token request.
//
// # Quick Start
//
//	inst, err := instrumentation.New(instrumentation.Config{
//		ServiceName:    "my-service",
//		ServiceVersion: "1.0.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer inst.Shutdown(context.Background())
//
//	client = client.SetInstrumentation(inst)
//
// When instrumentation is not configured or disabled, no-op providers are
// used and there is no overhead on the exchange path.
//
// # Security Considerations
//
// Only metadata is recorded: grant types, error kinds, durations. Token
// values, client secrets, authorization codes, and PKCE verifiers must
// never appear in metric attributes or span attributes; traces are
// persisted and replicated far more widely than the credentials they
// would leak.
package instrumentation
