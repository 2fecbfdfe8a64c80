package oauth2

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/giantswarm/oauth2-client/instrumentation"
)

const contentTypeJSON = "application/json"

// TokenRequest is one pending exchange against the token endpoint. It is
// built by the Client.Exchange* methods, optionally extended via Param,
// and consumed by a single call to Execute: a request that has executed
// cannot be executed again.
type TokenRequest struct {
	httpClient   *http.Client
	logger       *slog.Logger
	inst         *instrumentation.Instrumentation
	tokenURL     *TokenURL
	authType     AuthType
	clientID     ClientID
	clientSecret *ClientSecret
	redirectURL  *RedirectURL
	grantType    string
	params       []Param
	executed     bool
}

func (c *Client) newTokenRequest(grantType string) *TokenRequest {
	return &TokenRequest{
		httpClient:   c.httpClient,
		logger:       c.logger,
		inst:         c.inst,
		tokenURL:     c.tokenURL,
		authType:     c.authType,
		clientID:     c.clientID,
		clientSecret: c.clientSecret,
		redirectURL:  c.redirectURL,
		grantType:    grantType,
		params:       []Param{{Key: "grant_type", Value: grantType}},
	}
}

// Param appends an extra request parameter. It may be called multiple
// times before execution; parameters are transmitted in the order added.
func (r *TokenRequest) Param(key, value string) *TokenRequest {
	r.params = append(r.params, Param{Key: key, Value: value})
	return r
}

// Execute sends the token request and decodes the response as a
// StandardTokenResponse. All failures are reported as a
// *RequestTokenError; branch on its Kind.
func (r *TokenRequest) Execute(ctx context.Context) (TokenResponse, error) {
	return r.ExecuteAs(ctx, func() TokenResponse { return &StandardTokenResponse{} })
}

// ExecuteAs sends the token request and decodes the success response into
// the value produced by newResponse, which must return a pointer type
// that json.Unmarshal can populate. This is the extension point for
// servers whose token responses deviate from RFC 6749 §5.1.
func (r *TokenRequest) ExecuteAs(ctx context.Context, newResponse func() TokenResponse) (TokenResponse, error) {
	if r.executed {
		return nil, otherError("token request already executed")
	}
	r.executed = true

	ctx, span := r.startSpan(ctx)
	defer span.End()
	start := time.Now()

	resp, err := r.execute(ctx, newResponse)
	r.record(ctx, span, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *TokenRequest) execute(ctx context.Context, newResponse func() TokenResponse) (TokenResponse, *RequestTokenError) {
	if r.tokenURL == nil {
		// Returning an error instead of panicking matters here: callers
		// may discover the token endpoint dynamically (e.g. via OpenID
		// Connect discovery) after the client was built.
		return nil, otherError("no token URL is configured")
	}

	body := r.encodeBody()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.tokenURL.String(), strings.NewReader(body))
	if err != nil {
		return nil, clientError(err)
	}

	// RFC 6749 §5.1 only permits JSON responses to this request, but some
	// servers (GitHub among them) default to non-JSON content types, so
	// ask for JSON explicitly.
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if r.authType == BasicAuth {
		// RFC 6749 §2.3.1 requires form-urlencoding the id and secret
		// individually before using them as Basic auth credentials. This
		// is stricter than ordinary Basic auth, so it cannot be left to
		// the HTTP layer.
		password := ""
		if r.clientSecret != nil {
			password = formEncode(r.clientSecret.Secret())
		}
		req.SetBasicAuth(formEncode(string(r.clientID)), password)
	}

	r.logger.DebugContext(ctx, "executing token request",
		"grant_type", r.grantType,
		"endpoint", r.tokenURL.String(),
		"auth_type", r.authType.String(),
	)

	httpResp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, clientError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, clientError(err)
	}

	r.logger.DebugContext(ctx, "token endpoint responded",
		"grant_type", r.grantType,
		"status", httpResp.StatusCode,
		"body_bytes", len(respBody),
	)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		if len(respBody) == 0 {
			return nil, otherError("server returned empty error response")
		}
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil {
			return nil, parseError(err, respBody)
		}
		return nil, serverResponseError(&errResp)
	}

	if len(respBody) == 0 {
		// A 2xx with no body is not a valid token response (RFC 6749 §5.1).
		return nil, otherError("server returned empty response body")
	}

	resp := newResponse()
	if err := json.Unmarshal(respBody, resp); err != nil {
		return nil, parseError(err, respBody)
	}
	return resp, nil
}

// encodeBody assembles the application/x-www-form-urlencoded request
// body: client credentials first when body authentication is configured,
// then the accumulated parameters in order, then the redirect URI echo.
func (r *TokenRequest) encodeBody() string {
	var fields []Param
	if r.authType == RequestBody {
		fields = append(fields, Param{Key: "client_id", Value: string(r.clientID)})
		if r.clientSecret != nil {
			fields = append(fields, Param{Key: "client_secret", Value: r.clientSecret.Secret()})
		}
	}
	fields = append(fields, r.params...)
	if r.redirectURL != nil {
		fields = append(fields, Param{Key: "redirect_uri", Value: r.redirectURL.String()})
	}
	return encodeForm(fields)
}

func (r *TokenRequest) startSpan(ctx context.Context) (context.Context, trace.Span) {
	if r.inst == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return r.inst.Tracer("client").Start(ctx, "oauth2.client.exchange",
		trace.WithAttributes(attribute.String(instrumentation.AttrGrantType, r.grantType)),
	)
}

func (r *TokenRequest) record(ctx context.Context, span trace.Span, elapsed time.Duration, err *RequestTokenError) {
	if err != nil {
		instrumentation.RecordError(span, err)
	} else {
		instrumentation.SetSpanSuccess(span)
	}
	if r.inst == nil {
		return
	}

	m := r.inst.Metrics()
	grantAttr := attribute.String(instrumentation.AttrGrantType, r.grantType)
	m.ExchangesTotal.Add(ctx, 1, metric.WithAttributes(grantAttr))
	m.ExchangeDuration.Record(ctx, float64(elapsed.Milliseconds()), metric.WithAttributes(grantAttr))
	if err != nil {
		m.ExchangeErrors.Add(ctx, 1, metric.WithAttributes(
			grantAttr,
			attribute.String(instrumentation.AttrErrorKind, err.Kind.String()),
		))
	}
}

// encodeForm form-urlencodes the pairs in order. url.Values cannot be
// used because its Encode sorts keys.
func encodeForm(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// formEncode applies application/x-www-form-urlencoded escaping to a
// single value, as RFC 6749 §2.3.1 requires for Basic auth credentials.
func formEncode(s string) string {
	return url.QueryEscape(s)
}
