package oauth2

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/giantswarm/oauth2-client/instrumentation"
	"github.com/giantswarm/oauth2-client/transport"
)

// AuthType indicates how the client identity is transmitted on token
// requests when either form is valid.
type AuthType int

// Client authentication methods.
const (
	// BasicAuth transmits client_id and client_secret via the HTTP Basic
	// authentication scheme. This is the default, following the
	// recommendation of RFC 6749 §2.3.1.
	BasicAuth AuthType = iota

	// RequestBody transmits client_id and client_secret as fields of the
	// request body.
	RequestBody
)

func (t AuthType) String() string {
	switch t {
	case BasicAuth:
		return "basic_auth"
	case RequestBody:
		return "request_body"
	}
	return "unknown"
}

// Param is one ordered key/value pair destined for an authorization URL
// query string or a token request body. An ordered slice is used instead
// of url.Values because url.Values sorts keys when encoding, and wire
// parameter order is part of this package's contract.
type Param struct {
	Key   string
	Value string
}

// Client holds the configuration for an OAuth2 client: endpoints, client
// identity, authentication method, scopes, and redirect URL.
//
// A Client is immutable once built. The Add*/Set* methods return an
// updated copy, so configurations can be shared freely across concurrent
// exchanges without locking.
type Client struct {
	httpClient   *http.Client
	logger       *slog.Logger
	inst         *instrumentation.Instrumentation
	clientID     ClientID
	clientSecret *ClientSecret
	authURL      AuthURL
	tokenURL     *TokenURL
	authType     AuthType
	scopes       []Scope
	redirectURL  *RedirectURL
}

// NewClient initializes an OAuth2 client with the fields common to most
// OAuth2 flows.
//
// clientSecret is optional: it is generally present for private
// (server-side) clients and omitted for public (native app or browser)
// clients, per RFC 8252. tokenURL is optional at construction; if it is
// nil, the Exchange* requests fail with a RequestTokenError of kind
// ErrorKindOther rather than panicking, because callers may discover the
// token endpoint dynamically after building the client.
//
// The default authentication method is BasicAuth and the default HTTP
// client is transport.New(), which never follows redirects.
func NewClient(clientID ClientID, clientSecret *ClientSecret, authURL AuthURL, tokenURL *TokenURL) *Client {
	return &Client{
		httpClient:   transport.New(),
		logger:       slog.Default(),
		clientID:     clientID,
		clientSecret: clientSecret,
		authURL:      authURL,
		tokenURL:     tokenURL,
		authType:     BasicAuth,
	}
}

// AddScope returns a copy of the client with the scope appended to the
// scopes requested on authorization URLs and token requests.
func (c *Client) AddScope(scope Scope) *Client {
	d := *c
	d.scopes = append(append([]Scope(nil), c.scopes...), scope)
	return &d
}

// SetAuthType returns a copy of the client using the given client
// authentication method for token requests. The default is BasicAuth, as
// recommended by RFC 6749 §2.3.1.
func (c *Client) SetAuthType(authType AuthType) *Client {
	d := *c
	d.authType = authType
	return &d
}

// SetRedirectURL returns a copy of the client with the redirect URL used
// by the authorization endpoint and echoed on token requests.
func (c *Client) SetRedirectURL(redirectURL RedirectURL) *Client {
	d := *c
	d.redirectURL = &redirectURL
	return &d
}

// SetHTTPClient returns a copy of the client using the given HTTP client
// for token requests. The HTTP client must not follow redirects: a
// redirect on a token response is not meaningful under RFC 6749. Use
// transport.New to build a compliant client with timeouts, request IDs,
// and optional outbound rate limiting.
func (c *Client) SetHTTPClient(httpClient *http.Client) *Client {
	d := *c
	d.httpClient = httpClient
	return &d
}

// SetLogger returns a copy of the client logging through the given
// logger. Secret material is never logged.
func (c *Client) SetLogger(logger *slog.Logger) *Client {
	d := *c
	if logger == nil {
		logger = slog.Default()
	}
	d.logger = logger
	return &d
}

// SetInstrumentation returns a copy of the client recording exchange
// metrics and spans through the given instrumentation.
func (c *Client) SetInstrumentation(inst *instrumentation.Instrumentation) *Client {
	d := *c
	d.inst = inst
	return &d
}

// ClientID returns the configured client identifier.
func (c *Client) ClientID() ClientID { return c.clientID }

// AuthType returns the configured client authentication method.
func (c *Client) AuthType() AuthType { return c.authType }

// Scopes returns a copy of the configured scopes in request order.
func (c *Client) Scopes() []Scope { return append([]Scope(nil), c.scopes...) }

// AuthorizeURL produces the full authorization URL for the Authorization
// Code Grant (RFC 6749 §4.1), the most common OAuth2 flow, along with
// the CSRF state embedded in it.
//
// stateFn produces the opaque state value; pass GenerateCSRFToken for a
// fresh random token. Callers must verify that the state echoed back to
// the redirect URL matches the returned token; that check is what
// defeats cross-site request forgery (RFC 6749 §10.12). To build a URL
// without CSRF protection (NOT recommended), use the insecure package.
func (c *Client) AuthorizeURL(stateFn func() CSRFToken, extra ...Param) (*url.URL, CSRFToken) {
	state := stateFn()
	return c.AuthorizeURLWithParams(ResponseTypeCode, &state, extra...), state
}

// AuthorizeURLImplicit produces the full authorization URL for the
// Implicit Grant (RFC 6749 §4.2) along with the CSRF state embedded in
// it. The same state-verification obligation as AuthorizeURL applies; the
// CSRF-unprotected variant lives in the insecure package.
func (c *Client) AuthorizeURLImplicit(stateFn func() CSRFToken, extra ...Param) (*url.URL, CSRFToken) {
	state := stateFn()
	return c.AuthorizeURLWithParams(ResponseTypeToken, &state, extra...), state
}

// AuthorizeURLWithParams is the general authorization URL builder behind
// AuthorizeURL and AuthorizeURLImplicit. Query parameters are appended in
// a fixed, reproducible order: response_type, client_id, redirect_uri
// (if configured), scope (if any, space-joined), state (if non-nil),
// then the extra parameters in caller order.
//
// A nil state produces a URL vulnerable to cross-site request forgery;
// use the insecure package rather than passing nil here, so the security
// trade-off stays visible at the call site.
func (c *Client) AuthorizeURLWithParams(responseType ResponseType, state *CSRFToken, extra ...Param) *url.URL {
	u := c.authURL.URL()

	var query strings.Builder
	query.WriteString(u.RawQuery)
	appendFormPair := func(key, value string) {
		if query.Len() > 0 {
			query.WriteByte('&')
		}
		query.WriteString(url.QueryEscape(key))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(value))
	}

	appendFormPair("response_type", string(responseType))
	appendFormPair("client_id", string(c.clientID))
	if c.redirectURL != nil {
		appendFormPair("redirect_uri", c.redirectURL.String())
	}
	if len(c.scopes) > 0 {
		appendFormPair("scope", joinScopes(c.scopes))
	}
	if state != nil {
		appendFormPair("state", state.Secret())
	}
	for _, p := range extra {
		appendFormPair(p.Key, p.Value)
	}

	u.RawQuery = query.String()
	return u
}

// ExchangeCode returns a token request that trades an authorization code
// produced by a successful authorization flow for an access token
// (RFC 6749 §4.1.3). The code is grant material and may only be used
// once; execute the request promptly.
func (c *Client) ExchangeCode(code AuthorizationCode) *TokenRequest {
	return c.newTokenRequest("authorization_code").
		Param("code", code.Secret())
}

// ExchangePassword returns a token request for the Resource Owner
// Password Credentials grant (RFC 6749 §4.3.2). Configured scopes are
// sent space-joined under the `scope` key.
func (c *Client) ExchangePassword(username ResourceOwnerUsername, password ResourceOwnerPassword) *TokenRequest {
	r := c.newTokenRequest("password").
		Param("username", string(username)).
		Param("password", password.Secret())
	if len(c.scopes) > 0 {
		r = r.Param("scope", joinScopes(c.scopes))
	}
	return r
}

// clientCredentialsScopeKey is the scope parameter key sent on the
// client-credentials grant. This client has always sent the non-standard
// plural key for this one grant (RFC 6749 §4.4.2 names the parameter
// "scope"); the key is kept as an explicit constant so the divergence is
// visible, and callers needing the singular key can clear scopes and set
// it via Param.
const clientCredentialsScopeKey = "scopes"

// ExchangeClientCredentials returns a token request for the Client
// Credentials grant (RFC 6749 §4.4.2).
func (c *Client) ExchangeClientCredentials() *TokenRequest {
	r := c.newTokenRequest("client_credentials")
	if len(c.scopes) > 0 {
		r = r.Param(clientCredentialsScopeKey, joinScopes(c.scopes))
	}
	return r
}

// ExchangeRefreshToken returns a token request that trades a refresh
// token for a fresh access token (RFC 6749 §6).
func (c *Client) ExchangeRefreshToken(refreshToken RefreshToken) *TokenRequest {
	return c.newTokenRequest("refresh_token").
		Param("refresh_token", refreshToken.Secret())
}
