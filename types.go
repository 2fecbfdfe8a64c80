package oauth2

import (
	"fmt"
	"net/url"
)

// Identifier types wrap the non-secret protocol strings defined by
// RFC 6749. They are plain named types so values convert transparently
// and compare structurally.

// ClientID is the client identifier issued to the client during the
// registration process described by RFC 6749 §2.2.
type ClientID string

// Scope is an access token scope, as defined by the authorization server.
type Scope string

// ResponseType is the authorization endpoint response (grant) type
// defined in RFC 6749 §3.1.1.
type ResponseType string

// Response types for the standard flows.
const (
	// ResponseTypeCode requests an authorization code (RFC 6749 §4.1).
	ResponseTypeCode ResponseType = "code"

	// ResponseTypeToken requests a token directly via the implicit flow
	// (RFC 6749 §4.2).
	ResponseTypeToken ResponseType = "token"
)

// ResourceOwnerUsername is the resource owner's username used directly as
// an authorization grant in the password flow (RFC 6749 §4.3).
type ResourceOwnerUsername string

// PKCECodeChallenge is the derived code challenge transmitted via the
// `code_challenge` parameter (RFC 7636).
type PKCECodeChallenge string

// PKCECodeChallengeMethod is the challenge derivation method transmitted
// via the `code_challenge_method` parameter (RFC 7636).
type PKCECodeChallengeMethod string

// Endpoint URL types. Construction validates that the URL parses and is
// absolute; everything beyond that is the authorization server's business.

// AuthURL is the URL of the authorization server's authorization endpoint.
type AuthURL struct {
	u url.URL
}

// NewAuthURL parses raw as an absolute URL and wraps it.
func NewAuthURL(raw string) (AuthURL, error) {
	u, err := parseAbsoluteURL("authorization", raw)
	if err != nil {
		return AuthURL{}, err
	}
	return AuthURL{u: *u}, nil
}

// URL returns a copy of the wrapped URL.
func (a AuthURL) URL() *url.URL {
	u := a.u
	return &u
}

func (a AuthURL) String() string { return a.u.String() }

// TokenURL is the URL of the authorization server's token endpoint.
type TokenURL struct {
	u url.URL
}

// NewTokenURL parses raw as an absolute URL and wraps it.
func NewTokenURL(raw string) (TokenURL, error) {
	u, err := parseAbsoluteURL("token", raw)
	if err != nil {
		return TokenURL{}, err
	}
	return TokenURL{u: *u}, nil
}

// URL returns a copy of the wrapped URL.
func (t TokenURL) URL() *url.URL {
	u := t.u
	return &u
}

func (t TokenURL) String() string { return t.u.String() }

// RedirectURL is the URL of the client's redirection endpoint.
type RedirectURL struct {
	u url.URL
}

// NewRedirectURL parses raw as an absolute URL and wraps it.
func NewRedirectURL(raw string) (RedirectURL, error) {
	u, err := parseAbsoluteURL("redirect", raw)
	if err != nil {
		return RedirectURL{}, err
	}
	return RedirectURL{u: *u}, nil
}

// URL returns a copy of the wrapped URL.
func (r RedirectURL) URL() *url.URL {
	u := r.u
	return &u
}

func (r RedirectURL) String() string { return r.u.String() }

func parseAbsoluteURL(kind, raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s URL: %w", kind, err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("%s URL must be absolute, got %q", kind, raw)
	}
	return u, nil
}

// Secret types wrap sensitive strings. The raw value is only reachable
// through Secret(); String and GoString always render the fixed redaction
// marker, so secrets cannot leak through fmt verbs, slog, or %#v dumps.

// ClientSecret is the client password issued to the client during the
// registration process described by RFC 6749 §2.2.
type ClientSecret struct {
	value string
}

// NewClientSecret wraps the given raw client secret.
func NewClientSecret(raw string) ClientSecret { return ClientSecret{value: raw} }

// Secret returns the raw value. Leaking it may compromise the security of
// the OAuth2 flow.
func (s ClientSecret) Secret() string { return s.value }

func (s ClientSecret) String() string { return "ClientSecret([redacted])" }

// GoString keeps %#v output redacted.
func (s ClientSecret) GoString() string { return "ClientSecret([redacted])" }

// AccessToken is the token returned by the token endpoint and used to
// access protected resources.
type AccessToken struct {
	value string
}

// NewAccessToken wraps the given raw access token.
func NewAccessToken(raw string) AccessToken { return AccessToken{value: raw} }

// Secret returns the raw value. Leaking it may compromise the security of
// the OAuth2 flow.
func (t AccessToken) Secret() string { return t.value }

func (t AccessToken) String() string { return "AccessToken([redacted])" }

// GoString keeps %#v output redacted.
func (t AccessToken) GoString() string { return "AccessToken([redacted])" }

// RefreshToken is the token used to obtain a new access token, if the
// authorization server issues one (RFC 6749 §6).
type RefreshToken struct {
	value string
}

// NewRefreshToken wraps the given raw refresh token.
func NewRefreshToken(raw string) RefreshToken { return RefreshToken{value: raw} }

// Secret returns the raw value. Leaking it may compromise the security of
// the OAuth2 flow.
func (t RefreshToken) Secret() string { return t.value }

func (t RefreshToken) String() string { return "RefreshToken([redacted])" }

// GoString keeps %#v output redacted.
func (t RefreshToken) GoString() string { return "RefreshToken([redacted])" }

// AuthorizationCode is the code returned from the authorization endpoint.
// Codes are single-use grant material, so treat them as secrets.
type AuthorizationCode struct {
	value string
}

// NewAuthorizationCode wraps the given raw authorization code.
func NewAuthorizationCode(raw string) AuthorizationCode {
	return AuthorizationCode{value: raw}
}

// Secret returns the raw value. Leaking it may compromise the security of
// the OAuth2 flow.
func (c AuthorizationCode) Secret() string { return c.value }

func (c AuthorizationCode) String() string { return "AuthorizationCode([redacted])" }

// GoString keeps %#v output redacted.
func (c AuthorizationCode) GoString() string { return "AuthorizationCode([redacted])" }

// CSRFToken is the opaque value round-tripped through the `state`
// parameter to detect cross-site request forgery (RFC 6749 §10.12).
type CSRFToken struct {
	value string
}

// NewCSRFToken wraps the given raw state value. Most callers should use
// GenerateCSRFToken instead.
func NewCSRFToken(raw string) CSRFToken { return CSRFToken{value: raw} }

// Secret returns the raw value. Leaking it may compromise the security of
// the OAuth2 flow.
func (t CSRFToken) Secret() string { return t.value }

func (t CSRFToken) String() string { return "CSRFToken([redacted])" }

// GoString keeps %#v output redacted.
func (t CSRFToken) GoString() string { return "CSRFToken([redacted])" }

// PKCECodeVerifier is the code verifier transmitted via the
// `code_verifier` parameter (RFC 7636). Verifiers must be 43-128
// characters of ASCII alphanumerics or "-" / "." / "_" / "~";
// GeneratePKCEVerifier produces conforming values.
type PKCECodeVerifier struct {
	value string
}

// NewPKCEVerifier wraps the given raw code verifier. Most callers should
// use GeneratePKCEVerifier instead.
func NewPKCEVerifier(raw string) PKCECodeVerifier { return PKCECodeVerifier{value: raw} }

// Secret returns the raw value. Leaking it may compromise the security of
// the OAuth2 flow.
func (v PKCECodeVerifier) Secret() string { return v.value }

func (v PKCECodeVerifier) String() string { return "PKCECodeVerifier([redacted])" }

// GoString keeps %#v output redacted.
func (v PKCECodeVerifier) GoString() string { return "PKCECodeVerifier([redacted])" }

// ResourceOwnerPassword is the resource owner's password used directly as
// an authorization grant in the password flow (RFC 6749 §4.3).
type ResourceOwnerPassword struct {
	value string
}

// NewResourceOwnerPassword wraps the given raw password.
func NewResourceOwnerPassword(raw string) ResourceOwnerPassword {
	return ResourceOwnerPassword{value: raw}
}

// Secret returns the raw value. Leaking it may compromise the security of
// the OAuth2 flow.
func (p ResourceOwnerPassword) Secret() string { return p.value }

func (p ResourceOwnerPassword) String() string { return "ResourceOwnerPassword([redacted])" }

// GoString keeps %#v output redacted.
func (p ResourceOwnerPassword) GoString() string { return "ResourceOwnerPassword([redacted])" }
