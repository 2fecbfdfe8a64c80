package oauth2

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TokenType is the token-type scheme issued with an access token
// (RFC 6749 §7.1). The wire value is case-insensitive and folded to
// lowercase before matching.
type TokenType string

// Token types this package recognizes.
const (
	// TokenTypeBearer: OAuth 2.0 Bearer tokens (RFC 6750).
	TokenTypeBearer TokenType = "bearer"

	// TokenTypeMac: OAuth 2.0 Message Authentication Code tokens
	// (draft-ietf-oauth-v2-http-mac).
	TokenTypeMac TokenType = "mac"
)

// TokenResponse is the capability interface for a successful token
// endpoint response (RFC 6749 §5.1). It exists separately from
// StandardTokenResponse so callers can substitute extended response
// shapes for non-standards-compliant servers without touching the
// request builder; see TokenRequest.ExecuteAs.
type TokenResponse interface {
	// AccessToken returns the access token issued by the authorization
	// server. REQUIRED.
	AccessToken() AccessToken

	// TokenType returns the type of the issued token. REQUIRED.
	TokenType() TokenType

	// ExpiresIn returns the lifetime of the access token, if the server
	// reported one.
	ExpiresIn() (time.Duration, bool)

	// RefreshToken returns the refresh token, if the server issued one.
	RefreshToken() (RefreshToken, bool)

	// Scopes returns the granted scopes in server order, or nil if the
	// response carried no scope field. A nil result means "not reported",
	// which is distinct from an empty list.
	Scopes() []Scope
}

// StandardTokenResponse is the standard RFC 6749 §5.1 token response.
// The zero value is not meaningful; populate it by unmarshaling a token
// endpoint response body.
type StandardTokenResponse struct {
	accessToken  AccessToken
	tokenType    TokenType
	expiresIn    *uint64
	refreshToken *RefreshToken
	scopes       []Scope
}

var _ TokenResponse = (*StandardTokenResponse)(nil)

// AccessToken returns the issued access token.
func (r *StandardTokenResponse) AccessToken() AccessToken { return r.accessToken }

// TokenType returns the issued token type.
func (r *StandardTokenResponse) TokenType() TokenType { return r.tokenType }

// ExpiresIn returns the access token lifetime, if reported.
func (r *StandardTokenResponse) ExpiresIn() (time.Duration, bool) {
	if r.expiresIn == nil {
		return 0, false
	}
	return time.Duration(*r.expiresIn) * time.Second, true
}

// RefreshToken returns the refresh token, if one was issued.
func (r *StandardTokenResponse) RefreshToken() (RefreshToken, bool) {
	if r.refreshToken == nil {
		return RefreshToken{}, false
	}
	return *r.refreshToken, true
}

// Scopes returns the granted scopes, or nil if the server reported none.
func (r *StandardTokenResponse) Scopes() []Scope { return r.scopes }

// UnmarshalJSON decodes the RFC 6749 §5.1 wire form. access_token and
// token_type are mandatory; their absence is a decode failure, not a
// valid empty value. The scope field, when present, is split on single
// spaces into an ordered scope list.
func (r *StandardTokenResponse) UnmarshalJSON(data []byte) error {
	var wire struct {
		AccessToken  *string `json:"access_token"`
		TokenType    *string `json:"token_type"`
		ExpiresIn    *uint64 `json:"expires_in"`
		RefreshToken *string `json:"refresh_token"`
		Scope        *string `json:"scope"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.AccessToken == nil {
		return fmt.Errorf("token response is missing the required \"access_token\" field")
	}
	if wire.TokenType == nil {
		return fmt.Errorf("token response is missing the required \"token_type\" field")
	}

	tokenType, err := parseTokenType(*wire.TokenType)
	if err != nil {
		return err
	}

	r.accessToken = NewAccessToken(*wire.AccessToken)
	r.tokenType = tokenType
	r.expiresIn = wire.ExpiresIn

	r.refreshToken = nil
	if wire.RefreshToken != nil {
		token := NewRefreshToken(*wire.RefreshToken)
		r.refreshToken = &token
	}

	r.scopes = nil
	if wire.Scope != nil {
		r.scopes = splitScopes(*wire.Scope)
	}
	return nil
}

// MarshalJSON emits the RFC 6749 §5.1 wire form, re-joining scopes with
// single spaces and omitting absent optional fields.
func (r *StandardTokenResponse) MarshalJSON() ([]byte, error) {
	wire := struct {
		AccessToken  string  `json:"access_token"`
		TokenType    string  `json:"token_type"`
		ExpiresIn    *uint64 `json:"expires_in,omitempty"`
		RefreshToken *string `json:"refresh_token,omitempty"`
		Scope        *string `json:"scope,omitempty"`
	}{
		AccessToken: r.accessToken.Secret(),
		TokenType:   string(r.tokenType),
		ExpiresIn:   r.expiresIn,
	}
	if r.refreshToken != nil {
		secret := r.refreshToken.Secret()
		wire.RefreshToken = &secret
	}
	if r.scopes != nil {
		joined := joinScopes(r.scopes)
		wire.Scope = &joined
	}
	return json.Marshal(wire)
}

// parseTokenType folds the wire value to lowercase and matches it against
// the recognized token types. Unknown types are rejected: unlike error
// codes, token_type has no server-specific catch-all.
func parseTokenType(wire string) (TokenType, error) {
	switch TokenType(strings.ToLower(wire)) {
	case TokenTypeBearer:
		return TokenTypeBearer, nil
	case TokenTypeMac:
		return TokenTypeMac, nil
	}
	return "", fmt.Errorf("unrecognized token type %q", wire)
}

func splitScopes(joined string) []Scope {
	parts := strings.Split(joined, " ")
	scopes := make([]Scope, len(parts))
	for i, p := range parts {
		scopes[i] = Scope(p)
	}
	return scopes
}

func joinScopes(scopes []Scope) string {
	parts := make([]string, len(scopes))
	for i, s := range scopes {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}
