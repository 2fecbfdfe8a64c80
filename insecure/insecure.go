// Package insecure builds authorization URLs without CSRF protection.
//
// The URLs produced here omit the `state` parameter and are therefore
// vulnerable to cross-site request forgery (RFC 6749 §10.12). This
// package exists so that trade-off is explicit at the call site; almost
// all applications should use Client.AuthorizeURL or
// Client.AuthorizeURLImplicit instead.
package insecure

import (
	"net/url"

	oauth2 "github.com/giantswarm/oauth2-client"
)

// AuthorizeURL produces the authorization URL for the Authorization Code
// Grant (RFC 6749 §4.1) with no CSRF state.
//
// Security warning: prefer Client.AuthorizeURL, which embeds and returns
// a state token for the caller to verify.
func AuthorizeURL(c *oauth2.Client, extra ...oauth2.Param) *url.URL {
	return c.AuthorizeURLWithParams(oauth2.ResponseTypeCode, nil, extra...)
}

// AuthorizeURLImplicit produces the authorization URL for the Implicit
// Grant (RFC 6749 §4.2) with no CSRF state.
//
// Security warning: prefer Client.AuthorizeURLImplicit, which embeds and
// returns a state token for the caller to verify.
func AuthorizeURLImplicit(c *oauth2.Client, extra ...oauth2.Param) *url.URL {
	return c.AuthorizeURLWithParams(oauth2.ResponseTypeToken, nil, extra...)
}
