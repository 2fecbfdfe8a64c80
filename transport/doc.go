// Package transport builds HTTP clients suitable for token endpoint
// traffic.
//
// Clients returned by New never follow redirects (a redirect on a token
// response is not meaningful under RFC 6749), attach an X-Request-ID
// header to outbound requests for audit correlation, and can optionally
// rate-limit outbound requests and log request metadata.
package transport
