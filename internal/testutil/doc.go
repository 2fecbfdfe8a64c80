// Package testutil provides testing helpers for the oauth2-client
// library.
package testutil
