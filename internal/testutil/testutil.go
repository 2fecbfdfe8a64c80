package testutil

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// CapturedRequest records the parts of a token request that tests assert
// on. Fields are populated by the server handler before it responds.
type CapturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

// NewTokenEndpoint starts a test server that answers every request with
// the given status and JSON body, capturing the last request received.
// The server is shut down when the test finishes.
func NewTokenEndpoint(t *testing.T, status int, body string) (*httptest.Server, *CapturedRequest) {
	t.Helper()

	captured := &CapturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqBody, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read request body: %v", err)
		}
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Header = r.Header.Clone()
		captured.Body = string(reqBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != "" {
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

// NewMockHTTPServer creates a test HTTP server with the given handler.
func NewMockHTTPServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// GenerateRandomString returns a random base64url string from n bytes of
// entropy.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
