package oauth2

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateCSRFToken generates a random, base64url-encoded 128-bit CSRF
// state token.
//
// No uniqueness registry is kept; 128 bits of entropy make collisions
// statistically irrelevant. Verifying that the authorization server
// echoes the same value back is the caller's responsibility.
func GenerateCSRFToken() CSRFToken {
	return GenerateCSRFTokenLen(16)
}

// GenerateCSRFTokenLen generates a random CSRF state token from numBytes
// bytes of entropy, base64url-encoded without padding.
func GenerateCSRFTokenLen(numBytes int) CSRFToken {
	return NewCSRFToken(randomURLToken(numBytes))
}

// randomURLToken draws numBytes cryptographically random bytes and
// encodes them as unpadded base64url. It panics if the system RNG fails,
// which indicates a critical system-level security failure.
func randomURLToken(numBytes int) string {
	b := make([]byte, numBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
