package oauth2

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// pkceChallengeMethodS256 is the only challenge method this package
// implements. The "plain" method is deliberately unsupported (RFC 7636
// §4.2 only permits it when S256 is technically infeasible).
const pkceChallengeMethodS256 = "S256"

// GeneratePKCEVerifier generates a random, base64url-encoded PKCE code
// verifier from 32 bytes of entropy, yielding a 43-character verifier.
func GeneratePKCEVerifier() PKCECodeVerifier {
	return GeneratePKCEVerifierLen(32)
}

// GeneratePKCEVerifierLen generates a random PKCE code verifier from
// numBytes bytes of entropy.
//
// numBytes must be in [32, 96]. RFC 7636 requires the encoded verifier to
// be 43-128 characters, which that byte range guarantees. Values outside
// the range can only come from a hard-coded caller mistake, so they panic
// rather than returning an error.
func GeneratePKCEVerifierLen(numBytes int) PKCECodeVerifier {
	if numBytes < 32 || numBytes > 96 {
		panic(fmt.Sprintf("oauth2: PKCE verifier byte length must be in [32, 96], got %d", numBytes))
	}
	code := randomURLToken(numBytes)
	if len(code) < 43 || len(code) > 128 {
		panic(fmt.Sprintf("oauth2: generated PKCE verifier has invalid length %d", len(code)))
	}
	return NewPKCEVerifier(code)
}

// Challenge returns the S256 code challenge for the verifier: the
// unpadded base64url encoding of the SHA-256 digest of the verifier's
// raw bytes. The challenge is a pure function of the verifier.
func (v PKCECodeVerifier) Challenge() PKCECodeChallenge {
	digest := sha256.Sum256([]byte(v.Secret()))
	return PKCECodeChallenge(base64.RawURLEncoding.EncodeToString(digest[:]))
}

// ChallengeMethod returns the code challenge method for this verifier,
// always "S256".
func (v PKCECodeVerifier) ChallengeMethod() PKCECodeChallengeMethod {
	return PKCECodeChallengeMethod(pkceChallengeMethodS256)
}

// AuthorizationParams returns the extension parameters to merge into an
// authorization URL for this verifier, in wire order:
// code_challenge_method, then code_challenge.
func (v PKCECodeVerifier) AuthorizationParams() []Param {
	return []Param{
		{Key: "code_challenge_method", Value: string(v.ChallengeMethod())},
		{Key: "code_challenge", Value: string(v.Challenge())},
	}
}
