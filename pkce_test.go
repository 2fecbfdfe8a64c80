package oauth2

import (
	"strings"
	"testing"
)

func TestGeneratePKCEVerifierDefaultLength(t *testing.T) {
	v := GeneratePKCEVerifier()
	// 32 bytes of entropy encode to 43 characters, the RFC 7636 minimum.
	if got := len(v.Secret()); got != 43 {
		t.Errorf("verifier length = %d, want 43", got)
	}
}

func TestGeneratePKCEVerifierLenBounds(t *testing.T) {
	tests := []struct {
		numBytes int
		wantLen  int
	}{
		{32, 43},
		{48, 64},
		{96, 128},
	}

	for _, tt := range tests {
		v := GeneratePKCEVerifierLen(tt.numBytes)
		if got := len(v.Secret()); got != tt.wantLen {
			t.Errorf("GeneratePKCEVerifierLen(%d) length = %d, want %d", tt.numBytes, got, tt.wantLen)
		}
	}
}

func TestGeneratePKCEVerifierLenPanicsOutOfRange(t *testing.T) {
	for _, numBytes := range []int{0, 31, 97, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("GeneratePKCEVerifierLen(%d) did not panic", numBytes)
				}
			}()
			GeneratePKCEVerifierLen(numBytes)
		}()
	}
}

func TestPKCEVerifierCharset(t *testing.T) {
	const allowed = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	v := GeneratePKCEVerifierLen(96)
	for _, c := range v.Secret() {
		if !strings.ContainsRune(allowed, c) {
			t.Errorf("verifier contains character %q outside the base64url alphabet", c)
		}
	}
}

func TestPKCEChallengeKnownVector(t *testing.T) {
	// Verifier and challenge from RFC 7636 appendix B.
	v := NewPKCEVerifier("dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk")
	want := PKCECodeChallenge("E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cU")

	if got := v.Challenge(); got != want {
		t.Errorf("Challenge() = %s, want %s", got, want)
	}
}

func TestPKCEChallengeDeterministic(t *testing.T) {
	v := GeneratePKCEVerifier()
	if v.Challenge() != v.Challenge() {
		t.Error("Challenge() is not deterministic for the same verifier")
	}

	other := GeneratePKCEVerifier()
	if v.Challenge() == other.Challenge() {
		t.Error("distinct verifiers produced the same challenge")
	}
}

func TestPKCEChallengeMethod(t *testing.T) {
	if got := GeneratePKCEVerifier().ChallengeMethod(); got != "S256" {
		t.Errorf("ChallengeMethod() = %s, want S256", got)
	}
}

func TestPKCEAuthorizationParamsOrder(t *testing.T) {
	v := NewPKCEVerifier("dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk")

	params := v.AuthorizationParams()
	if len(params) != 2 {
		t.Fatalf("got %d params, want 2", len(params))
	}
	if params[0].Key != "code_challenge_method" || params[0].Value != "S256" {
		t.Errorf("params[0] = %v, want code_challenge_method=S256", params[0])
	}
	if params[1].Key != "code_challenge" || params[1].Value != string(v.Challenge()) {
		t.Errorf("params[1] = %v, want code_challenge=%s", params[1], v.Challenge())
	}
}

func TestGenerateCSRFToken(t *testing.T) {
	token := GenerateCSRFToken()
	// 16 bytes of entropy encode to 22 characters.
	if got := len(token.Secret()); got != 22 {
		t.Errorf("CSRF token length = %d, want 22", got)
	}

	if GenerateCSRFToken() == GenerateCSRFToken() {
		t.Error("consecutive CSRF tokens are identical")
	}
}

func TestGenerateCSRFTokenLen(t *testing.T) {
	token := GenerateCSRFTokenLen(32)
	if got := len(token.Secret()); got != 43 {
		t.Errorf("CSRF token length = %d, want 43", got)
	}
}
