package oauth2

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStandardTokenResponseUnmarshal(t *testing.T) {
	var resp StandardTokenResponse
	body := `{"access_token":"abc","token_type":"bearer","expires_in":3600,"refresh_token":"rt","scope":"read write"}`
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got := resp.AccessToken().Secret(); got != "abc" {
		t.Errorf("access token = %q, want abc", got)
	}
	if got := resp.TokenType(); got != TokenTypeBearer {
		t.Errorf("token type = %q, want bearer", got)
	}
	expires, ok := resp.ExpiresIn()
	if !ok || expires != time.Hour {
		t.Errorf("expires in = %v/%v, want 1h", expires, ok)
	}
	refresh, ok := resp.RefreshToken()
	if !ok || refresh.Secret() != "rt" {
		t.Errorf("refresh token = %v/%v, want rt", refresh, ok)
	}
	scopes := resp.Scopes()
	if len(scopes) != 2 || scopes[0] != "read" || scopes[1] != "write" {
		t.Errorf("scopes = %v, want [read write]", scopes)
	}
}

func TestStandardTokenResponseOptionalFieldsAbsent(t *testing.T) {
	var resp StandardTokenResponse
	if err := json.Unmarshal([]byte(`{"access_token":"abc","token_type":"bearer"}`), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if _, ok := resp.ExpiresIn(); ok {
		t.Error("ExpiresIn reported a lifetime for a response without expires_in")
	}
	if _, ok := resp.RefreshToken(); ok {
		t.Error("RefreshToken reported a token for a response without refresh_token")
	}
	if resp.Scopes() != nil {
		t.Errorf("Scopes() = %v, want nil for a response without scope", resp.Scopes())
	}
}

func TestStandardTokenResponseRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing access_token", `{"token_type":"bearer"}`},
		{"missing token_type", `{"access_token":"abc"}`},
		{"empty object", `{}`},
		{"not json", `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp StandardTokenResponse
			if err := json.Unmarshal([]byte(tt.body), &resp); err == nil {
				t.Errorf("Unmarshal(%s) succeeded, want error", tt.body)
			}
		})
	}
}

func TestTokenTypeCaseFolding(t *testing.T) {
	tests := []struct {
		wire string
		want TokenType
	}{
		{"bearer", TokenTypeBearer},
		{"Bearer", TokenTypeBearer},
		{"BEARER", TokenTypeBearer},
		{"mac", TokenTypeMac},
		{"MAC", TokenTypeMac},
	}

	for _, tt := range tests {
		var resp StandardTokenResponse
		body := `{"access_token":"abc","token_type":"` + tt.wire + `"}`
		if err := json.Unmarshal([]byte(body), &resp); err != nil {
			t.Errorf("Unmarshal with token_type %q: %v", tt.wire, err)
			continue
		}
		if got := resp.TokenType(); got != tt.want {
			t.Errorf("token type for wire %q = %q, want %q", tt.wire, got, tt.want)
		}
	}
}

func TestUnknownTokenTypeRejected(t *testing.T) {
	var resp StandardTokenResponse
	err := json.Unmarshal([]byte(`{"access_token":"abc","token_type":"dpop"}`), &resp)
	if err == nil {
		t.Fatal("unrecognized token type was accepted")
	}
}

func TestScopeSplitting(t *testing.T) {
	tests := []struct {
		name string
		wire string
		want []Scope
	}{
		{"single", "read", []Scope{"read"}},
		{"multiple in order", "write read admin", []Scope{"write", "read", "admin"}},
		// An empty scope string is still a reported scope field; it splits
		// to a single empty scope rather than disappearing.
		{"empty string", "", []Scope{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp StandardTokenResponse
			body := `{"access_token":"abc","token_type":"bearer","scope":"` + tt.wire + `"}`
			if err := json.Unmarshal([]byte(body), &resp); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			got := resp.Scopes()
			if len(got) != len(tt.want) {
				t.Fatalf("scopes = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("scopes[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStandardTokenResponseMarshalRoundTrip(t *testing.T) {
	body := `{"access_token":"abc","token_type":"bearer","expires_in":3600,"refresh_token":"rt","scope":"read write"}`

	var resp StandardTokenResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	out, err := json.Marshal(&resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var again StandardTokenResponse
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("Unmarshal round trip: %v", err)
	}
	if again.AccessToken() != resp.AccessToken() {
		t.Error("access token did not survive the round trip")
	}
	if got := again.Scopes(); len(got) != 2 || got[0] != "read" || got[1] != "write" {
		t.Errorf("scopes after round trip = %v", got)
	}
}

func TestStandardTokenResponseMarshalOmitsAbsentFields(t *testing.T) {
	var resp StandardTokenResponse
	if err := json.Unmarshal([]byte(`{"access_token":"abc","token_type":"bearer"}`), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	out, err := json.Marshal(&resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `{"access_token":"abc","token_type":"bearer"}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}
