package insecure

import (
	"strings"
	"testing"

	oauth2 "github.com/giantswarm/oauth2-client"
)

func newTestClient(t *testing.T) *oauth2.Client {
	t.Helper()
	authURL, err := oauth2.NewAuthURL("http://authorize")
	if err != nil {
		t.Fatalf("NewAuthURL: %v", err)
	}
	return oauth2.NewClient(oauth2.ClientID("cid"), nil, authURL, nil)
}

func TestAuthorizeURLOmitsState(t *testing.T) {
	u := AuthorizeURL(newTestClient(t))

	want := "http://authorize?response_type=code&client_id=cid"
	if got := u.String(); got != want {
		t.Errorf("authorization URL = %s, want %s", got, want)
	}
	if strings.Contains(u.RawQuery, "state=") {
		t.Error("URL carries a state parameter")
	}
}

func TestAuthorizeURLImplicitOmitsState(t *testing.T) {
	u := AuthorizeURLImplicit(newTestClient(t))

	want := "http://authorize?response_type=token&client_id=cid"
	if got := u.String(); got != want {
		t.Errorf("authorization URL = %s, want %s", got, want)
	}
}

func TestAuthorizeURLExtraParams(t *testing.T) {
	u := AuthorizeURL(newTestClient(t), oauth2.Param{Key: "audience", Value: "https://api.example"})

	want := "http://authorize?response_type=code&client_id=cid&audience=https%3A%2F%2Fapi.example"
	if got := u.String(); got != want {
		t.Errorf("authorization URL = %s, want %s", got, want)
	}
}
