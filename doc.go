// Package oauth2 implements the client side of the OAuth2 Authorization
// Framework (RFC 6749) with PKCE (RFC 7636) and CSRF state support.
//
// It covers the four standard grant types (authorization code, implicit,
// resource owner password, client credentials) and the refresh token
// flow: building authorization URLs, executing token requests with
// correct client authentication, and parsing success and error responses
// into typed results.
//
// # Authorization Code Grant
//
//	secret := oauth2.NewClientSecret(os.Getenv("CLIENT_SECRET"))
//	authURL, err := oauth2.NewAuthURL("https://provider.example/authorize")
//	if err != nil {
//		log.Fatal(err)
//	}
//	tokenURL, err := oauth2.NewTokenURL("https://provider.example/token")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client := oauth2.NewClient(oauth2.ClientID("client_id"), &secret, authURL, &tokenURL).
//		AddScope("read").
//		AddScope("write")
//
//	// Generate the authorization URL and redirect the user to it. Keep
//	// the returned state: when the user comes back, the state echoed by
//	// the authorization server must match it.
//	url, state := client.AuthorizeURL(oauth2.GenerateCSRFToken)
//
//	// After the user authorizes, trade the returned code for a token.
//	token, err := client.ExchangeCode(oauth2.NewAuthorizationCode(code)).
//		Execute(ctx)
//
// # PKCE
//
// Public clients should protect the code exchange with PKCE:
//
//	verifier := oauth2.GeneratePKCEVerifier()
//	url, state := client.AuthorizeURL(oauth2.GenerateCSRFToken, verifier.AuthorizationParams()...)
//	// ...
//	token, err := client.ExchangeCode(code).
//		Param("code_verifier", verifier.Secret()).
//		Execute(ctx)
//
// # Other grants
//
// Client.ExchangePassword, Client.ExchangeClientCredentials, and
// Client.ExchangeRefreshToken cover the remaining flows; each returns a
// single-use TokenRequest executed the same way.
//
// Secret material (tokens, secrets, verifiers, state) is held in wrapper
// types that render as "<TypeName>([redacted])" under every fmt verb, so
// it cannot leak through logs or debug output; the raw value is only
// available through an explicit Secret() call.
package oauth2
