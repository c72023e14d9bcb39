package oauthmodel

// IDTokenField is the token endpoint response member carrying the ID token.
const IDTokenField = "id_token"

// TokenResponse is the token endpoint answer to an authorization_code grant
// as defined in RFC 6749 and OpenID Connect Core.
type TokenResponse struct {
	// AccessToken grants access to Google APIs. Unused by the gateway.
	AccessToken string `json:"access_token,omitempty"`

	// IDToken is the identity assertion decoded by the identity verifier.
	IDToken string `json:"id_token,omitempty"`

	// TokenType is "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int `json:"expires_in,omitempty"`

	// Scope is the space separated list of granted scopes.
	Scope string `json:"scope,omitempty"`
}
