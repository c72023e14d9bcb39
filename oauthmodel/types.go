package oauthmodel

// ResponseType represents the OAuth 2.0 response type.
// Determines what is returned from the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType indicates the authorization code flow.
	// The only flow the gateway drives: Google returns a code to REDIRECT_URI
	// which is exchanged server-to-server for tokens.
	CodeResponseType ResponseType = "code"
)

// AccessType tells Google whether a refresh token should be issued.
type AccessType string

const (
	// OnlineAccessType asks for no refresh token. The gateway only needs the
	// ID token once, at login.
	OnlineAccessType AccessType = "online"
)

// Prompt controls which screens Google shows during sign-in.
type Prompt string

const (
	// SelectAccountPrompt always shows the account chooser so a user signed
	// into a personal account can pick the workspace one.
	SelectAccountPrompt Prompt = "select_account"
)

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Token request includes: code, client_id, client_secret, redirect_uri
	// Returns: access_token, id_token
	AuthorizationCodeGrant GrantType = "authorization_code"
)
