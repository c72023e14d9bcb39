package oauthmodel

import (
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Query parameter names used on the authorization redirect and the callback.
const (
	ParamCode         = "code"
	ParamError        = "error"
	ParamToken        = "token"
	ParamHostedDomain = "hd"
	ParamAccessType   = "access_type"
	ParamPrompt       = "prompt"
)

// DefaultScopes are requested on every login.
var DefaultScopes = []string{oidc.ScopeOpenID, "email", "profile"}

// AuthorizationRequest holds the parameters of the redirect to the identity
// provider's authorization endpoint. It is built per login attempt and never stored.
type AuthorizationRequest struct {
	// ClientID identifies the gateway to Google.
	// Required: Yes
	// Example: "1234-abc.apps.googleusercontent.com"
	ClientID string

	// RedirectURI is where Google sends the user back with a code.
	// Required: Yes
	// Example: "https://gateway.example.com/auth/callback"
	// Security: Must exactly match the URI registered with Google
	RedirectURI string

	// Scopes requested for the ID token.
	// Example: ["openid", "email", "profile"]
	Scopes []string

	// HostedDomain is a hint restricting the account chooser to one workspace.
	// Example: "org.com"
	// Security: Only a hint. The hd claim is enforced after the code exchange.
	HostedDomain string

	// ResponseType is always "code".
	ResponseType ResponseType

	// AccessType is always "online".
	AccessType AccessType

	// Prompt is always "select_account".
	Prompt Prompt
}

// NewAuthorizationRequest returns the request the gateway sends for every login.
func NewAuthorizationRequest(clientID, redirectURI, hostedDomain string) AuthorizationRequest {
	scopes := make([]string, len(DefaultScopes))
	copy(scopes, DefaultScopes)
	return AuthorizationRequest{
		ClientID:     clientID,
		RedirectURI:  redirectURI,
		Scopes:       scopes,
		HostedDomain: hostedDomain,
		ResponseType: CodeResponseType,
		AccessType:   OnlineAccessType,
		Prompt:       SelectAccountPrompt,
	}
}

// AuthCodeOptions returns the provider specific parameters that oauth2.Config
// does not set itself.
func (a AuthorizationRequest) AuthCodeOptions() []oauth2.AuthCodeOption {
	return []oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam(ParamHostedDomain, a.HostedDomain),
		oauth2.SetAuthURLParam(ParamAccessType, string(a.AccessType)),
		oauth2.SetAuthURLParam(ParamPrompt, string(a.Prompt)),
	}
}
