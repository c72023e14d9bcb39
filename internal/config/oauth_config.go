package config

const (
	googleClientIDVar     = "GOOGLE_CLIENT_ID"
	googleClientSecretVar = "GOOGLE_CLIENT_SECRET"
	redirectURIVar        = "REDIRECT_URI"
	workspaceDomainVar    = "WORKSPACE_DOMAIN"
)

// Google production endpoints
const (
	GoogleAuthURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	GoogleTokenURL = "https://oauth2.googleapis.com/token"
	GoogleIssuer   = "https://accounts.google.com"

	DefaultAppCallbackURL = "https://your-app-domain.com/auth-callback.html"
)

type OAuthConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetRedirectURI() string
	GetAllowedDomain() string
	GetAppCallbackURL() string
	GetAuthURL() string
	GetTokenURL() string
	GetIssuer() string
	GetVerifyIDTokenSignature() bool
}

type OAuth struct {
	ClientID               string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret           string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURI            string `env:"REDIRECT_URI"`
	WorkspaceDomain        string `env:"WORKSPACE_DOMAIN"`
	AppCallbackURL         string `env:"APP_CALLBACK_URL"`
	AuthURL                string `env:"GOOGLE_AUTH_URL"`
	TokenURL               string `env:"GOOGLE_TOKEN_URL"`
	Issuer                 string `env:"GOOGLE_ISSUER"`
	VerifyIDTokenSignature bool   `env:"GOOGLE_VERIFY_ID_TOKEN_SIGNATURE"`
}

var _ OAuthConfig = OAuth{}

func (o OAuth) GetClientID() string {
	return o.ClientID
}

func (o OAuth) GetClientSecret() string {
	return o.ClientSecret
}

func (o OAuth) GetRedirectURI() string {
	return o.RedirectURI
}

// GetAllowedDomain is the only Google Workspace hosted domain that may sign in.
func (o OAuth) GetAllowedDomain() string {
	return o.WorkspaceDomain
}

func (o OAuth) GetAppCallbackURL() string {
	return valueOr(o.AppCallbackURL, DefaultAppCallbackURL)
}

func (o OAuth) GetAuthURL() string {
	return valueOr(o.AuthURL, GoogleAuthURL)
}

func (o OAuth) GetTokenURL() string {
	return valueOr(o.TokenURL, GoogleTokenURL)
}

func (o OAuth) GetIssuer() string {
	return valueOr(o.Issuer, GoogleIssuer)
}

// GetVerifyIDTokenSignature enables checking the ID token against the
// provider's published keys. Off by default.
func (o OAuth) GetVerifyIDTokenSignature() bool {
	return o.VerifyIDTokenSignature
}
