// Package auth drives the Google authorization-code grant and turns a
// successful sign-in into a session credential.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jrsteele09/sage-gateway/identity"
	"github.com/jrsteele09/sage-gateway/internal/config"
	"github.com/jrsteele09/sage-gateway/oauthmodel"
	"github.com/jrsteele09/sage-gateway/token"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Minter issues session credentials.
type Minter interface {
	Mint(claims token.SessionClaims) (string, error)
}

// FlowController builds the authorization redirect and handles the callback.
// It keeps no state between the two legs.
type FlowController struct {
	oauth         *oauth2.Config
	request       oauthmodel.AuthorizationRequest
	verifier      identity.Verifier
	minter        Minter
	allowedDomain string
	appURL        string
	httpClient    *http.Client
}

// FlowOption configures a FlowController.
type FlowOption func(*FlowController)

// WithHTTPClient sets the client used for the token exchange.
func WithHTTPClient(c *http.Client) FlowOption {
	return func(f *FlowController) { f.httpClient = c }
}

func NewFlowController(cfg config.OAuthConfig, verifier identity.Verifier, minter Minter, opts ...FlowOption) *FlowController {
	request := oauthmodel.NewAuthorizationRequest(cfg.GetClientID(), cfg.GetRedirectURI(), cfg.GetAllowedDomain())
	f := &FlowController{
		oauth: &oauth2.Config{
			ClientID:     request.ClientID,
			ClientSecret: cfg.GetClientSecret(),
			RedirectURL:  request.RedirectURI,
			Scopes:       request.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.GetAuthURL(),
				TokenURL:  cfg.GetTokenURL(),
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		request:       request,
		verifier:      verifier,
		minter:        minter,
		allowedDomain: cfg.GetAllowedDomain(),
		appURL:        cfg.GetAppCallbackURL(),
		httpClient:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// BeginLogin returns the provider authorization URL. There is no state
// parameter: the flow is stateless and the callback trusts only the code.
func (f *FlowController) BeginLogin() string {
	return f.oauth.AuthCodeURL("", f.request.AuthCodeOptions()...)
}

// HandleCallback consumes the provider's callback query and returns the app
// URL to redirect to, carrying either token=<credential> or error=<kind>.
func (f *FlowController) HandleCallback(ctx context.Context, query url.Values) string {
	if providerErr := query.Get(oauthmodel.ParamError); providerErr != "" {
		log.Warn().Str("error", providerErr).Msg("Callback: provider returned an error")
		return f.redirectToApp(oauthmodel.ParamError, providerErr)
	}

	code := query.Get(oauthmodel.ParamCode)
	if code == "" {
		log.Warn().Msg("Callback: no authorization code")
		return f.redirectToApp(oauthmodel.ParamError, string(oauthmodel.ErrNoCode))
	}

	claims, err := f.exchange(ctx, code)
	if err != nil {
		log.Err(err).Msg("Callback: authentication failed")
		return f.redirectToApp(oauthmodel.ParamError, string(oauthmodel.ErrAuthFailed))
	}

	if f.allowedDomain == "" || claims.HostedDomain != f.allowedDomain {
		log.Warn().Str("email", claims.Email).Str("hd", claims.HostedDomain).Msg("Callback: account outside the allowed workspace")
		return f.redirectToApp(oauthmodel.ParamError, string(oauthmodel.ErrInvalidDomain))
	}

	credential, err := f.minter.Mint(token.SessionClaims{
		Email:        claims.Email,
		Name:         claims.Name,
		Picture:      claims.Picture,
		HostedDomain: claims.HostedDomain,
	})
	if err != nil {
		log.Err(err).Msg("Callback: failed to mint session token")
		return f.redirectToApp(oauthmodel.ParamError, string(oauthmodel.ErrAuthFailed))
	}

	log.Info().Str("email", claims.Email).Msg("Callback: session issued")
	return f.redirectToApp(oauthmodel.ParamToken, credential)
}

// exchange trades the code for tokens and verifies the returned ID token.
func (f *FlowController) exchange(ctx context.Context, code string) (*identity.Claims, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)

	tok, err := f.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	rawIDToken, ok := tok.Extra(oauthmodel.IDTokenField).(string)
	if !ok || rawIDToken == "" {
		return nil, ErrNoIDToken
	}

	claims, err := f.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("ID token verification failed: %w", err)
	}
	return claims, nil
}

func (f *FlowController) redirectToApp(key, value string) string {
	u, err := url.Parse(f.appURL)
	if err != nil {
		u = &url.URL{Path: f.appURL}
	}
	u.RawQuery = url.Values{key: {value}}.Encode()
	return u.String()
}
