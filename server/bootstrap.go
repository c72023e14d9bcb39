package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jrsteele09/sage-gateway/auth"
	"github.com/jrsteele09/sage-gateway/identity"
	"github.com/jrsteele09/sage-gateway/internal/config"
	"github.com/jrsteele09/sage-gateway/token"
	"github.com/jrsteele09/sage-gateway/upstream"
	"github.com/rs/zerolog/log"
)

// NewFromConfig wires the production collaborators described by c into a Server.
func NewFromConfig(ctx context.Context, c config.Config) (*Server, error) {
	verifier, err := newIdentityVerifier(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("[Server NewFromConfig] identity verifier: %w", err)
	}

	codec := token.NewCodec(c.GetSigningSecret(), c.GetAllowedDomain(), token.WithTTL(c.GetSessionTTL()))
	httpClient := &http.Client{Timeout: c.GetUpstreamTimeout()}

	return New(c, Dependencies{
		Flow:        auth.NewFlowController(c, verifier, codec, auth.WithHTTPClient(httpClient)),
		Credentials: codec,
		Generator:   upstream.NewProxy(c, upstream.WithHTTPClient(httpClient)),
	})
}

func newIdentityVerifier(ctx context.Context, c config.OAuthConfig) (identity.Verifier, error) {
	if !c.GetVerifyIDTokenSignature() {
		return identity.NewAssertionDecoder(c.GetClientID(), time.Now), nil
	}
	log.Info().Str("issuer", c.GetIssuer()).Msg("ID token signatures will be verified against the provider keys")
	return identity.NewProviderVerifier(ctx, c.GetIssuer(), c.GetClientID())
}
