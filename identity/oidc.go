package identity

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
)

// SignedAssertionVerifier additionally checks the ID token signature against
// the provider's keys. It is opt-in; AssertionDecoder is the default.
type SignedAssertionVerifier struct {
	verifier *oidc.IDTokenVerifier
	clientID string
	now      func() time.Time
}

var _ Verifier = (*SignedAssertionVerifier)(nil)

// NewProviderVerifier discovers the provider's JWKS from its issuer URL.
func NewProviderVerifier(ctx context.Context, issuer, clientID string) (*SignedAssertionVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}
	return &SignedAssertionVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
		clientID: clientID,
		now:      time.Now,
	}, nil
}

// NewStaticKeyVerifier verifies against a fixed set of public keys.
func NewStaticKeyVerifier(issuer, clientID string, keys []crypto.PublicKey, now func() time.Time) *SignedAssertionVerifier {
	if now == nil {
		now = time.Now
	}
	keySet := &oidc.StaticKeySet{PublicKeys: keys}
	return &SignedAssertionVerifier{
		verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{ClientID: clientID, Now: now}),
		clientID: clientID,
		now:      now,
	}
}

func (v *SignedAssertionVerifier) Verify(ctx context.Context, rawIDToken string) (*Claims, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, classifyOIDCError(err)
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		return nil, apperrors.Join(apperrors.ErrMalformedToken, err)
	}
	// go-oidc still accepts exp == now.
	if err := checkClaims(&claims, v.clientID, v.now()); err != nil {
		return nil, err
	}
	return &claims, nil
}

func classifyOIDCError(err error) error {
	var expired *oidc.TokenExpiredError
	switch {
	case errors.As(err, &expired):
		return apperrors.Join(apperrors.ErrTokenExpired, err)
	case strings.Contains(err.Error(), "expected audience"):
		return apperrors.Join(apperrors.ErrInvalidAudience, err)
	case strings.Contains(err.Error(), "signature"):
		return apperrors.Join(apperrors.ErrInvalidSignature, err)
	default:
		return apperrors.Join(apperrors.ErrMalformedToken, err)
	}
}
