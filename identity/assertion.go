// Package identity decodes the ID token returned by the identity provider's
// token endpoint and checks the few claims the gateway relies on.
package identity

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
)

// Claims is the decoded ID token payload.
type Claims struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Picture      string `json:"picture,omitempty"`
	HostedDomain string `json:"hd,omitempty"`
	jwt.RegisteredClaims
}

// Verifier turns a raw ID token into trusted claims.
type Verifier interface {
	Verify(ctx context.Context, rawIDToken string) (*Claims, error)
}

// AssertionDecoder reads the ID token payload without checking its signature.
// The token is only ever obtained from a direct TLS exchange with the
// provider's token endpoint, so the transport is what is trusted here.
type AssertionDecoder struct {
	clientID string
	now      func() time.Time
}

var _ Verifier = (*AssertionDecoder)(nil)

// NewAssertionDecoder accepts tokens whose audience is clientID.
func NewAssertionDecoder(clientID string, now func() time.Time) *AssertionDecoder {
	if now == nil {
		now = time.Now
	}
	return &AssertionDecoder{clientID: clientID, now: now}
}

func (d *AssertionDecoder) Verify(_ context.Context, rawIDToken string) (*Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(rawIDToken, &claims); err != nil {
		return nil, apperrors.Join(apperrors.ErrMalformedToken, err)
	}
	if err := checkClaims(&claims, d.clientID, d.now()); err != nil {
		return nil, err
	}
	return &claims, nil
}

// checkClaims enforces a single audience equal to clientID and an expiry
// strictly after now, both at whole second precision.
func checkClaims(claims *Claims, clientID string, now time.Time) error {
	if clientID == "" || len(claims.Audience) != 1 || claims.Audience[0] != clientID {
		return apperrors.ErrInvalidAudience
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Unix() <= now.Unix() {
		return apperrors.ErrTokenExpired
	}
	return nil
}
