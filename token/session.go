// Package token mints and verifies the gateway's own session credential: a
// compact HS256 token whose three segments are base64url without padding.
package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
)

// DefaultTTL is how long a minted credential stays valid.
const DefaultTTL = 24 * time.Hour

// SessionClaims is the payload of a session credential. Timestamps are unix seconds.
type SessionClaims struct {
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Picture      string `json:"picture,omitempty"`
	HostedDomain string `json:"hd"`
	IssuedAt     int64  `json:"iat"`
	ExpiresAt    int64  `json:"exp"`
}

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Codec mints and verifies session credentials.
type Codec struct {
	secret        string
	allowedDomain string
	ttl           time.Duration
	now           func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// NewCodec returns a codec signing with secret and accepting only allowedDomain.
// An empty secret is reported by every Mint and Verify call.
func NewCodec(secret, allowedDomain string, opts ...Option) *Codec {
	c := &Codec{
		secret:        secret,
		allowedDomain: allowedDomain,
		ttl:           DefaultTTL,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mint issues a credential for the identity in claims. IssuedAt and ExpiresAt
// are always set from the codec clock.
func (c *Codec) Mint(claims SessionClaims) (string, error) {
	if c.secret == "" {
		return "", apperrors.ErrMisconfiguredSigningKey
	}
	signer := NewHMACSigner(c.secret)

	now := c.now()
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(c.ttl).Unix()

	h, err := encodeSegment(header{Alg: signer.GetSigningMethod().Alg(), Typ: "JWT"})
	if err != nil {
		return "", apperrors.Wrapf(err, "encode header")
	}
	p, err := encodeSegment(claims)
	if err != nil {
		return "", apperrors.Wrapf(err, "encode claims")
	}

	signingString := h + "." + p
	sig, err := signer.Sign(signingString)
	if err != nil {
		return "", err
	}
	return signingString + "." + sig, nil
}

// Verify checks the credential signature, expiry and hosted domain and returns its claims.
func (c *Codec) Verify(credential string) (*SessionClaims, error) {
	if c.secret == "" {
		return nil, apperrors.ErrMisconfiguredSigningKey
	}
	if credential == "" {
		return nil, apperrors.ErrMissingCredential
	}

	parts := strings.Split(credential, ".")
	if len(parts) != 3 {
		return nil, apperrors.ErrMalformedToken
	}

	if !NewHMACSigner(c.secret).Verify(parts[0]+"."+parts[1], parts[2]) {
		return nil, apperrors.ErrInvalidSignature
	}

	var claims SessionClaims
	if err := decodeSegment(parts[1], &claims); err != nil {
		return nil, apperrors.Join(apperrors.ErrMalformedToken, err)
	}

	if claims.ExpiresAt <= c.now().Unix() {
		return nil, apperrors.ErrTokenExpired
	}
	// An unset allowed domain accepts nobody.
	if c.allowedDomain == "" || claims.HostedDomain != c.allowedDomain {
		return nil, apperrors.ErrDomainMismatch
	}
	return &claims, nil
}

func encodeSegment(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func decodeSegment(seg string, v any) error {
	b, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
