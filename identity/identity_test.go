package identity_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/sage-gateway/identity"
	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://accounts.google.com"
	testClientID = "client-123.apps.googleusercontent.com"
)

var fixedNow = time.Unix(1_750_000_000, 0)

func nowFunc() time.Time { return fixedNow }

func idClaims(aud string, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":     testIssuer,
		"sub":     "10769150350006150715113082367",
		"aud":     aud,
		"email":   "a@org.com",
		"name":    "Ada Lovelace",
		"picture": "https://example.com/a.png",
		"hd":      "org.com",
		"iat":     exp.Add(-time.Hour).Unix(),
		"exp":     exp.Unix(),
	}
}

func signRS256(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return raw
}

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func TestAssertionDecoder(t *testing.T) {
	key := newKey(t)
	d := identity.NewAssertionDecoder(testClientID, nowFunc)
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		claims, err := d.Verify(ctx, signRS256(t, key, idClaims(testClientID, fixedNow.Add(time.Hour))))
		require.NoError(t, err)
		require.Equal(t, "a@org.com", claims.Email)
		require.Equal(t, "Ada Lovelace", claims.Name)
		require.Equal(t, "https://example.com/a.png", claims.Picture)
		require.Equal(t, "org.com", claims.HostedDomain)
	})

	t.Run("signature is not checked", func(t *testing.T) {
		raw := signRS256(t, newKey(t), idClaims(testClientID, fixedNow.Add(time.Hour)))
		_, err := d.Verify(ctx, raw)
		require.NoError(t, err)
	})

	t.Run("wrong audience", func(t *testing.T) {
		_, err := d.Verify(ctx, signRS256(t, key, idClaims("someone-else", fixedNow.Add(time.Hour))))
		require.ErrorIs(t, err, apperrors.ErrInvalidAudience)
	})

	t.Run("multiple audiences", func(t *testing.T) {
		c := idClaims(testClientID, fixedNow.Add(time.Hour))
		c["aud"] = []string{testClientID, "other"}
		_, err := d.Verify(ctx, signRS256(t, key, c))
		require.ErrorIs(t, err, apperrors.ErrInvalidAudience)
	})

	t.Run("expiry equal to now", func(t *testing.T) {
		_, err := d.Verify(ctx, signRS256(t, key, idClaims(testClientID, fixedNow)))
		require.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := d.Verify(ctx, signRS256(t, key, idClaims(testClientID, fixedNow.Add(-time.Minute))))
		require.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("missing expiry", func(t *testing.T) {
		c := idClaims(testClientID, fixedNow.Add(time.Hour))
		delete(c, "exp")
		_, err := d.Verify(ctx, signRS256(t, key, c))
		require.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "a.b", "a.b.c.d", "eyJhbGciOiJSUzI1NiJ9.!!!.sig"} {
			_, err := d.Verify(ctx, raw)
			require.ErrorIs(t, err, apperrors.ErrMalformedToken, raw)
		}
	})

	t.Run("no client id configured", func(t *testing.T) {
		_, err := identity.NewAssertionDecoder("", nowFunc).Verify(ctx, signRS256(t, key, idClaims("", fixedNow.Add(time.Hour))))
		require.ErrorIs(t, err, apperrors.ErrInvalidAudience)
	})
}

func TestSignedAssertionVerifier(t *testing.T) {
	key := newKey(t)
	v := identity.NewStaticKeyVerifier(testIssuer, testClientID, []crypto.PublicKey{key.Public()}, nowFunc)
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		claims, err := v.Verify(ctx, signRS256(t, key, idClaims(testClientID, fixedNow.Add(time.Hour))))
		require.NoError(t, err)
		require.Equal(t, "a@org.com", claims.Email)
		require.Equal(t, "org.com", claims.HostedDomain)
	})

	t.Run("foreign key", func(t *testing.T) {
		_, err := v.Verify(ctx, signRS256(t, newKey(t), idClaims(testClientID, fixedNow.Add(time.Hour))))
		require.ErrorIs(t, err, apperrors.ErrInvalidSignature)
	})

	t.Run("wrong audience", func(t *testing.T) {
		_, err := v.Verify(ctx, signRS256(t, key, idClaims("someone-else", fixedNow.Add(time.Hour))))
		require.ErrorIs(t, err, apperrors.ErrInvalidAudience)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := v.Verify(ctx, signRS256(t, key, idClaims(testClientID, fixedNow.Add(-time.Minute))))
		require.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("expiry equal to now", func(t *testing.T) {
		_, err := v.Verify(ctx, signRS256(t, key, idClaims(testClientID, fixedNow)))
		require.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := v.Verify(ctx, "not-a-token")
		require.ErrorIs(t, err, apperrors.ErrMalformedToken)
	})
}
