package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
	"github.com/jrsteele09/sage-gateway/token"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyClaims stores the verified session claims
	ContextKeyClaims ContextKey = "claims"
)

const bearerPrefix = "Bearer "

// errNoBearer is the cause when the Authorization header is absent or not a bearer credential.
var errNoBearer = errors.New("missing or malformed Authorization header")

// CredentialVerifier checks a session credential. Implemented by token.Codec.
type CredentialVerifier interface {
	Verify(credential string) (*token.SessionClaims, error)
}

// AuthError is returned by SessionGate.Authenticate. It matches
// apperrors.ErrUnauthorized and its cause with errors.Is.
type AuthError struct {
	Cause error
}

func (e *AuthError) Error() string {
	return apperrors.ErrUnauthorized.Error() + ": " + e.Cause.Error()
}

func (e *AuthError) Unwrap() []error {
	return []error{apperrors.ErrUnauthorized, e.Cause}
}

// SessionGate authenticates requests carrying a session credential.
type SessionGate struct {
	verifier CredentialVerifier
}

func NewSessionGate(verifier CredentialVerifier) *SessionGate {
	return &SessionGate{verifier: verifier}
}

// Authenticate requires an "Authorization: Bearer <credential>" header and
// returns the verified claims.
func (g *SessionGate) Authenticate(r *http.Request) (*token.SessionClaims, error) {
	credential, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
	if !ok {
		return nil, &AuthError{Cause: errNoBearer}
	}
	claims, err := g.verifier.Verify(credential)
	if err != nil {
		return nil, &AuthError{Cause: err}
	}
	return claims, nil
}

// RequireSession rejects requests without a valid session credential. The
// verified claims are available to the next handler through ClaimsFromContext.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, err := s.gate.Authenticate(r)
			if err != nil {
				if errors.Is(err, apperrors.ErrMisconfiguredSigningKey) {
					log.Error().Err(err).Str("path", r.URL.Path).Msg("session check failed")
					writeError(w, http.StatusInternalServerError, "Server misconfigured")
					return
				}
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("session rejected")
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// ClaimsFromContext returns the claims attached by RequireSession.
func ClaimsFromContext(ctx context.Context) (*token.SessionClaims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*token.SessionClaims)
	return claims, ok
}
