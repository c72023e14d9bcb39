package server

import (
	"errors"
	"net/http"
	"unicode"

	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
	"github.com/rs/zerolog/log"
)

type sessionUser struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type verifyResponse struct {
	Valid bool         `json:"valid"`
	User  *sessionUser `json:"user,omitempty"`
	Error string       `json:"error,omitempty"`
}

type logoutResponse struct {
	Success bool `json:"success"`
}

// credentialFailures are the reasons a verification failure is reported with, in precedence order.
var credentialFailures = []error{
	apperrors.ErrMisconfiguredSigningKey,
	apperrors.ErrMissingCredential,
	apperrors.ErrInvalidSignature,
	apperrors.ErrMalformedToken,
	apperrors.ErrTokenExpired,
	apperrors.ErrDomainMismatch,
}

// GoogleLoginHandler sends the browser to the provider's consent screen.
func (s *Server) GoogleLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.flow.BeginLogin(), http.StatusFound)
	}
}

// OAuthCallbackHandler completes the login and hands the browser back to the app
// with either a token or an error kind.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.flow.HandleCallback(r.Context(), r.URL.Query()), http.StatusFound)
	}
}

// VerifyHandler reports whether the bearer credential is valid and who it belongs to.
func (s *Server) VerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.gate.Authenticate(r)
		if err != nil {
			var authErr *AuthError
			if errors.As(err, &authErr) && errors.Is(authErr.Cause, errNoBearer) {
				writeJSON(w, http.StatusUnauthorized, verifyResponse{Valid: false})
				return
			}
			log.Debug().Err(err).Msg("credential verification failed")
			writeJSON(w, http.StatusUnauthorized, verifyResponse{Valid: false, Error: failureReason(err)})
			return
		}

		writeJSON(w, http.StatusOK, verifyResponse{
			Valid: true,
			User: &sessionUser{
				Email:   claims.Email,
				Name:    claims.Name,
				Picture: claims.Picture,
			},
		})
	}
}

// LogoutHandler acknowledges a logout. Credentials are stateless, so the
// client discarding its copy is the whole logout.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, logoutResponse{Success: true})
	}
}

func failureReason(err error) string {
	for _, known := range credentialFailures {
		if errors.Is(err, known) {
			return sentence(known.Error())
		}
	}
	return "Invalid token"
}

func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	r := []rune(msg)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
