package server

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
	"github.com/jrsteele09/sage-gateway/upstream"
	"github.com/rs/zerolog/log"
)

// maxRequestBytes bounds the generation request body.
const maxRequestBytes = 10 << 20

// GenerateHandler forwards an authenticated generation request upstream. It
// expects RequireSession to have run.
func (s *Server) GenerateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With().Str("path", r.URL.Path).Logger()
		if claims, ok := ClaimsFromContext(r.Context()); ok {
			logger = logger.With().Str("email", claims.Email).Logger()
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
		if err != nil {
			logger.Warn().Err(err).Msg("failed to read generation request")
			writeError(w, http.StatusBadRequest, "Missing model or payload")
			return
		}

		req, err := upstream.ParseRequest(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing model or payload")
			return
		}

		result, err := s.generator.Generate(r.Context(), req)
		if err != nil {
			status := http.StatusInternalServerError
			var upErr *upstream.Error
			if errors.As(err, &upErr) && upErr.StatusCode == http.StatusUnauthorized {
				status = http.StatusUnauthorized
			}
			if errors.Is(err, apperrors.ErrMisconfiguredUpstreamKey) {
				logger.Error().Err(err).Msg("generation unavailable")
			} else {
				logger.Warn().Err(err).Str("model", req.Model).Msg("generation failed")
			}
			writeError(w, status, err.Error())
			return
		}

		writeRawJSON(w, http.StatusOK, result)
	}
}
