package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/sage-gateway/auth"
	"github.com/jrsteele09/sage-gateway/internal/config"
	"github.com/jrsteele09/sage-gateway/token"
	"github.com/jrsteele09/sage-gateway/upstream"
	"github.com/rs/zerolog/log"
)

// LoginFlow drives the provider login. Implemented by auth.FlowController.
type LoginFlow interface {
	BeginLogin() string
	HandleCallback(ctx context.Context, query url.Values) string
}

// Generator forwards a generation request upstream. Implemented by upstream.Proxy.
type Generator interface {
	Generate(ctx context.Context, req upstream.Request) ([]byte, error)
}

var (
	_ LoginFlow          = (*auth.FlowController)(nil)
	_ Generator          = (*upstream.Proxy)(nil)
	_ CredentialVerifier = (*token.Codec)(nil)
)

// Dependencies are the collaborators a Server routes requests to.
type Dependencies struct {
	Flow        LoginFlow
	Credentials CredentialVerifier
	Generator   Generator
}

type Server struct {
	env     string // Environment (e.g., "DEV", "PROD")
	mux     *http.ServeMux
	handler http.Handler
	routes  []string
	config  config.Config

	flow      LoginFlow
	gate      *SessionGate
	generator Generator
}

func New(config config.Config, deps Dependencies) (*Server, error) {
	if deps.Flow == nil || deps.Credentials == nil || deps.Generator == nil {
		return nil, errors.New("[Server New] flow, credential verifier and generator are all required")
	}

	s := &Server{
		env:       config.GetEnv(),
		mux:       http.NewServeMux(),
		config:    config,
		flow:      deps.Flow,
		gate:      NewSessionGate(deps.Credentials),
		generator: deps.Generator,
	}

	s.initRoutes()
	s.logRoutes()

	s.handler = ChainMiddleware(s.mux.ServeHTTP, s.GatewayMiddleware()...)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		method, path, found := strings.Cut(route, " ")
		if !found {
			method, path = "*", route
		}
		log.Debug().Str("method", method).Str("path", path).Msg("route registered")
	}
}
