package server

import "net/http"

func (s *Server) initRoutes() {
	// AUTH
	s.RegisterRouteFunc("GET "+RouteAuthGoogle, s.GoogleLoginHandler())
	s.RegisterRouteFunc("GET "+RouteAuthCallback, s.OAuthCallbackHandler())
	s.RegisterRouteFunc("GET "+RouteAuthVerify, s.VerifyHandler())
	s.RegisterRouteFunc("POST "+RouteAuthLogout, s.LogoutHandler())

	// API routes. The method is checked by the handler chain so that a wrong
	// method answers 405 before the session is looked at.
	s.RegisterRouteHandler(RouteAPIGenerate, ChainMiddleware(s.GenerateHandler(), s.APIMiddleware(http.MethodPost)...))

	s.RegisterRouteFunc("/", s.NotFoundHandler())
}

func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
}
