package server

// Route path constants
const (
	// Auth Routes
	RouteAuthGoogle   = "/auth/google"
	RouteAuthCallback = "/auth/callback"
	RouteAuthVerify   = "/auth/verify"
	RouteAuthLogout   = "/auth/logout"

	// API Routes
	RouteAPIGenerate = "/api/generate"
)
