// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"github.com/rs/zerolog"

	"cataloguer/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	catalogues *app.CatalogueService
	auth       *app.AuthService
	webDir     string
	log        zerolog.Logger

	allowedOrigins map[string]struct{}
	oidc           *OIDCConfig
	disableAuth    bool
}

// New creates a Server wired to the given application services.
func New(cs *app.CatalogueService, as *app.AuthService, webDir string, logger zerolog.Logger) *Server {
	return &Server{
		catalogues:     cs,
		auth:           as,
		webDir:         webDir,
		log:            logger,
		allowedOrigins: make(map[string]struct{}),
	}
}

// WithCORS enables cross-origin requests with credentials from the given
// origins.
func (s *Server) WithCORS(origins []string) *Server {
	for _, o := range origins {
		if o != "" {
			s.allowedOrigins[o] = struct{}{}
		}
	}
	return s
}

// WithOIDC enables the SSO login routes.
func (s *Server) WithOIDC(cfg *OIDCConfig) *Server {
	s.oidc = cfg
	return s
}

// WithoutAuth disables the session gate. Used by tests that exercise the
// catalogue handlers in isolation.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)

	mux.HandleFunc("/catalogues", s.requireAuth(s.handleCatalogues))
	mux.HandleFunc("/catalogues/", s.requireAuth(s.handleCatalogueByID))

	mux.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	mux.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	mux.HandleFunc("/", s.handleStatic)

	return s.loggingMiddleware(s.corsMiddleware(mux))
}
