package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"avesnavarre/backend/internal/config"
	"avesnavarre/backend/internal/infrastructure/ebird"
	"avesnavarre/backend/internal/infrastructure/google"
	authusecase "avesnavarre/backend/internal/usecase/auth"
	birdusecase "avesnavarre/backend/internal/usecase/bird"
	favoriteusecase "avesnavarre/backend/internal/usecase/favorite"
	oauthusecase "avesnavarre/backend/internal/usecase/oauth"
	userusecase "avesnavarre/backend/internal/usecase/user"
)

// Services bundles the use-case dependencies the server dispatches into.
type Services struct {
	Auth      *authusecase.Service
	OAuth     *oauthusecase.Service
	Birds     *birdusecase.Service
	Favorites *favoriteusecase.Service
	Users     *userusecase.Service
	Tokens    authusecase.TokenManager
	Google    *google.Client
	EBird     *ebird.Client
}

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer       *http.Server
	router           *http.ServeMux
	authService      *authusecase.Service
	oauthService     *oauthusecase.Service
	birdService      *birdusecase.Service
	favoriteService  *favoriteusecase.Service
	userService      *userusecase.Service
	tokens           authusecase.TokenManager
	google           *google.Client
	ebird            *ebird.Client
	frontendURL      string
	ebirdRegion      string
	secretConfigured bool
	addr             string
}

// NewServer constructs a new Server with configured dependencies.
func NewServer(cfg config.Config, svcs Services) *Server {
	mux := http.NewServeMux()
	addr := cfg.HTTPPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	srv := &Server{
		router:           mux,
		authService:      svcs.Auth,
		oauthService:     svcs.OAuth,
		birdService:      svcs.Birds,
		favoriteService:  svcs.Favorites,
		userService:      svcs.Users,
		tokens:           svcs.Tokens,
		google:           svcs.Google,
		ebird:            svcs.EBird,
		frontendURL:      cfg.FrontendURL,
		ebirdRegion:      cfg.EBirdRegion,
		secretConfigured: cfg.JWTSecret != "",
		addr:             addr,
	}

	handler := withLogging(withCORS(srv.withIdentity(mux), cfg.AllowedOrigins))
	srv.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSec) * time.Second,
	}
	srv.registerRoutes()
	return srv
}

// Start bootstraps the HTTP server on the configured address.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the configured network address for the HTTP server.
func (s *Server) Addr() string {
	return s.addr
}
