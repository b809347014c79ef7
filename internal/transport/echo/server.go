package echo

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"task-service/internal/auth"
	"task-service/internal/config"
	"task-service/internal/navigation"
	"task-service/internal/session"
)

type ServerDependencies struct {
	Config   *config.Config
	Table    *navigation.Table
	Sessions *session.Service
	Provider *auth.Provider
	Logger   logr.Logger
}

// Server wraps the Echo server with the navigation guard and auth endpoints.
type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
	log  logr.Logger
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if deps.Config != nil {
		e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
		e.Server.WriteTimeout = deps.Config.Server.WriteTimeout
	}

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	log := deps.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	server := &Server{
		echo: e,
		deps: deps,
		log:  log,
	}

	server.registerRoutes()

	return server
}

// registerRoutes wires the navigation surface: the bootstrap path, every
// route-table entry behind the guard, the catch-all, and the auth provider's
// POST endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET(navigation.RootPath, s.rootHandler)

	for _, route := range s.deps.Table.Routes() {
		s.echo.GET(route.Path, s.guard(route))
	}

	s.echo.GET("/*", s.guard(s.deps.Table.Wildcard()))

	s.echo.POST(loginEndpoint, s.loginHandler)
	s.echo.POST(signupEndpoint, s.signupHandler)
	s.echo.POST(logoutEndpoint, s.logoutHandler)

	s.echo.GET(healthEndpoint, s.healthHandler)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
