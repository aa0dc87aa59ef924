// Package httpserver exposes the account endpoints over HTTP using fiber.
package httpserver

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/pawsome/internal/logging"
	"github.com/dmitrijs2005/pawsome/internal/server/health"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Options configures the HTTP server.
type Options struct {
	Addr            string
	SessionTTL      time.Duration
	RememberTTL     time.Duration
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

type HTTPServer struct {
	app     *fiber.App
	opts    Options
	logger  logging.Logger
	session *session.Store
}

func NewHTTPServer(opts Options, l logging.Logger, su SignupUseCase, lu LoginUseCase, readiness health.ReadinessUseCase) *HTTPServer {
	l = l.With("module", "http_server")

	app := fiber.New(fiber.Config{
		AppName:               "pawsome",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(l),
	})

	store := session.New(session.Config{
		Expiration:     opts.SessionTTL,
		KeyLookup:      "cookie:session_id",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{ContextKey: requestIDKey}))
	app.Use(requestLogger(l))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(opts.CORSOrigins, ","),
		AllowMethods: "POST,GET,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	s := &HTTPServer{app: app, opts: opts, logger: l, session: store}
	s.routes(NewAuthHandler(su, lu, store, opts.RememberTTL, l), NewHealthHandler(readiness))
	return s
}

func (s *HTTPServer) routes(auth *AuthHandler, health *HealthHandler) {
	api := s.app.Group("/api")

	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	api.All("/signup", auth.Signup)
	api.All("/login", auth.Login)
	api.Get("/session", auth.Session)
	api.Post("/logout", auth.Logout)

	// paths the original pages post to
	s.app.All("/signup.php", auth.Signup)
	s.app.All("/login.php", auth.Login)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *HTTPServer) App() *fiber.App { return s.app }

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.opts.Addr)
		errCh <- s.app.Listen(s.opts.Addr)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		return s.app.ShutdownWithTimeout(s.opts.ShutdownTimeout)
	case err := <-errCh:
		return err
	}
}
