package api

import (
	"net"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hearthapp/hearth-api/docs"
	"github.com/hearthapp/hearth-api/internal/api/handler"
	"github.com/hearthapp/hearth-api/internal/api/middleware"
	"github.com/hearthapp/hearth-api/internal/core/ports"
	"github.com/hearthapp/hearth-api/internal/infrastructure/http/handlers"
)

// Dependencies is everything the router needs. Services are required; the
// rest is optional and switched off when nil or empty.
type Dependencies struct {
	Accounts ports.AccountService
	Messages ports.MessageService
	Todos    ports.TodoService
	Quotes   ports.QuoteService

	// AuthLimiter throttles register and login. Nil disables limiting.
	AuthLimiter middleware.Limiter
	// Checks are the readiness probes keyed by dependency name.
	Checks map[string]handlers.Check
	// CORSOrigins lists allowed origins; empty allows any.
	CORSOrigins []string
	// TrustedProxies are the peers whose X-Forwarded-For is believed. Empty
	// keys clients on the socket address.
	TrustedProxies []*net.IPNet

	// Registerer and Gatherer back the HTTP metrics and /metrics. Nil skips both.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.IPExtractor = ipExtractor(deps.TrustedProxies)

	// --- Global middleware ---
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(corsConfig(deps.CORSOrigins)))

	if deps.Registerer != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "hearth",
			Subsystem:  "http",
			Registerer: deps.Registerer,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	}

	// --- Handlers ---
	accountHandler := handler.NewAccountHandler(deps.Accounts)
	messageHandler := handler.NewMessageHandler(deps.Messages)
	todoHandler := handler.NewTodoHandler(deps.Todos)
	quoteHandler := handler.NewQuoteHandler(deps.Quotes)
	auth := middleware.Auth(deps.Accounts)

	var limited []echo.MiddlewareFunc
	if deps.AuthLimiter != nil {
		limited = append(limited, middleware.RateLimit(deps.AuthLimiter, deps.Log))
	}

	api := e.Group("/api")

	// --- Public routes ---
	api.POST("/register", accountHandler.Register, limited...)
	api.POST("/login", accountHandler.Login, limited...)
	api.GET("/quotes", quoteHandler.Board)

	// --- Authenticated routes ---
	api.GET("/me", accountHandler.Me, auth)
	api.GET("/users", accountHandler.Users, auth)

	api.GET("/messages/:peer", messageHandler.Conversation, auth)
	api.POST("/messages", messageHandler.Send, auth)

	api.GET("/todos", todoHandler.List, auth)
	api.POST("/todos", todoHandler.Create, auth)
	api.PUT("/todos/:id", todoHandler.Toggle, auth)
	api.DELETE("/todos/:id", todoHandler.Delete, auth)

	api.POST("/quotes", quoteHandler.Create, auth)
	api.DELETE("/quotes/:id", quoteHandler.Delete, auth)

	// --- Health probes and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// ipExtractor reads the client IP from the socket unless trusted proxies are
// configured, in which case the rightmost untrusted X-Forwarded-For hop wins.
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, r := range trusted {
		opts = append(opts, echo.TrustIPRange(r))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

func corsConfig(origins []string) echomiddleware.CORSConfig {
	cfg := echomiddleware.DefaultCORSConfig
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization}
	return cfg
}
