package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/airep24/server/internal/assistant/graph"
	"github.com/airep24/server/internal/assistant/model"
	errx "github.com/airep24/server/internal/core/error"
	"github.com/airep24/server/internal/notify"
	"github.com/airep24/server/internal/shopify"
	logx "github.com/airep24/server/pkg/logger"
)

// AdminResolver builds a per-request admin client for a shop.
type AdminResolver interface {
	AdminClientFor(ctx context.Context, shop string) (*shopify.AdminClient, error)
}

// Server hosts the storefront-facing chat API.
type Server struct {
	echo *echo.Echo
	port int
}

// Handlers carries the dependencies the route handlers need.
type Handlers struct {
	Runner       graph.Runner
	Profiles     model.ProfileRepository
	Knowledge    model.KnowledgeRepository
	Widgets      model.WidgetConfigRepository
	Admin        AdminResolver
	Notifier     notify.Notifier
	KnowledgeMax int
}

// NewServer creates the API server with middleware and routes wired.
func NewServer(port int, h *Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server := &Server{echo: e, port: port}
	server.setupRoutes(h)
	return server
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes(h *Handlers) {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api := s.echo.Group("/api")
	api.POST("/chat", h.Chat)
	api.GET("/widget-config", h.WidgetConfig)
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	go func() {
		if err := s.echo.Start(fmt.Sprintf(":%d", s.port)); err != nil && err != http.ErrServerClosed {
			logx.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	logx.Info().Int("port", s.port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l := logx.With(v.RequestID)
			l.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// httpErrorHandler maps application errors onto their HTTP status.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *errx.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Status
		message = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	if err := c.JSON(status, map[string]string{"error": message}); err != nil {
		logx.Error().Err(err).Msg("failed to write error response")
	}
}
