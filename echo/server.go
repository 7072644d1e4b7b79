// Package echo serves the cause list HTTP API using labstack/echo.
package echo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/causelist"
	"github.com/fwojciec/causelist/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// History paging limits.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Server serves the cause list API.
type Server struct {
	echo   *echo.Echo
	logger *slog.Logger

	// Services used by the handlers. Searches and Metrics are optional.
	Source        causelist.DocumentSource
	Extractor     causelist.MatchExtractor
	TextExtractor causelist.TextExtractor
	Searches      causelist.SearchService
	Metrics       *prometheus.Metrics

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewServer creates a new Server with its routes and middleware registered.
func NewServer(logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		logger: logger,
		Now:    time.Now,
	}

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(s.logRequests)

	e.GET("/health", s.handleHealth)
	e.GET("/metrics", s.handleMetrics)

	api := e.Group("/api")
	api.GET("/search", s.handleSearch)
	api.GET("/causelist", s.handleCauseList)
	api.GET("/history", s.handleHistory)
	api.GET("/history/:id", s.handleHistoryByID)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr and serves until Shutdown is called.
// It returns nil after a graceful shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("starting http server", "addr", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// logRequests logs every request and records it in the metrics.
// Errors are rendered here so the logged status is the one sent.
func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		duration := time.Since(start)
		status := c.Response().Status

		s.logger.Info("http request",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"status", status,
			"duration", duration,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		if s.Metrics != nil {
			s.Metrics.ObserveRequest(c.Request().Method, c.Path(), status, duration)
		}
		return nil
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorResponse{Error: msg})
}

// handleError renders echo and application errors as ErrorResponse.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := http.StatusInternalServerError, causelist.ErrorMessage(err)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status, msg = he.Code, fmt.Sprint(he.Message)
	} else {
		switch causelist.ErrorCode(err) {
		case causelist.EINVALID:
			status = http.StatusBadRequest
		case causelist.ENOTFOUND:
			status = http.StatusNotFound
		case causelist.EUNAVAILABLE:
			status = http.StatusBadGateway
		default:
			s.logger.Error("request failed", "uri", c.Request().RequestURI, "err", err)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = errorJSON(c, status, msg)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: "ecourts-api", Version: "1.0"})
}

func (s *Server) handleMetrics(c echo.Context) error {
	if s.Metrics == nil {
		return echo.ErrNotFound
	}
	s.Metrics.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
