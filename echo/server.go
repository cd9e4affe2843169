// Package echo serves the scraping and resume services over a JSON REST API
// built on labstack/echo.
package echo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/profscrape"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Defaults for Server.
const (
	DefaultScrapeTimeout = 90 * time.Second
	MaxResumeSize        = 10 << 20
)

// resumeBodyLimit caps a resume upload before the multipart body is parsed.
// It allows MaxResumeSize plus room for the multipart envelope.
const resumeBodyLimit = "11M"

const (
	headerETag        = "ETag"
	headerIfNoneMatch = "If-None-Match"
)

// Server is the REST API. Create it with NewServer, then call Start.
type Server struct {
	echo     *echo.Echo
	validate *validator.Validate

	scraper       profscrape.Scraper
	resumes       profscrape.ResumeParser
	logger        *slog.Logger
	scrapeTimeout time.Duration
	limiter       *ClientLimiter
	allowOrigins  []string
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the logger for request and error logs.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithScrapeTimeout bounds each scrape request.
// Defaults to DefaultScrapeTimeout.
func WithScrapeTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		if d > 0 {
			s.scrapeTimeout = d
		}
	}
}

// WithRateLimit limits each client to rps requests per second with the
// given burst. Without it requests are not limited.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		if rps > 0 {
			s.limiter = NewClientLimiter(rps, burst)
		}
	}
}

// WithAllowOrigins restricts CORS to the given origins. Defaults to any.
func WithAllowOrigins(origins ...string) ServerOption {
	return func(s *Server) {
		s.allowOrigins = origins
	}
}

// NewServer builds a Server with its middleware and routes registered.
func NewServer(scraper profscrape.Scraper, resumes profscrape.ResumeParser, opts ...ServerOption) *Server {
	s := &Server{
		echo:          echo.New(),
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		scraper:       scraper,
		resumes:       resumes,
		logger:        slog.New(slog.DiscardHandler),
		scrapeTimeout: DefaultScrapeTimeout,
		allowOrigins:  []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.HTTPErrorHandler = s.handleError

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(s.requestLogger())
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  s.allowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, headerIfNoneMatch},
		ExposeHeaders: []string{echo.HeaderXRequestID, headerETag},
	}))
	if s.limiter != nil {
		s.echo.Use(s.limiter.Middleware())
	}

	s.echo.GET("/health", s.handleHealth)
	api := s.echo.Group("/api")
	api.POST("/scrape", s.handleScrape)
	api.POST("/resume", s.handleResume, middleware.BodyLimit(resumeBodyLimit))

	return s
}

// ServeHTTP dispatches a request to the API.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr and serves until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("server listening", "addr", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"requestID", v.RequestID,
				"remoteIP", v.RemoteIP,
			)
			return nil
		},
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
