package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/auctioncrawl/internal/model"
)

// Default server timeouts.
const (
	// DefaultReadTimeout bounds reading a request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout bounds a whole /craw response, which includes
	// fetching every category listing page.
	DefaultWriteTimeout = 5 * time.Minute

	// DefaultShutdownTimeout bounds draining in-flight requests on shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

// FetchErrorMessage is the body of a 500 response from /craw.
const FetchErrorMessage = "Error fetching HTML content"

// CrawlFunc runs one crawl. A non-nil error means the crawl produced no result.
type CrawlFunc func(ctx context.Context) (*model.CrawlReport, error)

// Server serves crawl results over HTTP.
type Server struct {
	router          *gin.Engine
	server          *http.Server
	crawl           CrawlFunc
	logger          *slog.Logger
	shutdownTimeout time.Duration
	debug           bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request and lifecycle logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownTimeout sets how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithDebug puts gin in debug mode.
func WithDebug(debug bool) Option {
	return func(s *Server) {
		s.debug = debug
	}
}

// New creates a Server listening on addr that runs crawl for each /craw request.
func New(addr string, crawl CrawlFunc, opts ...Option) (*Server, error) {
	if crawl == nil {
		return nil, ErrNilCrawl
	}

	s := &Server{
		crawl:           crawl,
		logger:          slog.Default(),
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.CustomRecovery(s.recover))
	router.Use(s.requestLogger())

	router.GET("/craw", s.handleCrawl)
	router.GET("/health", s.handleHealth)

	s.router = router
	s.server = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       DefaultReadTimeout,
		ReadHeaderTimeout: DefaultReadTimeout,
		WriteTimeout:      DefaultWriteTimeout,
	}

	return s, nil
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
// In-flight requests get the shutdown timeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting HTTP server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server", "timeout", s.shutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

// handleCrawl runs one crawl and writes its result.
func (s *Server) handleCrawl(c *gin.Context) {
	report, err := s.crawl(c.Request.Context())
	if err != nil || report == nil || report.Result == nil {
		if err == nil {
			err = errors.New("crawl returned no result")
		}
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, FetchErrorMessage)
		return
	}

	c.JSON(http.StatusOK, report.Result)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
