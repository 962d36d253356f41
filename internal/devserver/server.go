// Package devserver serves the gridkit dev endpoints: the solver, an HTML
// preview of the web variant, and the native render tree.
package devserver

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/freshcart/gridkit/internal/config"
)

// DefaultAddr is the listen address used when Options.Addr is empty.
const DefaultAddr = ":8787"

const shutdownTimeout = 2 * time.Second

// Options configures a Server.
type Options struct {
	Addr   string
	Config *config.Config
	Title  string
	Logger zerolog.Logger
}

// Server is the dev HTTP server.
type Server struct {
	opts    Options
	handler http.Handler

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// New builds a server. A nil Config means the defaults.
func New(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Title == "" {
		opts.Title = opts.Config.Preview.Title
	}
	s := &Server{opts: opts}
	s.handler = s.routes()
	return s
}

// Handler returns the router. It is safe to use without Start.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.opts.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/solve", s.handleSolve)
		r.Get("/preview", s.handlePreview)
		r.Get("/render-tree", s.handleRenderTree)
		r.Get("/swatch/{department}.svg", handleSwatch)
	})
	return r
}

// Start binds the listener and serves in the background until ctx is
// cancelled or Shutdown is called. It returns the bound address.
func (s *Server) Start(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return s.listener.Addr().String(), nil
	}

	// Bind first to fail fast on port conflicts.
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return "", fmt.Errorf("devserver listen: %w", err)
	}

	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.server = server
	s.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			s.opts.Logger.Error().Err(err).Msg("devserver stopped")
			s.mu.Lock()
			if s.server == server {
				s.server = nil
				s.listener = nil
			}
			s.mu.Unlock()
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()

	addr := listener.Addr().String()
	s.opts.Logger.Info().Str("addr", addr).Msg("devserver listening")
	return addr, nil
}

// Shutdown gracefully stops the server. It is a no-op when not running.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

// requestLogger writes one zerolog entry per request.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Str("request_id", middleware.GetReqID(r.Context())).
					Msg("request")
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
