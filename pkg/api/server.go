// Package api exposes the circuit engine over HTTP: truth tables, single
// evaluations, promoter compatibility lookups, and construct map export.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxInputs caps truth-table requests at 2^16 rows unless configured
// otherwise.
const DefaultMaxInputs = 16

// shutdownGrace bounds how long in-flight requests may run after the serve
// context is cancelled.
const shutdownGrace = 5 * time.Second

// Config carries the service settings.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string
	// MaxInputs bounds the declared input count accepted on the truth-table
	// endpoint; enumeration cost is 2^n rows. Zero means DefaultMaxInputs.
	MaxInputs int
}

// Server is the synlogic HTTP service.
type Server struct {
	cfg    Config
	log    zerolog.Logger
	router chi.Router
}

// NewServer builds the service with its routes and middleware.
func NewServer(cfg Config, log zerolog.Logger) *Server {
	if cfg.MaxInputs <= 0 {
		cfg.MaxInputs = DefaultMaxInputs
	}
	s := &Server{cfg: cfg, log: log}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	// The logger wraps the recoverer so a panicking request still gets an
	// access-log line with the 500 the recoverer writes.
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/logic-table", s.handleLogicTable)
	r.Post("/evaluate", s.handleEvaluate)
	r.Post("/promoter-compatibility", s.handlePromoterCompatibility)
	r.Post("/construct-export", s.handleConstructExport)

	s.router = r
	return s
}

// Router exposes the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to shutdownGrace before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.router}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
