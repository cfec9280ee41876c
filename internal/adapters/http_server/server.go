package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct{ mux *chi.Mux }

type Options struct {
	Timeout        time.Duration
	RateLimitRPS   float64 // <= 0 disables the limiter
	RateLimitBurst int
}

func New(opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	m := chi.NewRouter()

	// middlewares must be registered before any route
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(opts.Timeout))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))
	m.Use(RateLimit(opts.RateLimitRPS, opts.RateLimitBurst)) // 429s still reach Metrics and Logger

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
