package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/rowplan/internal/planner"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// Options configures the HTTP layer around the planner.
type Options struct {
	// APIKey, when set, is required on generate requests.
	APIKey string
	// RateLimit is generate requests per second; 0 disables limiting.
	RateLimit float64
	RateBurst int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	planner *planner.Service
	opts    Options
	limiter *rate.Limiter
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(svc *planner.Service, opts Options, log *slog.Logger) *Server {
	s := &Server{
		planner: svc,
		opts:    opts,
		log:     log,
		router:  chi.NewRouter(),
	}
	if opts.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst)
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/v1/options", s.handleOptions)

	s.router.Route("/api/v1/workouts", func(r chi.Router) {
		if s.opts.APIKey != "" {
			r.Use(APIKeyAuth(s.opts.APIKey))
		}
		if s.limiter != nil {
			r.Use(RateLimit(s.limiter))
		}
		r.Post("/", s.handleGenerate)
	})
}
