package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/davetubbs/mailtmpl/internal/config"
	"github.com/davetubbs/mailtmpl/internal/parse"
	"github.com/davetubbs/mailtmpl/internal/pipeline"
)

// Server is the HTTP API server for mailtmpl.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	assembler    parse.Assembler
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, assembler parse.Assembler, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		assembler:    assembler,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey))

		r.Post("/api/parse", s.handleParse)
		r.Post("/api/parse/batch", s.handleBatchParse)
		r.Get("/api/parse/jobs/{jobID}", s.handleJobStatus)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
