package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/aretw0/boolmin/pkg/equation"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Minimizer defines the operations exposed over HTTP.
type Minimizer interface {
	Minimize(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error)
	MinimizeMany(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error)
	MinimizeAccepting(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error)
}

// Request is the body of every minimize endpoint.
// Equation is always treated as literal text, never as a server-side path.
type Request struct {
	Equation string       `json:"equation"`
	Flags    domain.Flags `json:"flags"`
}

// ErrorResponse describes a failed request. Tool fields are set for tool failures.
type ErrorResponse struct {
	Error    string `json:"error"`
	Tool     string `json:"tool,omitempty"`
	ExitCode int    `json:"exit_code,omitempty"`
	Stdout   string `json:"stdout,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
}

// Server serves a Minimizer over JSON.
type Server struct {
	Minimizer Minimizer
	logger    *slog.Logger
	gatherer  prometheus.Gatherer
}

// HandlerOption configures the handler.
type HandlerOption func(*Server)

// WithMetrics exposes the gatherer on GET /metrics.
func WithMetrics(g prometheus.Gatherer) HandlerOption {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

type operation func(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error)

// NewHandler creates a new HTTP handler for the minimizer.
func NewHandler(m Minimizer, opts ...HandlerOption) http.Handler {
	s := &Server{
		Minimizer: m,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/minimize", func(r chi.Router) {
		r.Post("/", s.handle("minimize", m.Minimize))
		r.Post("/batch", s.handle("batch", m.MinimizeMany))
		r.Post("/accepting", s.handle("accepting", m.MinimizeAccepting))
	})

	return r
}

func (s *Server) handle(name string, op operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body Request
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&body); err != nil {
			s.logger.Warn("Invalid request body", "op", name, "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		src, err := equation.Literal(body.Equation)
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := op(r.Context(), src, body.Flags)
		if err != nil {
			s.logger.Error("Minimization failed", "op", name, "request_id", middleware.GetReqID(r.Context()), "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var toolErr *domain.ToolError
	switch {
	case errors.As(err, &toolErr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:    err.Error(),
			Tool:     toolErr.Tool,
			ExitCode: toolErr.ExitCode,
			Stdout:   toolErr.Stdout,
			Stderr:   toolErr.Stderr,
		})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNoAcceptingRecords):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: strings.TrimSpace(err.Error())})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
