// Package httpapi exposes the partition evaluator over HTTP.
//
// One shared evaluator serves every request, so the cache warms across the
// lifetime of the process and repeated queries are answered in O(1).
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/eulerfn/partitionfn/partition"
)

// Server routes partition queries to a shared evaluator.
type Server struct {
	evaluator *partition.Evaluator
	logger    *zap.Logger
	validate  *validator.Validate
}

// NewServer returns a server backed by the given evaluator.
func NewServer(evaluator *partition.Evaluator, logger *zap.Logger) *Server {
	return &Server{
		evaluator: evaluator,
		logger:    logger,
		validate:  validator.New(),
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/partitions/{n}", s.handleGetPartition)
	return r
}

type partitionQuery struct {
	N int `validate:"gte=0"`
}

type partitionResponse struct {
	N      int    `json:"n"`
	P      string `json:"p"` // decimal string: values exceed uint64 past n=416
	Cached bool   `json:"cached"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleGetPartition(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "n")
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "n must be an integer")
		return
	}
	if err := s.validate.Struct(partitionQuery{N: n}); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "n must be non-negative")
		return
	}

	warm := s.evaluator.Cached(n)
	v, err := s.evaluator.Evaluate(n)
	if err != nil {
		s.logger.Error("evaluation failed", zap.Int("n", n), zap.Error(err))
		s.respondError(w, r, http.StatusInternalServerError, "evaluation failed")
		return
	}

	s.respondJSON(w, http.StatusOK, partitionResponse{
		N:      n,
		P:      v.String(),
		Cached: warm,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.respondJSON(w, status, errorResponse{
		Error:     msg,
		RequestID: requestIDFrom(r.Context()),
	})
}
