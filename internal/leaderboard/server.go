package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// Pagination bounds for GET /get-leaderboard/.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Server exposes a Store over HTTP.
type Server struct {
	store  *Store
	logger *log.Logger
	router *mux.Router
}

// NewServer creates the HTTP handler for store.
func NewServer(store *Store, logger *log.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger,
		router: mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	s.router.Use(s.logRequests)

	s.router.HandleFunc("/submit-score/", s.handleSubmitScore).Methods("POST")
	s.router.HandleFunc("/get-leaderboard/", s.handleGetLeaderboard).Methods("GET")
	s.router.HandleFunc("/get-best-score/", s.handleGetBestScore).Methods("GET")
	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// Response helpers
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("could not write response", "status", status, "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// submitRequest is the POST /submit-score/ body.
type submitRequest struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	entry, err := s.store.Submit(req.Name, req.Score)
	switch {
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidScore):
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Error("submit failed", "name", req.Name, "error", err)
		s.respondError(w, http.StatusInternalServerError, "could not store score")
		return
	}

	s.logger.Debug("score submitted", "name", entry.Name, "score", entry.Score)
	s.respondJSON(w, http.StatusOK, entry)
}

func (s *Server) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil || skip < 0 {
		s.respondError(w, http.StatusBadRequest, "skip must be a non-negative integer")
		return
	}
	limit, err := queryInt(r, "limit", DefaultLimit)
	if err != nil || limit < 0 {
		s.respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	limit = min(limit, MaxLimit)

	s.respondJSON(w, http.StatusOK, s.store.Page(skip, limit))
}

// bestScoreResponse is the GET /get-best-score/ body.
type bestScoreResponse struct {
	BestScore int `json:"best_score"`
}

func (s *Server) handleGetBestScore(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, bestScoreResponse{BestScore: s.store.Best()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"status": "ok", "entries": s.store.Len()})
}

// queryInt parses an integer query parameter, returning def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
