package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/rlch/movies"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error string `json:"error"`
}

type voteResponse struct {
	Updates int `json:"updates"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// handleGraph serves the force-graph data. A limit that is not an integer
// is passed through verbatim so the store rejects it.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	var limit any = int64(movies.DefaultLimit)

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			limit = raw
		} else {
			limit = n
		}
	}

	g, err := s.store.Graph(r.Context(), limit)
	if err != nil {
		s.writeStoreError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, g)
}

// handleSearch returns an empty list when q is absent. An empty q is a
// search like any other and matches every title.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("q") {
		s.writeJSON(w, http.StatusOK, []movies.Movie{})

		return
	}

	found, err := s.store.Search(r.Context(), query.Get("q"))
	if err != nil {
		s.writeStoreError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, found)
}

func (s *Server) handleMovie(w http.ResponseWriter, r *http.Request) {
	detail, err := s.store.Movie(r.Context(), r.PathValue("title"))
	if err != nil {
		s.writeStoreError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleVote(w http.ResponseWriter, r *http.Request) {
	updates, err := s.store.Vote(r.Context(), r.PathValue("title"))
	if err != nil {
		s.writeStoreError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, voteResponse{Updates: updates})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	err := s.store.Ping(r.Context())
	if err != nil {
		s.logger.Warn("Health check failed", zap.Error(err), requestIDField(r))
		s.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})

		return
	}

	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// writeStoreError maps store errors onto HTTP statuses.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, movies.ErrMovieNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Movie not found"})

		return
	}

	s.logger.Error("Store request failed",
		zap.String("path", r.URL.Path),
		requestIDField(r),
		zap.Error(err))
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		s.logger.Debug("Failed to write response", zap.Error(err))
	}
}
