package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/user/playlist-checker/internal/checker"
	"github.com/user/playlist-checker/internal/domain"
)

func (s *Server) handleCheckRequest(w http.ResponseWriter, r *http.Request) {
	if err := s.runner.Trigger(); err != nil {
		if errors.Is(err, checker.ErrCheckInFlight) {
			s.respondWithError(w, http.StatusConflict, "A check is already running")
			return
		}
		s.logger.Error("failed to trigger check", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "Could not start check")
		return
	}

	s.respondWithJSON(w, http.StatusAccepted, map[string]string{"message": "Check started"})
}

func (s *Server) handleStatusRequest(w http.ResponseWriter, r *http.Request) {
	run := s.runner.Latest()
	if run == nil {
		s.respondWithError(w, http.StatusNotFound, "No completed check yet")
		return
	}

	status := domain.CheckStatusResponse{
		ID:          run.ID,
		StartedAt:   run.StartedAt,
		FinishedAt:  run.FinishedAt,
		Total:       run.TotalEntries(),
		AliveCount:  run.AliveCount,
		DeadCount:   run.DeadCount,
		SuccessRate: run.SuccessRate(),
		Running:     s.runner.Running(),
		Dead:        run.DeadEntries(),
	}
	s.respondWithJSON(w, http.StatusOK, status)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	healthStatus := make(map[string]string)

	// The playlist file is the daemon's only external dependency.
	if _, err := os.Stat(s.config.PlaylistPath); err != nil {
		healthStatus["playlist"] = "unhealthy"
		s.logger.Error("health check failed for playlist", zap.Error(err))
	} else {
		healthStatus["playlist"] = "healthy"
	}

	if healthStatus["playlist"] != "healthy" {
		s.respondWithJSON(w, http.StatusServiceUnavailable, healthStatus)
		return
	}

	s.respondWithJSON(w, http.StatusOK, healthStatus)
}

// --- Helper Functions ---

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
