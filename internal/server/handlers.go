package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/claude/rowplan/internal/models"
	"github.com/claude/rowplan/internal/workout"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.planner.Catalog(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.GenerateResponse{
			Message: fmt.Sprintf("Error: %v. Please enter a valid positive number for 'Total Time'.", err),
		})
		return
	}

	resp, err := s.planner.Generate(r.Context(), req)
	switch {
	case errors.Is(err, workout.ErrInvalidDuration):
		writeJSON(w, http.StatusBadRequest, models.GenerateResponse{
			Message: fmt.Sprintf("Error: minimum workout time is %d minutes.", workout.MinTotalMinutes),
		})
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		writeJSON(w, http.StatusBadRequest, models.GenerateResponse{
			Message: fmt.Sprintf("Error: unknown workout type %q.", req.WorkoutType),
		})
	case err != nil:
		s.log.Error("generate error", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.GenerateResponse{Message: err.Error()})
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

// decodeGenerateRequest accepts either a JSON body or the fields posted by
// the original web form (task_type, difficulty, total_time).
func decodeGenerateRequest(r *http.Request) (models.GenerateRequest, error) {
	var req models.GenerateRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("invalid JSON: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, fmt.Errorf("invalid form: %w", err)
		}
		req.WorkoutType = r.PostForm.Get("workout_type")
		if req.WorkoutType == "" {
			req.WorkoutType = r.PostForm.Get("task_type")
		}
		req.Difficulty = r.PostForm.Get("difficulty")

		raw := strings.TrimSpace(r.PostForm.Get("total_time"))
		if raw == "" {
			return req, errors.New("total_time is required")
		}
		minutes, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, fmt.Errorf("total_time %q is not a number", raw)
		}
		req.TotalTime = minutes
	}

	if math.IsNaN(req.TotalTime) || math.IsInf(req.TotalTime, 0) || req.TotalTime <= 0 {
		return req, errors.New("total_time must be positive")
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
