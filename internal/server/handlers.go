package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/meltforce/ironlog/internal/models"
)

func (s *Server) handleExerciseCatalog(w http.ResponseWriter, r *http.Request) {
	type catalogEntry struct {
		models.Exercise
		HasStandards bool `json:"has_standards"`
	}
	entries := make([]catalogEntry, 0, len(models.Catalog))
	for _, ex := range models.Catalog {
		entries = append(entries, catalogEntry{
			Exercise:     ex,
			HasStandards: s.engine.Standards().HasStandards(ex.ID),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleStandardsLadder(w http.ResponseWriter, r *http.Request) {
	exerciseID := chi.URLParam(r, "exerciseID")
	gender := models.Gender(r.URL.Query().Get("gender"))
	if !gender.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "gender parameter required (male or female)"})
		return
	}

	ladder := s.engine.Standards().Ladder(exerciseID, gender)
	if ladder == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no standards published for this exercise"})
		return
	}
	writeJSON(w, http.StatusOK, ladder)
}

func (s *Server) handleExerciseRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	points, err := s.engine.ExerciseRecords(r.Context(), userID, chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handlePersonalBests(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	bests, err := s.engine.Bests(r.Context(), userID, chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, bests)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	points, err := s.engine.Progress(r.Context(), userID, chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleStandard(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	classification, err := s.engine.StandardFor(r.Context(), userID, chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	// "Cannot classify" is a defined result: missing body metrics or no
	// published table. The client renders the fill-your-profile prompt.
	writeJSON(w, http.StatusOK, map[string]any{"classification": classification})
}

func (s *Server) handlePercentile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	entry, err := s.engine.ExercisePercentile(r.Context(), userID, chi.URLParam(r, "exerciseID"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	entries, err := s.engine.Leaderboard(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleFriendsLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	standings, err := s.engine.FriendsLeaderboard(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, standings)
}

func (s *Server) handleDataStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	stats, err := s.db.GetDataStats(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleImportLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	logs, err := s.db.QueryImportLogs(r.Context(), userID, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleLogSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var session models.NewSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	session.UserID = userID
	if session.SessionID == uuid.Nil {
		session.SessionID = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	for i := range session.Exercises {
		ex := &session.Exercises[i]
		if ex.ExerciseID == "" {
			ex.ExerciseID = models.ResolveExerciseID(ex.ExerciseName)
		}
		if ex.ExerciseName == "" {
			ex.ExerciseName = models.ExerciseName(ex.ExerciseID)
		}
	}

	// Evaluate against prior history before persisting so the session never
	// counts toward its own baselines.
	result, err := s.engine.EvaluateSession(r.Context(), session)
	if err != nil {
		s.log.Error("session evaluation failed", "session_id", session.SessionID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.db.InsertSession(r.Context(), session); err != nil {
		s.log.Error("session insert failed", "session_id", session.SessionID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id": session.SessionID,
		"pr_result":  result,
	})
}

func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var metrics models.BodyMetrics
	if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if metrics.Gender != nil && !metrics.Gender.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid gender"})
		return
	}
	if metrics.BodyWeightKg != nil && *metrics.BodyWeightKg <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "body weight must be positive"})
		return
	}

	if err := s.db.UpsertBodyMetrics(r.Context(), userID, metrics); err != nil {
		s.log.Error("profile upsert failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddFollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var body struct {
		FollowedID int `json:"followed_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.FollowedID < 1 || body.FollowedID == userID {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid followed_id"})
		return
	}

	if err := s.db.AddFollow(r.Context(), userID, body.FollowedID); err != nil {
		s.log.Error("follow failed", "user_id", userID, "followed_id", body.FollowedID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func pathUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return 0, false
	}
	return id, true
}
