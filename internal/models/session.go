package models

import (
	"time"

	"github.com/google/uuid"
)

// NewSession is a freshly logged workout session as submitted by a client,
// before it is persisted. One session may span several exercises.
type NewSession struct {
	SessionID uuid.UUID            `json:"session_id"`
	UserID    int                  `json:"user_id"`
	CreatedAt time.Time            `json:"created_at"`
	Exercises []NewSessionExercise `json:"exercises"`
}

// NewSessionExercise is one exercise block within a new session.
type NewSessionExercise struct {
	ExerciseID   string     `json:"exercise_id"`
	ExerciseName string     `json:"exercise_name"`
	Sets         []SetEntry `json:"sets"`
}

// Records splits a NewSession into per-exercise SessionRecords for storage.
func (s NewSession) Records() []SessionRecord {
	records := make([]SessionRecord, 0, len(s.Exercises))
	for _, ex := range s.Exercises {
		records = append(records, SessionRecord{
			SessionID:  s.SessionID,
			UserID:     s.UserID,
			ExerciseID: ex.ExerciseID,
			LoggedAt:   s.CreatedAt,
			Sets:       ex.Sets,
		})
	}
	return records
}

// PrEntry is one broken record dimension within an evaluated session.
// For the "Session Volume" label WeightKg holds the session tonnage in kg.
type PrEntry struct {
	Label        string  `json:"label"`
	WeightKg     float64 `json:"weight_kg"`
	PreviousReps *int    `json:"previous_reps"`
	CurrentReps  *int    `json:"current_reps"`
	IsCurrent    bool    `json:"is_current"`
	SetIndices   []int   `json:"set_indices"`
}

// ExercisePrs groups the PR entries of one exercise in a session.
type ExercisePrs struct {
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	Prs          []PrEntry `json:"prs"`
}

// PrResult is the write-time record summary shown right after logging.
type PrResult struct {
	TotalPrs    int           `json:"total_prs"`
	PerExercise []ExercisePrs `json:"per_exercise"`
}
