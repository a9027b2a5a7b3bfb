package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender is used for strength-standard lookups.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender value.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// SetEntry is a single logged set. WeightKg is nil for pure bodyweight work;
// Reps is nil when the set was logged without a rep count.
type SetEntry struct {
	WeightKg *float64 `json:"weight_kg"`
	Reps     *int     `json:"reps"`
	IsWarmup bool     `json:"is_warmup"`
}

// Counts reports whether the set participates in record and percentile math:
// a non-warmup set with positive weight and positive reps. Warmup sets and
// malformed entries are excluded here, never rejected with an error.
func (s SetEntry) Counts() bool {
	return !s.IsWarmup && s.WeightKg != nil && *s.WeightKg > 0 && s.Reps != nil && *s.Reps > 0
}

// CountsReps reports whether the set contributes to rep-based standards:
// a non-warmup set with positive reps, weight optional (bodyweight moves).
func (s SetEntry) CountsReps() bool {
	return !s.IsWarmup && s.Reps != nil && *s.Reps > 0
}

// Volume returns weight * reps, or 0 for sets excluded by Counts.
func (s SetEntry) Volume() float64 {
	if !s.Counts() {
		return 0
	}
	return *s.WeightKg * float64(*s.Reps)
}

// SessionRecord is the logged history unit for one (user, exercise) pair.
// Immutable once logged; edits happen outside the analytics core.
type SessionRecord struct {
	SessionID  uuid.UUID  `json:"session_id"`
	UserID     int        `json:"user_id"`
	ExerciseID string     `json:"exercise_id"`
	LoggedAt   time.Time  `json:"logged_at"`
	Sets       []SetEntry `json:"sets"`
}

// BodyMetrics holds the profile fields strength standards normalize by.
// Either field may be absent when the user never filled in their profile.
type BodyMetrics struct {
	Gender       *Gender  `json:"gender"`
	BodyWeightKg *float64 `json:"body_weight_kg"`
}

// ExerciseRecordPoint is one row of the "all records" list: the best rep
// count observed at a given weight on a given day, with its estimated 1RM.
type ExerciseRecordPoint struct {
	WeightKg     float64   `json:"weight_kg"`
	MaxReps      int       `json:"max_reps"`
	Date         time.Time `json:"date"`
	Estimated1RM float64   `json:"estimated_1rm"`
}

// SetVolume identifies the best single set by weight * reps.
type SetVolume struct {
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
	Volume   float64 `json:"volume"`
}

// PersonalBests are global maxima over one (user, exercise) history.
// Recomputed fresh from full history on every read; never partially updated.
type PersonalBests struct {
	HeaviestWeightKg  float64    `json:"heaviest_weight_kg"`
	Best1RM           float64    `json:"best_1rm"`
	BestReps          int        `json:"best_reps"`
	BestSetVolume     *SetVolume `json:"best_set_volume"`
	BestSessionVolume float64    `json:"best_session_volume"`
}

// ProgressPoint is one step of the running-best 1RM series.
type ProgressPoint struct {
	Date   time.Time `json:"date"`
	Max1RM float64   `json:"max_1rm"`
}

// LeaderboardEntry ranks the user's best 1RM for one key lift against the
// population of all users who logged that lift.
type LeaderboardEntry struct {
	ExerciseID   string  `json:"exercise_id"`
	ExerciseName string  `json:"exercise_name"`
	UserMax1RM   float64 `json:"user_max_1rm"`
	Percentile   int     `json:"percentile"`
	TotalUsers   int     `json:"total_users"`
}

// FriendStanding is one followed user's aggregate key-lift standing.
type FriendStanding struct {
	UserID        int                `json:"user_id"`
	AvgPercentile float64            `json:"avg_percentile"`
	Entries       []LeaderboardEntry `json:"entries"`
}
