package storage

import (
	"context"
	"fmt"
	"time"
)

// DataStats holds aggregate statistics about a user's stored training data.
type DataStats struct {
	TotalSessions   int64          `json:"total_sessions"`
	TotalSets       int64          `json:"total_sets"`
	TotalTonnageKg  float64        `json:"total_tonnage_kg"`
	EarliestSession *time.Time     `json:"earliest_session"`
	LatestSession   *time.Time     `json:"latest_session"`
	SetsByExercise  []ExerciseStat `json:"sets_by_exercise"`
}

// ExerciseStat holds summary stats for a single exercise.
type ExerciseStat struct {
	ExerciseID string  `json:"exercise_id"`
	Sessions   int64   `json:"sessions"`
	Sets       int64   `json:"sets"`
	TonnageKg  float64 `json:"tonnage_kg"`
}

// GetDataStats returns aggregate statistics for a user's training history.
// Tonnage counts working sets only; warmups are excluded everywhere.
func (db *DB) GetDataStats(ctx context.Context, userID int) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT id), MIN(logged_at), MAX(logged_at)
		 FROM sessions WHERE user_id = $1`, userID,
	).Scan(&stats.TotalSessions, &stats.EarliestSession, &stats.LatestSession)
	if err != nil {
		return nil, fmt.Errorf("counting sessions: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(COALESCE(ss.weight_kg, 0) * COALESCE(ss.reps, 0)) FILTER (WHERE NOT ss.is_warmup), 0)
		 FROM session_sets ss
		 JOIN sessions s ON s.id = ss.session_id AND s.exercise_id = ss.exercise_id
		 WHERE s.user_id = $1`, userID,
	).Scan(&stats.TotalSets, &stats.TotalTonnageKg)
	if err != nil {
		return nil, fmt.Errorf("counting sets: %w", err)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT s.exercise_id, COUNT(DISTINCT s.id), COUNT(ss.set_number),
		        COALESCE(SUM(COALESCE(ss.weight_kg, 0) * COALESCE(ss.reps, 0)) FILTER (WHERE NOT ss.is_warmup), 0)
		 FROM sessions s
		 LEFT JOIN session_sets ss ON ss.session_id = s.id AND ss.exercise_id = s.exercise_id
		 WHERE s.user_id = $1
		 GROUP BY s.exercise_id
		 ORDER BY COUNT(ss.set_number) DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying per-exercise stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s ExerciseStat
		if err := rows.Scan(&s.ExerciseID, &s.Sessions, &s.Sets, &s.TonnageKg); err != nil {
			return nil, fmt.Errorf("scanning exercise stat: %w", err)
		}
		stats.SetsByExercise = append(stats.SetsByExercise, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
