package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/meltforce/ironlog/internal/models"
)

// InsertSession persists one session and its sets in a single transaction.
// A session spans several exercises; each (session, exercise) pair becomes
// one sessions row with its sets batch-inserted alongside.
func (db *DB) InsertSession(ctx context.Context, newSession models.NewSession) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, record := range newSession.Records() {
		if _, err := tx.Exec(ctx,
			`INSERT INTO sessions (id, user_id, exercise_id, logged_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id, exercise_id) DO NOTHING`,
			record.SessionID, record.UserID, record.ExerciseID, record.LoggedAt,
		); err != nil {
			return fmt.Errorf("inserting session %s: %w", record.SessionID, err)
		}
		if len(record.Sets) == 0 {
			continue
		}

		query := `INSERT INTO session_sets (session_id, exercise_id, set_number, weight_kg, reps, is_warmup) VALUES `
		args := make([]any, 0, len(record.Sets)*6)
		valueStrings := make([]string, 0, len(record.Sets))
		for i, set := range record.Sets {
			base := i * 6
			valueStrings = append(valueStrings, fmt.Sprintf(
				"($%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6,
			))
			args = append(args, record.SessionID, record.ExerciseID, i, set.WeightKg, set.Reps, set.IsWarmup)
		}
		query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting sets for session %s: %w", record.SessionID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	return nil
}

// GetSessionHistory returns the full history for one (user, exercise) in
// ascending logged_at order, the order the running-maximum computation needs.
func (db *DB) GetSessionHistory(ctx context.Context, userID int, exerciseID string) ([]models.SessionRecord, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.user_id, s.exercise_id, s.logged_at,
		        ss.weight_kg, ss.reps, ss.is_warmup
		 FROM sessions s
		 LEFT JOIN session_sets ss
		   ON ss.session_id = s.id AND ss.exercise_id = s.exercise_id
		 WHERE s.user_id = $1 AND s.exercise_id = $2
		 ORDER BY s.logged_at ASC, s.id, ss.set_number ASC`,
		userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying session history: %w", err)
	}
	defer rows.Close()
	return scanSessionRows(rows)
}

// GetSessionHistoryAcrossUsers returns every user's history for one exercise,
// for population percentile computation. Append-mostly; read-time staleness
// is acceptable.
func (db *DB) GetSessionHistoryAcrossUsers(ctx context.Context, exerciseID string) ([]models.SessionRecord, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT s.id, s.user_id, s.exercise_id, s.logged_at,
		        ss.weight_kg, ss.reps, ss.is_warmup
		 FROM sessions s
		 LEFT JOIN session_sets ss
		   ON ss.session_id = s.id AND ss.exercise_id = s.exercise_id
		 WHERE s.exercise_id = $1
		 ORDER BY s.user_id, s.logged_at ASC, s.id, ss.set_number ASC`,
		exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying population history: %w", err)
	}
	defer rows.Close()
	return scanSessionRows(rows)
}

// scanSessionRows folds the session/set join back into SessionRecords. Rows
// arrive grouped by session; a NULL set row means a session logged with no
// sets.
func scanSessionRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.SessionRecord, error) {
	var records []models.SessionRecord
	for rows.Next() {
		var rec models.SessionRecord
		var set models.SetEntry
		var isWarmup *bool
		if err := rows.Scan(&rec.SessionID, &rec.UserID, &rec.ExerciseID, &rec.LoggedAt,
			&set.WeightKg, &set.Reps, &isWarmup); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		last := len(records) - 1
		if last < 0 || records[last].SessionID != rec.SessionID || records[last].ExerciseID != rec.ExerciseID || records[last].UserID != rec.UserID {
			records = append(records, rec)
			last++
		}
		if isWarmup != nil {
			set.IsWarmup = *isWarmup
			records[last].Sets = append(records[last].Sets, set)
		}
	}
	return records, rows.Err()
}
