package importer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/meltforce/ironlog/internal/models"
)

// sessionNamespace seeds deterministic session IDs so re-importing the same
// export produces the same UUIDs and the ON CONFLICT guard dedupes rows.
var sessionNamespace = uuid.MustParse("6f1c2a4e-9d3b-4c77-8a05-5b2e1f0d9c44")

// Convert maps a parsed session onto the logging payload shape. Exercise
// names resolve to catalog IDs (unknown ones slugify through), and
// bodyweight-only sets keep a nil weight so record math skips them.
func Convert(s Session, userID int) models.NewSession {
	out := models.NewSession{
		SessionID: sessionID(userID, s),
		UserID:    userID,
		CreatedAt: s.Date.UTC(),
	}

	// The export repeats an exercise block per position; merge blocks that
	// resolve to the same catalog exercise so one record row holds all sets.
	index := map[string]int{}
	for _, ex := range s.Exercises {
		id := models.ResolveExerciseID(ex.Name)
		sets := convertSets(ex.Sets)

		if i, ok := index[id]; ok {
			out.Exercises[i].Sets = append(out.Exercises[i].Sets, sets...)
			continue
		}
		index[id] = len(out.Exercises)
		out.Exercises = append(out.Exercises, models.NewSessionExercise{
			ExerciseID:   id,
			ExerciseName: models.ExerciseName(id),
			Sets:         sets,
		})
	}
	return out
}

func convertSets(sets []Set) []models.SetEntry {
	out := make([]models.SetEntry, 0, len(sets))
	for _, s := range sets {
		entry := models.SetEntry{IsWarmup: s.IsWarmup}
		if s.Reps > 0 {
			reps := s.Reps
			entry.Reps = &reps
		}
		// Bodyweight-plus weights record only the added load; a pure
		// bodyweight set ("+0") carries no weight at all.
		if s.WeightKg > 0 {
			w := s.WeightKg
			entry.WeightKg = &w
		}
		out = append(out, entry)
	}
	return out
}

func sessionID(userID int, s Session) uuid.UUID {
	key := fmt.Sprintf("%d/%s/%s", userID, s.Date.UTC().Format("2006-01-02T15:04"), s.Name)
	return uuid.NewSHA1(sessionNamespace, []byte(key))
}
