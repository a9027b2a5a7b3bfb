package analytics

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/ironlog/internal/models"
)

func set(weightKg float64, reps int) models.SetEntry {
	return models.SetEntry{WeightKg: &weightKg, Reps: &reps}
}

func warmup(weightKg float64, reps int) models.SetEntry {
	s := set(weightKg, reps)
	s.IsWarmup = true
	return s
}

func bodyweightSet(reps int) models.SetEntry {
	return models.SetEntry{Reps: &reps}
}

func day(offset int) time.Time {
	return time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func session(userID int, exerciseID string, at time.Time, sets ...models.SetEntry) models.SessionRecord {
	return models.SessionRecord{
		SessionID:  uuid.New(),
		UserID:     userID,
		ExerciseID: exerciseID,
		LoggedAt:   at,
		Sets:       sets,
	}
}

func metrics(gender models.Gender, bodyWeightKg float64) models.BodyMetrics {
	return models.BodyMetrics{Gender: &gender, BodyWeightKg: &bodyWeightKg}
}

// fakeStores backs Engine tests in memory. history is keyed by
// (userID, exerciseID); failFor simulates a store failure for one user.
type fakeStores struct {
	history   map[int]map[string][]models.SessionRecord
	metrics   map[int]models.BodyMetrics
	following map[int][]int
	failFor   int
}

func (f *fakeStores) GetSessionHistory(ctx context.Context, userID int, exerciseID string) ([]models.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.failFor != 0 && userID == f.failFor {
		return nil, errors.New("store unavailable")
	}
	return f.history[userID][exerciseID], nil
}

func (f *fakeStores) GetSessionHistoryAcrossUsers(ctx context.Context, exerciseID string) ([]models.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var all []models.SessionRecord
	for _, byExercise := range f.history {
		all = append(all, byExercise[exerciseID]...)
	}
	return all, nil
}

func (f *fakeStores) GetBodyMetrics(ctx context.Context, userID int) (models.BodyMetrics, error) {
	return f.metrics[userID], nil
}

func (f *fakeStores) ListFollowing(ctx context.Context, userID int) ([]int, error) {
	return f.following[userID], nil
}

func newTestEngine(t *testing.T, stores *fakeStores, opts ...Option) *Engine {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	return NewEngine(stores, stores, stores, log, opts...)
}

func addHistory(f *fakeStores, userID int, records ...models.SessionRecord) {
	if f.history == nil {
		f.history = make(map[int]map[string][]models.SessionRecord)
	}
	for _, rec := range records {
		if f.history[userID] == nil {
			f.history[userID] = make(map[string][]models.SessionRecord)
		}
		f.history[userID][rec.ExerciseID] = append(f.history[userID][rec.ExerciseID], rec)
	}
}
