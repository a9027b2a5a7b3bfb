package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/meltforce/ironlog/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFanOutLimit  = 8
	defaultFetchTimeout = 10 * time.Second
)

// Engine wires the pure analytics functions to the backing stores. All read
// paths recompute from history on every call; there is no cached mutable
// state, so a single Engine is safe for concurrent use across users and
// exercises.
type Engine struct {
	workouts  WorkoutStore
	profiles  ProfileStore
	social    SocialGraphStore
	standards *Standards
	log       *slog.Logger

	fanOutLimit  int
	fetchTimeout time.Duration
}

// Option tunes Engine construction.
type Option func(*Engine)

// WithFanOutLimit bounds the parallelism of friends-leaderboard fetches.
func WithFanOutLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.fanOutLimit = n
		}
	}
}

// WithFetchTimeout bounds each individual population or friend fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.fetchTimeout = d
		}
	}
}

// NewEngine creates the analytics engine.
func NewEngine(workouts WorkoutStore, profiles ProfileStore, social SocialGraphStore, log *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		workouts:     workouts,
		profiles:     profiles,
		social:       social,
		standards:    NewStandards(),
		log:          log,
		fanOutLimit:  defaultFanOutLimit,
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Standards exposes the startup-built standards lookup for ladder reads.
func (e *Engine) Standards() *Standards {
	return e.standards
}

// StandardsLadder returns the full six-tier table for one (exercise, gender),
// or nil when no table is published for the exercise. The context and error
// are unused locally but keep the signature uniform with remote data sources.
func (e *Engine) StandardsLadder(_ context.Context, exerciseID string, gender models.Gender) (*StandardsLadder, error) {
	return e.standards.Ladder(exerciseID, gender), nil
}

// ExerciseRecords returns the "all records" list for one (user, exercise).
func (e *Engine) ExerciseRecords(ctx context.Context, userID int, exerciseID string) ([]models.ExerciseRecordPoint, error) {
	history, err := e.workouts.GetSessionHistory(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying session history: %w", err)
	}
	return RecordPoints(history), nil
}

// Progress returns the running-best 1RM series for one (user, exercise).
func (e *Engine) Progress(ctx context.Context, userID int, exerciseID string) ([]models.ProgressPoint, error) {
	history, err := e.workouts.GetSessionHistory(ctx, userID, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("querying session history: %w", err)
	}
	return ProgressSeries(history), nil
}

// Bests recomputes the personal bests for one (user, exercise).
func (e *Engine) Bests(ctx context.Context, userID int, exerciseID string) (models.PersonalBests, error) {
	history, err := e.workouts.GetSessionHistory(ctx, userID, exerciseID)
	if err != nil {
		return models.PersonalBests{}, fmt.Errorf("querying session history: %w", err)
	}
	return ComputeBests(history), nil
}

// StandardFor classifies the user on one exercise. A nil Classification with
// nil error means the user cannot be classified: missing body metrics or no
// published table for the exercise.
func (e *Engine) StandardFor(ctx context.Context, userID int, exerciseID string) (*Classification, error) {
	if !e.standards.HasStandards(exerciseID) {
		return nil, nil
	}
	metrics, err := e.profiles.GetBodyMetrics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("querying body metrics: %w", err)
	}

	bests, err := e.Bests(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	value := bests.Best1RM
	if e.standards.RepBased(exerciseID) {
		value = float64(bests.BestReps)
	}
	return e.standards.Classify(exerciseID, metrics, value), nil
}

// ExercisePercentile ranks the user's best 1RM for one exercise against the
// population of every user's best for it.
func (e *Engine) ExercisePercentile(ctx context.Context, userID int, exerciseID string) (models.LeaderboardEntry, error) {
	entry := models.LeaderboardEntry{
		ExerciseID:   exerciseID,
		ExerciseName: models.ExerciseName(exerciseID),
	}

	history, err := e.workouts.GetSessionHistory(ctx, userID, exerciseID)
	if err != nil {
		return entry, fmt.Errorf("querying session history: %w", err)
	}
	entry.UserMax1RM = ComputeBests(history).Best1RM

	popCtx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	defer cancel()
	crossUser, err := e.workouts.GetSessionHistoryAcrossUsers(popCtx, exerciseID)
	if err != nil {
		return entry, fmt.Errorf("querying population history: %w", err)
	}

	population := AllUsersMax1RM(crossUser)
	entry.TotalUsers = len(population)
	entry.Percentile = Percentile(entry.UserMax1RM, population)
	return entry, nil
}

// Leaderboard computes the user's percentile for every key lift, drops lifts
// nobody has logged, and sorts descending by percentile. Per-lift fetches run
// with bounded parallelism; one slow or failed lift is logged and omitted
// without aborting the rest.
func (e *Engine) Leaderboard(ctx context.Context, userID int) ([]models.LeaderboardEntry, error) {
	lifts := models.KeyLifts()
	results := make([]*models.LeaderboardEntry, len(lifts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.fanOutLimit)
	for i, lift := range lifts {
		g.Go(func() error {
			entry, err := e.ExercisePercentile(gctx, userID, lift.ID)
			if err != nil {
				e.log.Warn("leaderboard: lift skipped", "exercise", lift.ID, "error", err)
				return nil
			}
			results[i] = &entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(lifts))
	for _, entry := range results {
		if entry == nil || entry.TotalUsers == 0 {
			continue
		}
		entries = append(entries, *entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Percentile > entries[j].Percentile
	})
	return entries, nil
}

// FriendsLeaderboard fans out one leaderboard computation per followed user
// with bounded parallelism. A failure for one followed user is logged and
// that user omitted; it never cancels the others, so the caller always gets
// the partial result. Each fetch carries its own timeout and respects ctx
// cancellation independently.
func (e *Engine) FriendsLeaderboard(ctx context.Context, userID int) ([]models.FriendStanding, error) {
	following, err := e.social.ListFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing following: %w", err)
	}

	var (
		mu        sync.Mutex
		standings []models.FriendStanding
	)
	g := &errgroup.Group{}
	g.SetLimit(e.fanOutLimit)
	for _, friendID := range following {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
			defer cancel()

			entries, err := e.Leaderboard(fetchCtx, friendID)
			if err != nil {
				e.log.Warn("friends leaderboard: user skipped", "user_id", friendID, "error", err)
				return nil
			}
			if len(entries) == 0 {
				return nil
			}

			var sum float64
			for _, entry := range entries {
				sum += float64(entry.Percentile)
			}
			mu.Lock()
			standings = append(standings, models.FriendStanding{
				UserID:        friendID,
				AvgPercentile: sum / float64(len(entries)),
				Entries:       entries,
			})
			mu.Unlock()
			return nil
		})
	}
	// Group tasks never return errors; failures are isolated per friend.
	_ = g.Wait()

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].AvgPercentile > standings[j].AvgPercentile
	})
	return standings, nil
}

// EvaluateSession detects the records a newly logged session breaks. The
// caller must pass the session before persisting it, or persist and rely on
// EvaluateSessionPrs filtering by SessionID; either way the evaluated session
// itself never counts toward its own baselines.
func (e *Engine) EvaluateSession(ctx context.Context, session models.NewSession) (models.PrResult, error) {
	history := make(map[string][]models.SessionRecord, len(session.Exercises))
	for _, exercise := range session.Exercises {
		if _, done := history[exercise.ExerciseID]; done {
			continue
		}
		records, err := e.workouts.GetSessionHistory(ctx, session.UserID, exercise.ExerciseID)
		if err != nil {
			return models.PrResult{}, fmt.Errorf("querying session history: %w", err)
		}
		history[exercise.ExerciseID] = records
	}
	return EvaluateSessionPrs(history, session), nil
}
