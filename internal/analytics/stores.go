package analytics

import (
	"context"

	"github.com/meltforce/ironlog/internal/models"
)

// WorkoutStore provides logged set history. GetSessionHistory must return
// sessions in ascending LoggedAt order; the running-maximum computation in
// ProgressSeries depends on it. The cross-user variant backs percentile
// ranking and is treated as append-mostly and eventually consistent.
type WorkoutStore interface {
	GetSessionHistory(ctx context.Context, userID int, exerciseID string) ([]models.SessionRecord, error)
	GetSessionHistoryAcrossUsers(ctx context.Context, exerciseID string) ([]models.SessionRecord, error)
}

// ProfileStore provides the body metrics standards normalize by.
type ProfileStore interface {
	GetBodyMetrics(ctx context.Context, userID int) (models.BodyMetrics, error)
}

// SocialGraphStore lists who a user follows, for the friends leaderboard.
type SocialGraphStore interface {
	ListFollowing(ctx context.Context, userID int) ([]int, error)
}
