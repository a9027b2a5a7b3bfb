package mcp

import (
	"context"

	"github.com/meltforce/ironlog/internal/analytics"
	"github.com/meltforce/ironlog/internal/models"
)

// DataSource abstracts the analytics layer for MCP tools. Both
// *analytics.Engine (local) and HTTPClient (remote via REST API)
// satisfy this interface.
type DataSource interface {
	ExerciseRecords(ctx context.Context, userID int, exerciseID string) ([]models.ExerciseRecordPoint, error)
	Bests(ctx context.Context, userID int, exerciseID string) (models.PersonalBests, error)
	Progress(ctx context.Context, userID int, exerciseID string) ([]models.ProgressPoint, error)
	StandardFor(ctx context.Context, userID int, exerciseID string) (*analytics.Classification, error)
	StandardsLadder(ctx context.Context, exerciseID string, gender models.Gender) (*analytics.StandardsLadder, error)
	ExercisePercentile(ctx context.Context, userID int, exerciseID string) (models.LeaderboardEntry, error)
	Leaderboard(ctx context.Context, userID int) ([]models.LeaderboardEntry, error)
}

// Compile-time check: *analytics.Engine satisfies DataSource.
var _ DataSource = (*analytics.Engine)(nil)
