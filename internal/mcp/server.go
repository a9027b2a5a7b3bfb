package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/ironlog/internal/analytics"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronLog strength analytics server. Query personal records, estimated 1RM progress, strength standards, and percentile rankings. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, standards: analytics.NewStandards(), log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetExerciseRecords, Handler: h.getExerciseRecords},
		server.ServerTool{Tool: toolGetPersonalBests, Handler: h.getPersonalBests},
		server.ServerTool{Tool: toolGetProgress, Handler: h.getProgress},
		server.ServerTool{Tool: toolGetStrengthStandard, Handler: h.getStrengthStandard},
		server.ServerTool{Tool: toolGetStandardsLadder, Handler: h.getStandardsLadder},
		server.ServerTool{Tool: toolGetPercentile, Handler: h.getPercentile},
		server.ServerTool{Tool: toolGetLeaderboard, Handler: h.getLeaderboard},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resKeyLifts, Handler: h.keyLifts},
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds        DataSource
	standards *analytics.Standards
	log       *slog.Logger
}

// --- Resource definitions ---

var resKeyLifts = mcp.NewResource(
	"ironlog://key_lifts",
	"Key Lifts",
	mcp.WithResourceDescription("The six key lifts used for leaderboard aggregation, with standards availability"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"ironlog://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All known exercises with IDs, names, and rep-based/key-lift flags"),
	mcp.WithMIMEType("application/json"),
)
