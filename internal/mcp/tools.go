package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/ironlog/internal/models"
)

// resolveExercise accepts either a catalog ID (barbell-bench-press) or a
// display name ("Bench Press") and returns the canonical ID.
func resolveExercise(s string) (string, bool) {
	if _, ok := models.ExerciseByID(s); ok {
		return s, true
	}
	id := models.ResolveExerciseID(s)
	_, ok := models.ExerciseByID(id)
	return id, ok
}

// --- Tool definitions ---

var toolGetExerciseRecords = mcp.NewTool("get_exercise_records",
	mcp.WithDescription("All-time records for one exercise: for each weight ever lifted, the best rep count and the date it was set. Sorted heaviest first."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise ID or name (e.g. barbell-bench-press, 'Deadlift')")),
)

var toolGetPersonalBests = mcp.NewTool("get_personal_bests",
	mcp.WithDescription("Personal bests for one exercise: heaviest weight, best estimated 1RM, best reps, best single-set volume, and best session volume (tonnage)."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise ID or name")),
)

var toolGetProgress = mcp.NewTool("get_progress",
	mcp.WithDescription("Estimated 1RM progress over time for one exercise. One point per session, carrying the running best so the series never decreases."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise ID or name")),
)

var toolGetStrengthStandard = mcp.NewTool("get_strength_standard",
	mcp.WithDescription("Classify the user's best result on one exercise against strength standards (Beginner through World Class). Returns the current tier, the next tier, and progress toward it. Requires body weight and gender on the profile."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise ID or name")),
)

var toolGetStandardsLadder = mcp.NewTool("get_standards_ladder",
	mcp.WithDescription("The full six-tier standards table for an exercise and gender, with per-tier target values, descriptions, and training recommendations."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise ID or name")),
	mcp.WithString("gender", mcp.Required(), mcp.Description("Gender the table is published for"), mcp.Enum("male", "female")),
)

var toolGetPercentile = mcp.NewTool("get_percentile",
	mcp.WithDescription("Rank the user's best estimated 1RM for one exercise against every user's best. Returns the percentile (100 = at or above everyone) and population size."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise ID or name")),
)

var toolGetLeaderboard = mcp.NewTool("get_leaderboard",
	mcp.WithDescription("Percentile standings across all key lifts for the user. Lifts with no population data are omitted."),
)

// --- Tool handlers ---

// exerciseArg extracts and resolves the required exercise parameter. The
// second return is a non-nil error result to hand back to the client.
func exerciseArg(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	raw, err := req.RequireString("exercise")
	if err != nil {
		return "", mcp.NewToolResultError("exercise parameter is required")
	}
	id, ok := resolveExercise(raw)
	if !ok {
		return "", mcp.NewToolResultError("unknown exercise: " + raw)
	}
	return id, nil
}

func (h *handlers) getExerciseRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, errRes := exerciseArg(req)
	if errRes != nil {
		return errRes, nil
	}

	uid := UserIDFromContext(ctx)
	records, err := h.ds.ExerciseRecords(ctx, uid, exerciseID)
	if err != nil {
		h.log.Error("mcp get_exercise_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalBests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, errRes := exerciseArg(req)
	if errRes != nil {
		return errRes, nil
	}

	uid := UserIDFromContext(ctx)
	bests, err := h.ds.Bests(ctx, uid, exerciseID)
	if err != nil {
		h.log.Error("mcp get_personal_bests", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(bests)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, errRes := exerciseArg(req)
	if errRes != nil {
		return errRes, nil
	}

	uid := UserIDFromContext(ctx)
	points, err := h.ds.Progress(ctx, uid, exerciseID)
	if err != nil {
		h.log.Error("mcp get_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(points)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getStrengthStandard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, errRes := exerciseArg(req)
	if errRes != nil {
		return errRes, nil
	}

	uid := UserIDFromContext(ctx)
	classification, err := h.ds.StandardFor(ctx, uid, exerciseID)
	if err != nil {
		h.log.Error("mcp get_strength_standard", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if classification == nil {
		return mcp.NewToolResultText("not classifiable: no standards table for this exercise, or body weight/gender missing from the profile"), nil
	}

	result, err := mcp.NewToolResultJSON(classification)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getStandardsLadder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, errRes := exerciseArg(req)
	if errRes != nil {
		return errRes, nil
	}

	genderStr, err := req.RequireString("gender")
	if err != nil {
		return mcp.NewToolResultError("gender parameter is required"), nil
	}
	gender := models.Gender(genderStr)
	if !gender.Valid() {
		return mcp.NewToolResultError("invalid gender: " + genderStr), nil
	}

	ladder, err := h.ds.StandardsLadder(ctx, exerciseID, gender)
	if err != nil {
		h.log.Error("mcp get_standards_ladder", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if ladder == nil {
		return mcp.NewToolResultText("no standards table published for " + exerciseID), nil
	}

	result, err := mcp.NewToolResultJSON(ladder)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPercentile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exerciseID, errRes := exerciseArg(req)
	if errRes != nil {
		return errRes, nil
	}

	uid := UserIDFromContext(ctx)
	entry, err := h.ds.ExercisePercentile(ctx, uid, exerciseID)
	if err != nil {
		h.log.Error("mcp get_percentile", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entry)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLeaderboard(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	entries, err := h.ds.Leaderboard(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_leaderboard", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
