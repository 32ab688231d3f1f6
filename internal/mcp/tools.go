package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/rowplan/internal/client"
	"github.com/claude/rowplan/internal/models"
	"github.com/claude/rowplan/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGenerateWorkout = mcp.NewTool("generate_workout",
	mcp.WithDescription("Generate an indoor rowing workout plan. Returns ordered segments with label, duration in seconds, stroke rate and resistance, plus mm:ss display rows."),
	mcp.WithString("workout_type", mcp.Required(), mcp.Description("Workout type (Cardio, Endurance, Interval, Rate Pyramid, Time Pyramid, Strength, Surprise)")),
	mcp.WithString("difficulty", mcp.Description("Difficulty level. Unrecognized values use the default profile."), mcp.Enum("Easy", "Medium", "Hard")),
	mcp.WithNumber("total_minutes", mcp.Required(), mcp.Description("Total workout length in minutes (minimum 15)."), mcp.Min(workout.MinTotalMinutes)),
)

var toolListWorkoutOptions = mcp.NewTool("list_workout_options",
	mcp.WithDescription("List the available workout types, difficulty levels and the allowed duration range."),
)

// --- Tool handlers ---

func (h *handlers) generateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	workoutType := req.GetString("workout_type", "")
	if workoutType == "" {
		return mcp.NewToolResultError("workout_type parameter is required"), nil
	}
	minutes := req.GetFloat("total_minutes", 0)
	if minutes <= 0 {
		return mcp.NewToolResultError("total_minutes parameter must be a positive number"), nil
	}

	resp, err := h.planner.Generate(ctx, models.GenerateRequest{
		WorkoutType: workoutType,
		Difficulty:  req.GetString("difficulty", ""),
		TotalTime:   minutes,
	})
	if err != nil {
		if msg, ok := userError(err); ok {
			return mcp.NewToolResultError(msg), nil
		}
		h.log.Error("mcp generate_workout", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(resp)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkoutOptions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog, err := h.planner.Catalog(ctx)
	if err != nil {
		h.log.Error("mcp list_workout_options", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(catalog)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// userError reports whether err was caused by the caller's input, and the
// message to show them.
func userError(err error) (string, bool) {
	switch {
	case errors.Is(err, workout.ErrInvalidDuration):
		return fmt.Sprintf("total_minutes must be at least %d", workout.MinTotalMinutes), true
	case errors.Is(err, workout.ErrUnknownWorkoutType):
		return err.Error(), true
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status < 500 {
		return apiErr.Message, true
	}
	return "", false
}
