package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/rowplan/internal/client"
	"github.com/claude/rowplan/internal/models"
	"github.com/claude/rowplan/internal/planner"
	"github.com/claude/rowplan/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandlers(t *testing.T) *handlers {
	t.Helper()
	gen, err := workout.New(workout.Config{Rand: workout.NewRand(9)})
	if err != nil {
		t.Fatal(err)
	}
	return &handlers{planner: planner.New(gen, 240, discardLogger()), log: discardLogger()}
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want mcp.TextContent", res.Content[0])
	}
	return text.Text
}

// stubPlanner returns fixed errors so error mapping can be checked without a server.
type stubPlanner struct {
	err error
}

func (s stubPlanner) Generate(context.Context, models.GenerateRequest) (*models.GenerateResponse, error) {
	return nil, s.err
}

func (s stubPlanner) Catalog(context.Context) (*workout.Catalog, error) {
	return nil, s.err
}

// TestGenerateWorkout verifies a valid call returns a plan whose segments sum
// to the requested total.
func TestGenerateWorkout(t *testing.T) {
	h := newHandlers(t)
	res, err := h.generateWorkout(context.Background(), toolRequest(map[string]any{
		"workout_type":  "Time Pyramid",
		"difficulty":    "Hard",
		"total_minutes": 40.0,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}

	var resp models.GenerateResponse
	if err := json.Unmarshal([]byte(resultText(t, res)), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Plan == nil || resp.Plan.Type != workout.WorkoutTimePyramid {
		t.Fatalf("plan = %+v", resp.Plan)
	}
	if got := resp.Plan.TotalSeconds(); got != 2400 {
		t.Errorf("total seconds = %v, want 2400", got)
	}
}

// TestGenerateWorkoutValidation verifies missing or bad arguments become tool errors.
func TestGenerateWorkoutValidation(t *testing.T) {
	h := newHandlers(t)
	cases := []map[string]any{
		{"total_minutes": 30.0},
		{"workout_type": "Cardio"},
		{"workout_type": "Cardio", "total_minutes": 10.0},
		{"workout_type": "Yoga", "total_minutes": 30.0},
	}
	for _, args := range cases {
		res, err := h.generateWorkout(context.Background(), toolRequest(args))
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", args, err)
		}
		if !res.IsError {
			t.Errorf("%v: expected tool error, got %s", args, resultText(t, res))
		}
	}
}

// TestGenerateWorkoutRemoteError verifies a 4xx from a remote server is
// passed through as the tool error message.
func TestGenerateWorkoutRemoteError(t *testing.T) {
	h := &handlers{
		planner: stubPlanner{err: &client.APIError{Status: 400, Message: "Error: minimum workout time is 15 minutes."}},
		log:     discardLogger(),
	}
	res, err := h.generateWorkout(context.Background(), toolRequest(map[string]any{
		"workout_type": "Cardio", "total_minutes": 20.0,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if got := resultText(t, res); got != "Error: minimum workout time is 15 minutes." {
		t.Errorf("message = %q", got)
	}
}

// TestListWorkoutOptions verifies the catalog lists every workout type.
func TestListWorkoutOptions(t *testing.T) {
	res, err := newHandlers(t).listWorkoutOptions(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var catalog workout.Catalog
	if err := json.Unmarshal([]byte(resultText(t, res)), &catalog); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(catalog.WorkoutTypes) != len(workout.WorkoutTypes) {
		t.Errorf("workout types = %v", catalog.WorkoutTypes)
	}
	if catalog.MaxMinutes != 240 {
		t.Errorf("max minutes = %v, want 240", catalog.MaxMinutes)
	}
}

// TestWorkoutOptionsResource verifies the resource echoes the request URI.
func TestWorkoutOptionsResource(t *testing.T) {
	var req mcp.ReadResourceRequest
	req.Params.URI = "rowplan://workout_options"

	contents, err := newHandlers(t).workoutOptions(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents = %T", contents[0])
	}
	if text.URI != req.Params.URI || text.MIMEType != "application/json" {
		t.Errorf("resource = %s %s", text.URI, text.MIMEType)
	}

	_, err = (&handlers{planner: stubPlanner{err: errors.New("down")}, log: discardLogger()}).
		workoutOptions(context.Background(), req)
	if err == nil {
		t.Error("expected error from failing planner")
	}
}

// TestNew verifies the server registers without panicking.
func TestNew(t *testing.T) {
	if s := New(stubPlanner{}, "test", discardLogger()); s == nil {
		t.Fatal("New returned nil")
	}
}
