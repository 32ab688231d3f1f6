// Package planner turns API requests into generated plans. The HTTP server
// and the local MCP mode both go through it so they clamp and describe plans
// the same way.
package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claude/rowplan/internal/models"
	"github.com/claude/rowplan/internal/workout"
	"github.com/google/uuid"
)

// Planner is satisfied by *Service (in-process) and *client.Client (remote).
type Planner interface {
	Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResponse, error)
	Catalog(ctx context.Context) (*workout.Catalog, error)
}

// Compile-time check: *Service satisfies Planner.
var _ Planner = (*Service)(nil)

// Service generates plans in-process.
type Service struct {
	gen        *workout.Generator
	maxMinutes float64
	log        *slog.Logger
}

// New creates a Service. maxMinutes <= 0 disables clamping.
func New(gen *workout.Generator, maxMinutes float64, log *slog.Logger) *Service {
	return &Service{gen: gen, maxMinutes: maxMinutes, log: log}
}

// Generate clamps the requested total to the configured maximum and builds a
// plan. Validation failures wrap workout.ErrInvalidDuration or
// workout.ErrUnknownWorkoutType.
func (s *Service) Generate(_ context.Context, req models.GenerateRequest) (*models.GenerateResponse, error) {
	minutes := req.TotalTime
	if s.maxMinutes > 0 && minutes > s.maxMinutes {
		minutes = s.maxMinutes
	}

	plan, err := s.gen.GenerateFromLabels(req.WorkoutType, req.Difficulty, minutes)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s.log.Info("workout generated",
		"id", id,
		"type", plan.Type,
		"difficulty", plan.Difficulty,
		"minutes", minutes,
		"segments", len(plan.Segments),
	)

	return &models.GenerateResponse{
		Success: true,
		ID:      id,
		Message: fmt.Sprintf("Timer set for %g minutes for a %s %s workout. Press 'Start' to begin.",
			minutes, plan.Difficulty, plan.Type),
		TotalTimeSeconds: minutes * 60,
		Plan:             plan,
		Intervals:        models.Intervals(plan),
	}, nil
}

// Catalog lists the selectable workout types and difficulties.
func (s *Service) Catalog(_ context.Context) (*workout.Catalog, error) {
	return workout.NewCatalog(s.maxMinutes), nil
}
