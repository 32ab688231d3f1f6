// Package cli holds the rowplan-gen commands.
package cli

import (
	"io"
	"log/slog"

	"github.com/claude/rowplan/internal/client"
	"github.com/claude/rowplan/internal/planner"
	"github.com/claude/rowplan/internal/workout"
)

// Context is passed to every command's Run method.
type Context struct {
	Out io.Writer
	Log *slog.Logger
}

// Source selects where plans come from: the local generator, or a remote
// server when Server is set.
type Source struct {
	Server     string  `help:"Generate on a remote rowplan server instead of locally." env:"ROWPLAN_SERVER"`
	APIKey     string  `help:"API key for the remote server." env:"ROWPLAN_AUTH_API_KEY"`
	Seed       uint64  `help:"Seed for surprise workouts (0 picks a random seed)."`
	MaxMinutes float64 `help:"Clamp longer requests to this many minutes." default:"240"`
}

func (s Source) open(log *slog.Logger) (planner.Planner, error) {
	if s.Server != "" {
		return client.New(s.Server, client.WithAPIKey(s.APIKey)), nil
	}
	gen, err := workout.New(workout.Config{
		Rand:   workout.NewRand(s.Seed),
		Logger: log,
	})
	if err != nil {
		return nil, err
	}
	return planner.New(gen, s.MaxMinutes, log), nil
}
