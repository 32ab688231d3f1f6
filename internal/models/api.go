package models

import (
	"fmt"
	"math"

	"github.com/claude/rowplan/internal/workout"
)

// GenerateRequest is the body of POST /api/v1/workouts.
type GenerateRequest struct {
	WorkoutType string  `json:"workout_type"`
	Difficulty  string  `json:"difficulty"`
	TotalTime   float64 `json:"total_time"`
}

// GenerateResponse is returned by POST /api/v1/workouts. On failure only
// Success and Message are set.
type GenerateResponse struct {
	Success          bool          `json:"success"`
	Message          string        `json:"message"`
	ID               string        `json:"id,omitempty"`
	TotalTimeSeconds float64       `json:"total_time_seconds,omitempty"`
	Plan             *workout.Plan `json:"plan,omitempty"`
	Intervals        []Interval    `json:"intervals_data,omitempty"`
}

// Interval is a segment prepared for a countdown display.
type Interval struct {
	Name               string  `json:"name"`
	DurationSeconds    float64 `json:"duration_seconds"`
	DisplayTime        string  `json:"display_time"`
	StartOffsetSeconds float64 `json:"start_offset_seconds"`
	StrokeRate         int     `json:"stroke_rate"`
	Resistance         int     `json:"resistance"`
}

// Intervals flattens a plan into display rows with running start offsets.
func Intervals(plan *workout.Plan) []Interval {
	out := make([]Interval, 0, len(plan.Segments))
	var offset float64
	for _, s := range plan.Segments {
		out = append(out, Interval{
			Name:               s.Label,
			DurationSeconds:    s.DurationSeconds,
			DisplayTime:        FormatClock(s.DurationSeconds),
			StartOffsetSeconds: offset,
			StrokeRate:         s.StrokeRate,
			Resistance:         s.Resistance,
		})
		offset += s.DurationSeconds
	}
	return out
}

// FormatClock renders seconds as mm:ss, rounding to the nearest second.
// Minutes are not wrapped into hours.
func FormatClock(seconds float64) string {
	total := int(math.Round(math.Max(seconds, 0)))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
