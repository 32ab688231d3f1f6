package models

import (
	"testing"

	"github.com/claude/rowplan/internal/workout"
)

// TestFormatClock verifies mm:ss rendering, including rounding and long segments.
func TestFormatClock(t *testing.T) {
	cases := map[float64]string{
		0:       "00:00",
		59.4:    "00:59",
		59.6:    "01:00",
		300:     "05:00",
		85.7142: "01:26",
		6000:    "100:00",
		-3:      "00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%v) = %q, want %q", in, got, want)
		}
	}
}

// TestIntervals verifies that display rows carry running start offsets.
func TestIntervals(t *testing.T) {
	plan := &workout.Plan{Segments: []workout.Segment{
		{Label: "Warm-up", DurationSeconds: 300, StrokeRate: 20, Resistance: 3},
		{Label: "Steady State Row", DurationSeconds: 600, StrokeRate: 26, Resistance: 6},
		{Label: "Cool-down", DurationSeconds: 300, StrokeRate: 18, Resistance: 2},
	}}

	rows := Intervals(plan)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	wantOffsets := []float64{0, 300, 900}
	for i, row := range rows {
		if row.StartOffsetSeconds != wantOffsets[i] {
			t.Errorf("row %d offset = %v, want %v", i, row.StartOffsetSeconds, wantOffsets[i])
		}
		if row.Name != plan.Segments[i].Label {
			t.Errorf("row %d name = %q, want %q", i, row.Name, plan.Segments[i].Label)
		}
	}
	if rows[1].DisplayTime != "10:00" {
		t.Errorf("display = %q, want 10:00", rows[1].DisplayTime)
	}
	if rows[1].StrokeRate != 26 || rows[1].Resistance != 6 {
		t.Errorf("row 1 targets = %d/%d, want 26/6", rows[1].StrokeRate, rows[1].Resistance)
	}
}
