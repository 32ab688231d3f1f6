package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/claude/rowplan/internal/models"
	"gopkg.in/yaml.v3"
)

type GenerateCmd struct {
	Source `embed:""`

	Type       string  `short:"t" help:"Workout type (Cardio, Endurance, Interval, Rate Pyramid, Time Pyramid, Strength, Surprise)." default:"Cardio"`
	Difficulty string  `short:"d" help:"Difficulty (Easy, Medium, Hard)." default:"Medium"`
	Minutes    float64 `short:"m" help:"Total workout length in minutes." default:"30"`
	Format     string  `short:"f" help:"Output format." enum:"text,json,yaml" default:"text"`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	p, err := c.open(ctx.Log)
	if err != nil {
		return err
	}

	resp, err := p.Generate(context.Background(), models.GenerateRequest{
		WorkoutType: c.Type,
		Difficulty:  c.Difficulty,
		TotalTime:   c.Minutes,
	})
	if err != nil {
		return fmt.Errorf("generating workout: %w", err)
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp.Plan)
	case "yaml":
		enc := yaml.NewEncoder(ctx.Out)
		enc.SetIndent(2)
		if err := enc.Encode(resp.Plan); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(ctx.Out, resp)
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Right).PaddingRight(2)
)

// column widths for #, start, length, rate and resistance.
var colWidths = [...]int{5, 8, 9, 7, 9}

func renderText(w io.Writer, resp *models.GenerateResponse) error {
	plan := resp.Plan
	title := fmt.Sprintf("%s %s workout, %g minutes", plan.Difficulty, plan.Type, plan.TotalMinutes)
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, headerStyle.Render(row("#", "Start", "Time", "SPM", "Level", "Segment"))); err != nil {
		return err
	}

	for i, in := range resp.Intervals {
		line := row(
			fmt.Sprint(i+1),
			models.FormatClock(in.StartOffsetSeconds),
			in.DisplayTime,
			fmt.Sprint(in.StrokeRate),
			fmt.Sprint(in.Resistance),
			in.Name,
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func row(num, start, length, rate, level, label string) string {
	cells := []string{num, start, length, rate, level}
	out := make([]string, 0, len(cells)+1)
	for i, c := range cells {
		out = append(out, cellStyle.Width(colWidths[i]).Render(c))
	}
	out = append(out, label)
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}
