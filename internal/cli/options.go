package cli

import (
	"context"
	"fmt"
	"strings"
)

type OptionsCmd struct {
	Source `embed:""`
}

func (c *OptionsCmd) Run(ctx *Context) error {
	p, err := c.open(ctx.Log)
	if err != nil {
		return err
	}

	catalog, err := p.Catalog(context.Background())
	if err != nil {
		return fmt.Errorf("fetching options: %w", err)
	}

	fmt.Fprintf(ctx.Out, "%s\n", titleStyle.Render("Workout types"))
	for _, t := range catalog.WorkoutTypes {
		fmt.Fprintf(ctx.Out, "  %s\n", t)
	}
	fmt.Fprintf(ctx.Out, "%s %s\n", titleStyle.Render("Difficulties:"), strings.Join(catalog.Difficulties, ", "))
	if catalog.MaxMinutes > 0 {
		fmt.Fprintf(ctx.Out, "%s %g-%g minutes\n", titleStyle.Render("Duration:"), catalog.MinMinutes, catalog.MaxMinutes)
	} else {
		fmt.Fprintf(ctx.Out, "%s at least %g minutes\n", titleStyle.Render("Duration:"), catalog.MinMinutes)
	}
	return nil
}
