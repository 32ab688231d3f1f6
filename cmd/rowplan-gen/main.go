package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/claude/rowplan/internal/cli"
	"github.com/claude/rowplan/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var CLI struct {
	Version  kong.VersionFlag
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"warn" env:"ROWPLAN_LOG_LEVEL"`

	Generate cli.GenerateCmd `cmd:"" help:"Generate a rowing workout." default:"1"`
	Options  cli.OptionsCmd  `cmd:"" help:"List workout types and difficulties."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rowplan-gen"),
		kong.Description("Indoor rowing workout generator"),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	level, err := config.ParseLevel(CLI.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := ctx.Run(&cli.Context{Out: os.Stdout, Log: log}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
