package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/rowplan/internal/client"
	"github.com/claude/rowplan/internal/config"
	rowmcp "github.com/claude/rowplan/internal/mcp"
	"github.com/claude/rowplan/internal/planner"
	"github.com/claude/rowplan/internal/workout"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "rowplan server URL for remote mode (e.g. https://rowplan.tail1234.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("ROWPLAN_AUTH_API_KEY"), "API key sent to the remote server")
	configPath := flag.String("config", "", "optional config file for local mode")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("rowplan-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var p planner.Planner
	if *serverURL != "" {
		p = client.New(*serverURL, client.WithAPIKey(*apiKey))
		log.Info("mcp remote mode", "server", *serverURL)
	} else {
		cfg := config.Default()
		if *configPath != "" {
			loaded, err := config.Load(*configPath)
			if err != nil {
				log.Error("failed to load config", "error", err)
				os.Exit(1)
			}
			cfg = loaded
		}

		gen, err := workout.New(workout.Config{
			SurpriseMinSegments: cfg.Generator.SurpriseMinSegments,
			SurpriseMaxSegments: cfg.Generator.SurpriseMaxSegments,
			Rand:                workout.NewRand(cfg.Generator.Seed),
			Logger:              log,
		})
		if err != nil {
			log.Error("invalid generator settings", "error", err)
			os.Exit(1)
		}
		p = planner.New(gen, cfg.Generator.MaxMinutes, log)
		log.Info("mcp local mode")
	}

	if err := server.ServeStdio(rowmcp.New(p, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
