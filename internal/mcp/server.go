package mcp

import (
	"log/slog"

	"github.com/claude/rowplan/internal/planner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
// p is either an in-process *planner.Service or a *client.Client for
// remote mode.
func New(p planner.Planner, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("rowplan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("rowplan builds indoor rowing workouts. Each plan is a warm-up, a main set and a cool-down; every segment has a duration, a target stroke rate (spm) and a resistance level."),
	)

	h := &handlers{planner: p, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGenerateWorkout, Handler: h.generateWorkout},
		server.ServerTool{Tool: toolListWorkoutOptions, Handler: h.listWorkoutOptions},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWorkoutOptions, Handler: h.workoutOptions},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	planner planner.Planner
	log     *slog.Logger
}

// --- Resource definitions ---

var resWorkoutOptions = mcp.NewResource(
	"rowplan://workout_options",
	"Workout Options",
	mcp.WithResourceDescription("Workout types, difficulty levels and the allowed total duration range"),
	mcp.WithMIMEType("application/json"),
)
