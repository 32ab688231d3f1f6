// Package workout builds indoor-rowing workout plans: a warm-up, a main set
// shaped by the workout type and difficulty, and a cool-down.
package workout

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

var (
	ErrInvalidDuration    = errors.New("invalid workout duration")
	ErrUnknownWorkoutType = errors.New("unknown workout type")
)

const (
	// MinTotalMinutes is the shortest workout Generate accepts.
	MinTotalMinutes = 15

	warmupMinutes   = 5
	cooldownMinutes = 5

	warmupStrokeRate   = 20
	warmupResistance   = 3
	cooldownStrokeRate = 18
	cooldownResistance = 2

	DefaultSurpriseMinSegments = 3
	DefaultSurpriseMaxSegments = 6
)

// Config tunes a Generator. Zero values select defaults.
type Config struct {
	SurpriseMinSegments int
	SurpriseMaxSegments int
	// Rand drives the surprise builder. Defaults to NewRand(0).
	Rand   Rand
	Logger *slog.Logger
}

// Generator builds plans. It is safe for concurrent use as long as its Rand is.
type Generator struct {
	surpriseMin int
	surpriseMax int
	rng         Rand
	log         *slog.Logger
	builders    map[WorkoutType]builderFunc
}

// New creates a Generator. An inverted surprise range is rejected.
func New(cfg Config) (*Generator, error) {
	g := &Generator{
		surpriseMin: cfg.SurpriseMinSegments,
		surpriseMax: cfg.SurpriseMaxSegments,
		rng:         cfg.Rand,
		log:         cfg.Logger,
	}
	if g.surpriseMin <= 0 {
		g.surpriseMin = DefaultSurpriseMinSegments
	}
	if g.surpriseMax <= 0 {
		g.surpriseMax = max(DefaultSurpriseMaxSegments, g.surpriseMin)
	}
	if g.surpriseMin > g.surpriseMax {
		return nil, fmt.Errorf("surprise segment range %d-%d is inverted", g.surpriseMin, g.surpriseMax)
	}
	if g.rng == nil {
		g.rng = NewRand(0)
	}
	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g.builders = map[WorkoutType]builderFunc{
		WorkoutCardio:      buildSteadyState,
		WorkoutEndurance:   buildSteadyState,
		WorkoutInterval:    buildInterval,
		WorkoutRatePyramid: buildRatePyramid,
		WorkoutTimePyramid: buildTimePyramid,
		WorkoutStrength:    buildStrength,
		WorkoutSurprise:    g.buildSurprise,
	}
	return g, nil
}

func checkDuration(totalMinutes float64) error {
	if math.IsNaN(totalMinutes) || math.IsInf(totalMinutes, 0) {
		return fmt.Errorf("%w: %g minutes", ErrInvalidDuration, totalMinutes)
	}
	if totalMinutes < MinTotalMinutes {
		return fmt.Errorf("%w: %g minutes is below the %d minute minimum", ErrInvalidDuration, totalMinutes, MinTotalMinutes)
	}
	return nil
}

// allocation is the warm-up / main / cool-down split in seconds.
type allocation struct {
	warmup, main, cooldown float64
}

// allocate reserves five minutes each for warm-up and cool-down. Totals too
// short for that fall back to a quarter / half / quarter split.
func allocate(totalMinutes float64) allocation {
	a := allocation{
		warmup:   warmupMinutes * 60,
		main:     (totalMinutes - warmupMinutes - cooldownMinutes) * 60,
		cooldown: cooldownMinutes * 60,
	}
	if a.main < 0 {
		a = allocation{
			warmup:   totalMinutes / 4 * 60,
			main:     totalMinutes / 2 * 60,
			cooldown: totalMinutes / 4 * 60,
		}
	}
	return a
}

// Generate builds a plan of totalMinutes. The cool-down is sized to whatever
// the warm-up and main set leave over, so the plan always sums to exactly
// totalMinutes*60 seconds.
func (g *Generator) Generate(workoutType WorkoutType, difficulty Difficulty, totalMinutes float64) (*Plan, error) {
	if err := checkDuration(totalMinutes); err != nil {
		return nil, err
	}
	build, ok := g.builders[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkoutType, workoutType)
	}

	alloc := allocate(totalMinutes)
	main := build(alloc.main, difficulty)

	segs := make([]Segment, 0, len(main)+2)
	segs = append(segs, Segment{
		Label:           "Warm-up",
		DurationSeconds: alloc.warmup,
		StrokeRate:      warmupStrokeRate,
		Resistance:      warmupResistance,
	})
	segs = append(segs, main...)

	// Same summation order as Plan.TotalSeconds so the backfill is exact.
	var used float64
	for _, s := range segs {
		used += s.DurationSeconds
	}
	segs = append(segs, Segment{
		Label:           "Cool-down",
		DurationSeconds: max(totalMinutes*60-used, 0),
		StrokeRate:      cooldownStrokeRate,
		Resistance:      cooldownResistance,
	})

	plan := &Plan{
		Type:         workoutType,
		Difficulty:   difficulty,
		TotalMinutes: totalMinutes,
		Segments:     segs,
	}
	g.log.Debug("plan generated",
		"type", workoutType,
		"difficulty", difficulty,
		"minutes", totalMinutes,
		"segments", len(segs),
	)
	return plan, nil
}

// GenerateFromLabels parses UI labels and calls Generate. The workout type
// must be recognized; the difficulty falls back to the default tier.
func (g *Generator) GenerateFromLabels(workoutType, difficulty string, totalMinutes float64) (*Plan, error) {
	if err := checkDuration(totalMinutes); err != nil {
		return nil, err
	}
	t, err := ParseWorkoutType(workoutType)
	if err != nil {
		return nil, err
	}
	return g.Generate(t, ParseDifficulty(difficulty), totalMinutes)
}
