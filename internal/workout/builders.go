package workout

import (
	"fmt"
	"math"
)

// builderFunc turns allotted main-set seconds into segments.
type builderFunc func(allotted float64, d Difficulty) []Segment

const (
	intervalRestStrokeRate = 20
	finalRowStrokeRate     = 22
	finalRowResistance     = 5
	// Leftover interval time at or below this is not worth its own segment;
	// the cool-down backfill absorbs it.
	minRemainderSeconds = 6

	powerStrokeRate    = 20
	recoveryStrokeRate = 18
	recoveryResistance = 5
)

// buildSteadyState fills the whole allotment with one segment at the base
// profile. Non-positive allotments still yield a zero-length segment.
func buildSteadyState(allotted float64, d Difficulty) []Segment {
	p := ProfileFor(d)
	return []Segment{{
		Label:           "Steady State Row",
		DurationSeconds: math.Max(allotted, 0),
		StrokeRate:      p.StrokeRate,
		Resistance:      p.Resistance,
	}}
}

type intervalParams struct {
	work, rest float64
}

var intervalTable = map[Difficulty]intervalParams{
	DifficultyEasy:    {work: 60, rest: 90},
	DifficultyMedium:  {work: 90, rest: 60},
	DifficultyHard:    {work: 60, rest: 30},
	DifficultyDefault: {work: 60, rest: 60},
}

func intervalParamsFor(d Difficulty) intervalParams {
	if p, ok := intervalTable[d]; ok {
		return p
	}
	return intervalTable[DifficultyDefault]
}

// wholeCycles is how many complete work+rest cycles fit in allotted.
func wholeCycles(allotted, work, rest float64) int {
	cycle := work + rest
	if cycle <= 0 || allotted <= 0 {
		return 0
	}
	return int(math.Floor(allotted / cycle))
}

// buildInterval alternates work and rest. Time left after the last whole
// cycle goes into a trailing "Final Easy Row".
func buildInterval(allotted float64, d Difficulty) []Segment {
	p := ProfileFor(d)
	ip := intervalParamsFor(d)

	cycles := wholeCycles(allotted, ip.work, ip.rest)
	segs := make([]Segment, 0, 2*cycles+1)
	for i := 1; i <= cycles; i++ {
		segs = append(segs,
			Segment{
				Label:           fmt.Sprintf("Work Interval %d", i),
				DurationSeconds: ip.work,
				StrokeRate:      p.StrokeRate + 4,
				Resistance:      p.Resistance,
			},
			Segment{
				Label:           fmt.Sprintf("Rest Interval %d", i),
				DurationSeconds: ip.rest,
				StrokeRate:      intervalRestStrokeRate,
				Resistance:      p.Resistance,
			},
		)
	}

	leftover := allotted - float64(cycles)*(ip.work+ip.rest)
	if leftover > minRemainderSeconds {
		segs = append(segs, Segment{
			Label:           "Final Easy Row",
			DurationSeconds: leftover,
			StrokeRate:      finalRowStrokeRate,
			Resistance:      finalRowResistance,
		})
	}
	return segs
}

type strengthParams struct {
	burst, recovery float64
	resistance      int
}

var strengthTable = map[Difficulty]strengthParams{
	DifficultyEasy:    {burst: 30, recovery: 90, resistance: 6},
	DifficultyMedium:  {burst: 30, recovery: 90, resistance: 7},
	DifficultyHard:    {burst: 60, recovery: 60, resistance: 8},
	DifficultyDefault: {burst: 30, recovery: 90, resistance: 7},
}

func strengthParamsFor(d Difficulty) strengthParams {
	if p, ok := strengthTable[d]; ok {
		return p
	}
	return strengthTable[DifficultyDefault]
}

// buildStrength alternates short heavy pulls with recovery. Unlike
// buildInterval, time after the last whole set is dropped.
func buildStrength(allotted float64, d Difficulty) []Segment {
	sp := strengthParamsFor(d)

	sets := wholeCycles(allotted, sp.burst, sp.recovery)
	segs := make([]Segment, 0, 2*sets)
	for i := 1; i <= sets; i++ {
		segs = append(segs,
			Segment{
				Label:           fmt.Sprintf("Power Pull %d", i),
				DurationSeconds: sp.burst,
				StrokeRate:      powerStrokeRate,
				Resistance:      sp.resistance,
			},
			Segment{
				Label:           fmt.Sprintf("Active Recovery %d", i),
				DurationSeconds: sp.recovery,
				StrokeRate:      recoveryStrokeRate,
				Resistance:      recoveryResistance,
			},
		)
	}
	return segs
}
