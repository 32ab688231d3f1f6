package workout

import "fmt"

const (
	shortPyramid = "12321"
	longPyramid  = "1234321"

	ratePyramidLongAfter = 20 * 60
	timePyramidLongAfter = 30 * 60
)

var ratePyramidMultiplier = map[Difficulty]int{
	DifficultyEasy:    1,
	DifficultyMedium:  2,
	DifficultyHard:    3,
	DifficultyDefault: 2,
}

var timePyramidRest = map[Difficulty]float64{
	DifficultyEasy:    60,
	DifficultyMedium:  45,
	DifficultyHard:    30,
	DifficultyDefault: 45,
}

// pyramidPattern picks the short pattern below longAfter seconds.
func pyramidPattern(allotted, longAfter float64) []int {
	pattern := longPyramid
	if allotted < longAfter {
		pattern = shortPyramid
	}
	steps := make([]int, len(pattern))
	for i, c := range pattern {
		steps[i] = int(c - '0')
	}
	return steps
}

// pyramidSection names a step by its position relative to the midpoint,
// not by its value.
func pyramidSection(i, n int) string {
	mid := n / 2
	switch {
	case i < mid:
		return "Climbing"
	case i == mid:
		return "Peak"
	default:
		return "Descending"
	}
}

// buildRatePyramid ramps stroke rate up and back down. Every work step is
// followed by a rest, and all segments share the same duration.
func buildRatePyramid(allotted float64, d Difficulty) []Segment {
	p := ProfileFor(d)
	mult, ok := ratePyramidMultiplier[d]
	if !ok {
		mult = ratePyramidMultiplier[DifficultyDefault]
	}

	steps := pyramidPattern(allotted, ratePyramidLongAfter)
	each := max(allotted, 0) / float64(2*len(steps))

	segs := make([]Segment, 0, 2*len(steps))
	for i, step := range steps {
		segs = append(segs,
			Segment{
				Label:           fmt.Sprintf("%s Step %d", pyramidSection(i, len(steps)), i+1),
				DurationSeconds: each,
				StrokeRate:      p.StrokeRate + step*mult,
				Resistance:      p.Resistance,
			},
			Segment{
				Label:           fmt.Sprintf("Rest %d", i+1),
				DurationSeconds: each,
				StrokeRate:      p.StrokeRate,
				Resistance:      p.Resistance,
			},
		)
	}
	return segs
}

// buildTimePyramid holds stroke rate near constant and grows each work step's
// duration in proportion to its pattern digit.
func buildTimePyramid(allotted float64, d Difficulty) []Segment {
	p := ProfileFor(d)
	allotted = max(allotted, 0)

	steps := pyramidPattern(allotted, timePyramidLongAfter)
	rest, ok := timePyramidRest[d]
	if !ok {
		rest = timePyramidRest[DifficultyDefault]
	}
	// Rest may use at most half the allotment.
	if rest*float64(len(steps)) > allotted/2 {
		rest = allotted / float64(2*len(steps))
	}
	workTime := allotted - rest*float64(len(steps))

	var weight int
	for _, step := range steps {
		weight += step
	}

	restRate := max(p.StrokeRate-2, 1)
	segs := make([]Segment, 0, 2*len(steps))
	for i, step := range steps {
		segs = append(segs,
			Segment{
				Label:           fmt.Sprintf("%s Step %d", pyramidSection(i, len(steps)), i+1),
				DurationSeconds: float64(step) / float64(weight) * workTime,
				StrokeRate:      p.StrokeRate + 3,
				Resistance:      p.Resistance,
			},
			Segment{
				Label:           fmt.Sprintf("Rest %d", i+1),
				DurationSeconds: rest,
				StrokeRate:      restRate,
				Resistance:      p.Resistance,
			},
		)
	}
	return segs
}
